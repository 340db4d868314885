// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/analyze"
	"github.com/pdiddy/originality/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis engine over HTTP",
	Long: `Serve exposes the engine as a JSON API: POST /analyze, POST /compare,
POST /quality, and GET /health. Requests are independent and stateless;
history persistence is a CLI-only concern and is not exposed here.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	logFile, _ := cmd.Flags().GetString("log-file")
	logger, err := createLogger(logFile)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Close()

	scorer := analyze.New(sourceGenerator(cfg.Analyzer))
	srv := server.New(cfg.Server, scorer, cfg.Analyzer.MaxChars(), logger)

	// Graceful shutdown on interrupt.
	done := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(done)
	}()

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	<-done
	logger.Info("Server stopped")
	return nil
}

// createLogger builds the structured logger, writing to stdout unless a
// log file is given.
func createLogger(logFile string) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		output = file
	}

	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1 << 20,
		MaxFileSize: 100 << 20,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default from config, else 8080)")
	serveCmd.Flags().String("log-file", "", "log file path (empty = stdout)")

	rootCmd.AddCommand(serveCmd)
}
