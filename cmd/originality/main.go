// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the originality CLI, a heuristic
// text-originality checker. The engine is deterministic and entirely local:
// analysis derives only from the submitted text, never from a corpus or the
// network.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/originality/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the originality CLI.
var rootCmd = &cobra.Command{
	Use:   "originality",
	Short: "Heuristic plagiarism and writing-quality analysis for text passages",
	Long: `originality analyzes a text passage for copied-content indicators using
deterministic lexical heuristics: repeated phrases, vocabulary register,
lexical diversity, and keyboard-mash detection. It also offers a pairwise
text comparator and an independent writing-quality assessment.

Scores are rule-based heuristics, not calibrated classifiers; no corpus
lookup or web search is performed.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./originality.yaml or ~/.config/originality/config.yaml)")
	rootCmd.PersistentFlags().String("session-dir", "", "session directory holding the login identity (default: ~/.config/originality/session)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("originality")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "originality"))
		}
	}

	viper.SetEnvPrefix("ORIGINALITY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the component configuration from viper with
// home-directory defaults for paths.
func appConfig() types.AppConfig {
	cfg := types.AppConfig{
		Analyzer: types.AnalyzerConfig{
			MaxInputChars:  viper.GetInt("analyzer.max_input_chars"),
			SourceSeed:     viper.GetInt64("analyzer.source_seed"),
			DisableSources: viper.GetBool("analyzer.disable_sources"),
		},
		History: types.HistoryConfig{
			Dir:        viper.GetString("history.dir"),
			MaxRecords: viper.GetInt("history.max_records"),
		},
		Identity: types.IdentityConfig{
			SessionDir: viper.GetString("identity.session_dir"),
		},
		Server: types.ServerConfig{
			Port:           viper.GetInt("server.port"),
			ReadTimeout:    viper.GetDuration("server.read_timeout"),
			WriteTimeout:   viper.GetDuration("server.write_timeout"),
			MaxRequestBody: viper.GetInt("server.max_request_body"),
		},
	}

	if dir, _ := rootCmd.PersistentFlags().GetString("session-dir"); dir != "" {
		cfg.Identity.SessionDir = dir
	}

	home, err := os.UserHomeDir()
	if err == nil {
		if cfg.History.Dir == "" {
			cfg.History.Dir = filepath.Join(home, ".local", "share", "originality")
		}
		if cfg.Identity.SessionDir == "" {
			cfg.Identity.SessionDir = filepath.Join(home, ".config", "originality", "session")
		}
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
