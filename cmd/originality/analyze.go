// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/analyze"
	"github.com/pdiddy/originality/internal/history"
	"github.com/pdiddy/originality/internal/identity"
	"github.com/pdiddy/originality/internal/report"
	"github.com/pdiddy/originality/internal/sources"
	"github.com/pdiddy/originality/internal/textutil"
	"github.com/pdiddy/originality/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze a text passage for copied-content indicators",
	Long: `Analyze runs the heuristic scorer over a single passage: repeated-phrase
detection, keyboard-mash detection, and the additive lexical rules. Input
comes from the argument, --file, or stdin, and is truncated to the configured
character cap before analysis.

When a login session exists the result is saved to the local history unless
--no-save is given.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	text, err := inputText(cmd, args, "file")
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required: pass it as an argument, via --file, or on stdin")
	}
	text = textutil.Truncate(text, cfg.Analyzer.MaxChars())

	scorer := analyze.New(sourceGenerator(cfg.Analyzer))
	result := scorer.Score(text)

	noSave, _ := cmd.Flags().GetBool("no-save")
	if !noSave {
		saveResult(cmd, cfg, text, result)
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		format, _ := cmd.Flags().GetString("format")
		doc := report.Document{AnalyzedAt: time.Now().UTC(), Text: text, Analysis: result}
		if err := report.Write(exportPath, report.Format(format), doc); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", exportPath)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printAnalysis(result)
	return nil
}

// saveResult persists the analysis for logged-in users. Storage failures
// are reported but never fail the analysis itself.
func saveResult(cmd *cobra.Command, cfg types.AppConfig, text string, result types.AnalysisResult) {
	user, err := identity.Load(cfg.Identity.SessionDir)
	if err != nil || user.Anonymous {
		return
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Save(cmd.Context(), user.UID, text, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save to history: %v\n", err)
	}
}

func printAnalysis(result types.AnalysisResult) {
	fmt.Printf("Plagiarism score:  %d%%\n", result.PlagiarismScore)
	fmt.Printf("Human-write score: %d%%\n", result.HumanWriteScore)

	if len(result.RepeatedPhrases) > 0 {
		fmt.Println("\nRepeated phrases:")
		for _, p := range result.RepeatedPhrases {
			fmt.Printf("  %q (repeated %d times)\n", p.Phrase, p.Count)
		}
	}

	if len(result.HumanPatterns) > 0 {
		fmt.Println("\nHuman typing patterns:")
		for _, p := range result.HumanPatterns {
			fmt.Printf("  %q at word %d\n", p.Sequence, p.Position)
		}
	}

	if len(result.WebSources) > 0 {
		fmt.Println("\nPossible sources (synthetic, for presentation only):")
		for _, src := range result.WebSources {
			fmt.Printf("  %s (%s, %d%% match, %s credibility)\n",
				src.Title, src.Domain, src.MatchPercentage, src.Credibility)
		}
	}
}

// sourceGenerator builds the synthetic source generator, or nil when
// disabled.
func sourceGenerator(cfg types.AnalyzerConfig) analyze.SourceGenerator {
	if cfg.DisableSources {
		return nil
	}
	return sources.New(cfg.SourceSeed)
}

// inputText resolves the analyzed text from the file flag, positional
// arguments, or stdin, in that order of precedence.
func inputText(cmd *cobra.Command, args []string, fileFlag string) (string, error) {
	if path, _ := cmd.Flags().GetString(fileFlag); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	analyzeCmd.Flags().String("file", "", "read the text from a file")
	analyzeCmd.Flags().Bool("json", false, "output the result as JSON")
	analyzeCmd.Flags().Bool("no-save", false, "skip saving the result to history")
	analyzeCmd.Flags().String("export", "", "write a report document to this path")
	analyzeCmd.Flags().String("format", "json", "report format: json or yaml")

	rootCmd.AddCommand(analyzeCmd)
}
