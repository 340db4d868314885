// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/quality"
	"github.com/pdiddy/originality/internal/report"
	"github.com/pdiddy/originality/internal/textutil"
)

var qualityCmd = &cobra.Command{
	Use:   "quality [text]",
	Short: "Assess the writing quality of a text passage",
	Long: `Quality scores a passage on grammar, vocabulary sophistication, sentence
variety, and formatting hygiene, independently of the plagiarism analysis.
Input comes from the argument, --file, or stdin.`,
	RunE: runQuality,
}

func runQuality(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	text, err := inputText(cmd, args, "file")
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required: pass it as an argument, via --file, or on stdin")
	}
	text = textutil.Truncate(text, cfg.Analyzer.MaxChars())

	assessment := quality.Assess(text)

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		format, _ := cmd.Flags().GetString("format")
		doc := report.Document{AnalyzedAt: time.Now().UTC(), Text: text, Quality: &assessment}
		if err := report.Write(exportPath, report.Format(format), doc); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", exportPath)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	}

	fmt.Printf("Overall quality: %d%%", assessment.OverallScore)
	if assessment.IsHighQuality {
		fmt.Print(" (high quality)")
	}
	fmt.Println()
	for _, detail := range assessment.Details {
		fmt.Printf("  %s\n", detail)
	}
	return nil
}

func init() {
	qualityCmd.Flags().String("file", "", "read the text from a file")
	qualityCmd.Flags().Bool("json", false, "output the result as JSON")
	qualityCmd.Flags().String("export", "", "write a report document to this path")
	qualityCmd.Flags().String("format", "json", "report format: json or yaml")

	rootCmd.AddCommand(qualityCmd)
}
