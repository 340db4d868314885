// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/similarity"
	"github.com/pdiddy/originality/internal/textutil"
)

var compareCmd = &cobra.Command{
	Use:   "compare [text1] [text2]",
	Short: "Compute the pairwise similarity of two texts",
	Long: `Compare scores two texts against each other with a weighted composite of
Jaccard word overlap, bigram overlap, and longest-common-subsequence length.
The result is symmetric and ranges from 0 (no overlap) to 100 (identical).

Texts come from the two arguments or from --file-a and --file-b.`,
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	text1, text2, err := compareInputs(cmd, args)
	if err != nil {
		return err
	}

	maxChars := cfg.Analyzer.MaxChars()
	score := similarity.Score(
		textutil.Truncate(text1, maxChars),
		textutil.Truncate(text2, maxChars),
	)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(map[string]int{"similarity": score})
	}

	fmt.Printf("Similarity: %d%%\n", score)
	return nil
}

func compareInputs(cmd *cobra.Command, args []string) (string, string, error) {
	fileA, _ := cmd.Flags().GetString("file-a")
	fileB, _ := cmd.Flags().GetString("file-b")

	if fileA != "" && fileB != "" {
		dataA, err := os.ReadFile(fileA)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", fileA, err)
		}
		dataB, err := os.ReadFile(fileB)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", fileB, err)
		}
		return string(dataA), string(dataB), nil
	}

	if len(args) != 2 {
		return "", "", fmt.Errorf("two texts required: pass two arguments or both --file-a and --file-b")
	}
	return args[0], args[1], nil
}

func init() {
	compareCmd.Flags().String("file-a", "", "read the first text from a file")
	compareCmd.Flags().String("file-b", "", "read the second text from a file")
	compareCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(compareCmd)
}
