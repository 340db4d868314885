// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/originality/internal/history"
	"github.com/pdiddy/originality/internal/identity"
	"github.com/pdiddy/originality/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved analysis history (list, show, delete, clear)",
	Long: `History manages the local SQLite store of past analyses. Records are kept
per user, newest first, capped at the configured retention limit. A login
session is required; anonymous analyses are never persisted.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, most recent first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	user, store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), user.UID)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No saved analyses.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-19s  %-6s  %-6s  %s\n",
		"ID", "Date", "Plag%", "Chars", "Text")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for _, rec := range records {
		text := rec.Text
		if len(text) > 28 {
			text = text[:25] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-19s  %-6d  %-6d  %s\n",
			rec.ID, rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Analysis.PlagiarismScore, len(rec.Text), text)
	}
	fmt.Fprintf(os.Stdout, "\n%d records\n", len(records))
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one saved analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	user, store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(cmd.Context(), user.UID, args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("Analyzed: %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Text:     %s\n\n", rec.Text)
	printAnalysis(rec.Analysis)
	return nil
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one saved analysis by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	user, store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), user.UID, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved analyses for the current user",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		return fmt.Errorf("clearing history cannot be undone: re-run with --yes to confirm")
	}

	user, store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Clear(cmd.Context(), user.UID)
	if err != nil {
		return err
	}
	fmt.Printf("Cleared %d record(s)\n", deleted)
	return nil
}

// openHistory loads the session and opens the store, rejecting anonymous
// users since their analyses are never persisted.
func openHistory() (types.User, *history.Store, error) {
	cfg := appConfig()

	user, err := identity.Load(cfg.Identity.SessionDir)
	if err != nil {
		return types.User{}, nil, err
	}
	if user.Anonymous {
		return types.User{}, nil, fmt.Errorf("no login session: run 'originality login' first")
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		return types.User{}, nil, err
	}
	return user, store, nil
}

func init() {
	historyListCmd.Flags().Bool("json", false, "output records as JSON")
	historyShowCmd.Flags().Bool("json", false, "output the record as JSON")
	historyClearCmd.Flags().Bool("yes", false, "confirm clearing all records")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
