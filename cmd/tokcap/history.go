package main

import (
	"fmt"
	"os"

	"github.com/lyndonlyu/tokcap/internal/config"
	"github.com/lyndonlyu/tokcap/internal/history"
	"github.com/spf13/cobra"
)

var historyCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent stored estimates",
	RunE:  showHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 10, "Number of entries to show")
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.HistoryPath()); os.IsNotExist(err) {
		fmt.Println("No estimates yet.")
		return nil
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("history error: %w", err)
	}
	defer store.Close()

	records, err := store.Recent(historyCount)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No estimates yet.")
		return nil
	}

	fmt.Print(history.FormatRecords(records))
	return nil
}

// recordEstimate appends an estimate to the history store. Failures only
// warn on stderr; they never fail the estimate itself.
func recordEstimate(cfg *config.Config, rec history.Record) {
	if cfg.DisableHistory {
		return
	}
	if err := cfg.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, styleDim.Render("history: "+err.Error()))
		return
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, styleDim.Render("history: "+err.Error()))
		return
	}
	defer store.Close()

	if _, err := store.Append(rec); err != nil {
		fmt.Fprintln(os.Stderr, styleDim.Render("history: "+err.Error()))
	}
}
