package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazyresident/lazyresident/internal/history"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generation runs",
	Long: `List recent generation runs with timing and outcome.

The history database stores diagnostics only: section, model, duration and
payload sizes. Transcripts, prompts and note text are never recorded.`,
	RunE: runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	config := GetConfig()
	if config.Session.HistoryDB == "" {
		return fmt.Errorf("no history database configured (session.historyDb)")
	}

	store, err := history.Open(config.Session.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No generation runs recorded yet.")
		return nil
	}

	fmt.Printf("%-20s %-16s %-22s %9s %8s  %s\n", "WHEN", "SECTION", "MODEL", "DURATION", "RESP", "RESULT")
	for _, r := range runs {
		result := "ok"
		if !r.OK {
			result = r.ErrorKind
		}
		fmt.Printf("%-20s %-16s %-22s %8dms %7dB  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Section, r.Model, r.DurationMS, r.ResponseBytes, result)
	}
	return nil
}
