package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazyresident/lazyresident/internal/session"
)

// inputCmd represents the input command
var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Provide transcript, historical records or style for the session",
	Long: `Provide the raw inputs the generation pipeline works from.

Each subcommand reads from a file argument, or from stdin when the argument
is omitted or "-".

Examples:
  lazyresident input transcript visit.txt
  cat emr_export.txt | lazyresident input records
  lazyresident input style my_style.txt`,
}

var inputTranscriptCmd = &cobra.Command{
	Use:   "transcript [file]",
	Short: "Set the encounter transcript",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInput(args, "transcript", func(s *session.Session, text string) {
			s.Transcript = text
		})
	},
}

var inputRecordsCmd = &cobra.Command{
	Use:   "records [file]",
	Short: "Set historical records (prior EMR notes, labs, imaging)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInput(args, "historical records", func(s *session.Session, text string) {
			s.HistoricalRecords = text
		})
	},
}

var inputStyleCmd = &cobra.Command{
	Use:   "style [file]",
	Short: "Override the present-illness narrative style for this session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInput(args, "present-illness style", func(s *session.Session, text string) {
			s.PresentIllnessStyle = text
		})
	},
}

func init() {
	rootCmd.AddCommand(inputCmd)
	inputCmd.AddCommand(inputTranscriptCmd)
	inputCmd.AddCommand(inputRecordsCmd)
	inputCmd.AddCommand(inputStyleCmd)
}

func setInput(args []string, what string, apply func(s *session.Session, text string)) error {
	text, err := readInputText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("input is empty")
	}

	store := GetSessionStore()
	s, err := store.Load()
	if err != nil {
		return err
	}

	apply(s, text)

	if err := store.Save(s); err != nil {
		return err
	}
	fmt.Printf("Saved %s (%d characters)\n", what, len(text))
	return nil
}

func readInputText(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
