package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazyresident/lazyresident/internal/history"
	"github.com/lazyresident/lazyresident/internal/logger"
	"github.com/lazyresident/lazyresident/internal/note"
	"github.com/lazyresident/lazyresident/llm"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <section>|all",
	Short: "Generate a note section from the session inputs",
	Long: `Generate one admission-note section, or every section in order.

Sections: history, cc, diagnosis, ros, pe, soap. Each stage requires its
upstream sections; regenerating a stage never clears downstream ones.

Examples:
  lazyresident generate history
  lazyresident generate cc
  lazyresident generate all`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"history", "cc", "diagnosis", "ros", "pe", "soap", "all"},
	RunE:      runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// sectionAliases maps command line names to sections.
var sectionAliases = map[string]note.Section{
	"history":         note.SectionHistory,
	"cc":              note.SectionChiefComplaint,
	"chief_complaint": note.SectionChiefComplaint,
	"diagnosis":       note.SectionDiagnosis,
	"dx":              note.SectionDiagnosis,
	"ros":             note.SectionROS,
	"pe":              note.SectionPhysicalExam,
	"physical_exam":   note.SectionPhysicalExam,
	"soap":            note.SectionSOAP,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	store := GetSessionStore()
	s, err := store.Load()
	if err != nil {
		return err
	}

	gen, cleanup := GetGenerator(s)
	defer cleanup()

	logger.SetCommand("generate " + args[0])

	if args[0] == "all" {
		done, err := gen.GenerateAll(cmd.Context(), s)
		// Completed stages are worth keeping even when a later one fails.
		if len(done) > 0 {
			if saveErr := store.Save(s); saveErr != nil {
				return saveErr
			}
		}
		if err != nil {
			for _, sec := range done {
				fmt.Printf("✓ %s\n", sec.DisplayName())
			}
			PrintGenerationError(err)
			os.Exit(1)
		}
		for _, sec := range done {
			fmt.Printf("✓ %s\n", sec.DisplayName())
		}
		fmt.Println("\nAll sections generated. Use `lazyresident show note` to review.")
		return nil
	}

	sec, ok := sectionAliases[args[0]]
	if !ok {
		return fmt.Errorf("unknown section %q (use history, cc, diagnosis, ros, pe, soap or all)", args[0])
	}

	text, err := gen.Generate(cmd.Context(), s, sec)
	if err != nil {
		PrintGenerationError(err)
		os.Exit(1)
	}

	if err := store.Save(s); err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

// recordRun adapts client run diagnostics to the history store.
func recordRun(store *history.Store, sessionID string) func(llm.RunRecord) {
	return func(rec llm.RunRecord) {
		run := history.Run{
			SessionID:     sessionID,
			Section:       rec.Section,
			Provider:      rec.Provider,
			Model:         rec.Model,
			DurationMS:    rec.Duration.Milliseconds(),
			PromptBytes:   rec.PromptBytes,
			ResponseBytes: rec.ResponseBytes,
			OK:            rec.Err == nil,
			ErrorKind:     history.ErrorKind(rec.Err),
		}
		if err := store.Record(context.Background(), run); err != nil {
			LogError("failed to record generation run", err)
		}
	}
}
