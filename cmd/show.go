package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lazyresident/lazyresident/internal/pipeline"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [section]|note",
	Short: "Show generated sections or the assembled note",
	Long: `Show the current session content.

With no argument, prints a session overview. With a section name, prints
that section's text. With "note", prints every generated section under a
styled header.

Examples:
  lazyresident show
  lazyresident show history
  lazyresident show note`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runShow(cmd *cobra.Command, args []string) error {
	s, err := GetSessionStore().Load()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(headerStyle.Render("Session " + s.ID))
		fmt.Println(dimStyle.Render("updated " + s.UpdatedAt.Format("2006-01-02 15:04:05 MST")))
		fmt.Println()

		fmt.Printf("Transcript:         %s\n", presence(s.Transcript != "", len(s.Transcript)))
		fmt.Printf("Historical records: %s\n", presence(s.HistoricalRecords != "", len(s.HistoricalRecords)))
		fmt.Println()
		for _, sec := range pipeline.StageOrder {
			text := s.SectionText(sec)
			fmt.Printf("%-18s %s\n", sec.DisplayName()+":", presence(text != "", len(text)))
		}
		if s.Model != "" {
			fmt.Println()
			fmt.Println(dimStyle.Render("model override: " + s.Model))
		}
		return nil
	}

	if args[0] == "note" {
		var blocks []string
		for _, sec := range pipeline.StageOrder {
			text := s.SectionText(sec)
			if text == "" {
				continue
			}
			blocks = append(blocks, headerStyle.Render("## "+sec.DisplayName())+"\n\n"+text)
		}
		if len(blocks) == 0 {
			fmt.Println("Nothing generated yet. Start with `lazyresident generate history`.")
			return nil
		}
		fmt.Println(strings.Join(blocks, "\n\n"))
		return nil
	}

	sec, ok := sectionAliases[args[0]]
	if !ok {
		return fmt.Errorf("unknown section %q (use history, cc, diagnosis, ros, pe, soap or note)", args[0])
	}
	text := s.SectionText(sec)
	if text == "" {
		fmt.Printf("%s has not been generated yet.\n", sec.DisplayName())
		return nil
	}
	fmt.Println(text)
	return nil
}

func presence(set bool, size int) string {
	if !set {
		return dimStyle.Render("empty")
	}
	return fmt.Sprintf("%d characters", size)
}
