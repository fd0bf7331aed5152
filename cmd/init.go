package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a LazyResident workspace in the current directory",
	Long: `Initialize a LazyResident workspace.

Creates the application directory with a fresh session file and a templates
directory for prompt overrides. An existing session is only discarded with
--reset.

Examples:
  lazyresident init           # Create workspace and session
  lazyresident init --reset   # Discard the current session and start over`,
	RunE: runInit,
}

var initReset bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initReset, "reset", false, "discard any existing session")
}

func runInit(cmd *cobra.Command, args []string) error {
	config := GetConfig()
	store := GetSessionStore()

	if config.Session.TemplatesDir != "" {
		if err := os.MkdirAll(config.Session.TemplatesDir, 0o755); err != nil {
			return fmt.Errorf("create templates directory: %w", err)
		}
	}

	if initReset {
		s, err := store.Reset()
		if err != nil {
			return err
		}
		fmt.Printf("Session reset. New session %s\n", s.ID)
		return nil
	}

	if _, err := os.Stat(store.Path()); err == nil {
		s, err := store.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Workspace already initialized (session %s). Use --reset to start over.\n", s.ID)
		return nil
	}

	s, err := store.Reset()
	if err != nil {
		return err
	}
	fmt.Printf("Initialized workspace in %s (session %s)\n", filepath.Dir(store.Path()), s.ID)
	return nil
}
