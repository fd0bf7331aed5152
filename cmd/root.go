package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lazyresident/lazyresident/internal/history"
	"github.com/lazyresident/lazyresident/internal/logger"
	"github.com/lazyresident/lazyresident/internal/pipeline"
	"github.com/lazyresident/lazyresident/internal/session"
	"github.com/lazyresident/lazyresident/llm"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lazyresident",
	Short: "LazyResident turns dictated encounters into structured admission notes.",
	Long: `LazyResident is a command line assistant for hospital admission notes.
It transcribes dictated encounters, then generates each section of the note
(History, Chief Complaint, Diagnosis, ROS, Physical Exam, SOAP) through
schema-validated LLM calls and deterministic clinical formatting.`,
	// Runtime failures should not dump usage text.
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.lazyresident/.lazyresident.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	logger.SetVersion(version)
}

// appDir returns the application directory holding session state, crash
// logs and scratch files.
func appDir() string {
	return filepath.Dir(GetConfig().Session.File)
}

// GetSessionStore returns the session store for the configured session file.
func GetSessionStore() *session.Store {
	return session.NewOsStore(GetConfig().Session.File)
}

// GetClient builds the LLM client from configuration, applying the
// session's model override when one is set.
func GetClient(s *session.Session) *llm.Client {
	config := GetConfig()
	client := llm.NewClient(config.LLM)
	if s != nil && s.Model != "" {
		client.SetModel(s.Model)
	}
	return client
}

// GetGenerator wires a pipeline generator with run recording when a history
// database is configured.
func GetGenerator(s *session.Session) (*pipeline.Generator, func()) {
	config := GetConfig()
	client := GetClient(s)

	cleanup := func() {}
	if config.Session.HistoryDB != "" {
		store, err := history.Open(config.Session.HistoryDB)
		if err != nil {
			LogError("history database unavailable", err)
		} else {
			sessionID := ""
			if s != nil {
				sessionID = s.ID
			}
			client.OnRun = recordRun(store, sessionID)
			cleanup = func() { _ = store.Close() }
		}
	}

	return pipeline.New(client, config.Session.TemplatesDir), cleanup
}
