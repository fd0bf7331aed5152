package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lazyresident/lazyresident/llm"
)

// configCmd groups provider and model configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and adjust provider and model settings",
}

var configModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "List available models or set the session's model",
	Long: `List the models known for the configured provider, or set the model
used for this session. The override is stored on the session, so a new
session returns to the configured default.

Examples:
  lazyresident config model                   # list models
  lazyresident config model gemini-2.5-pro    # switch this session
  lazyresident config model --clear           # back to the default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigModel,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show provider, model and credential status",
	RunE:  runConfigStatus,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the provider API key in the workspace .env file",
	Long: `Read an API key and write it to ./.env under the provider's
conventional variable name. The key is read without echo when stdin is a
terminal.`,
	RunE: runConfigSetKey,
}

var modelClear bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configModelCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configModelCmd.Flags().BoolVar(&modelClear, "clear", false, "remove the session model override")
}

func runConfigModel(cmd *cobra.Command, args []string) error {
	store := GetSessionStore()
	s, err := store.Load()
	if err != nil {
		return err
	}
	config := GetConfig()

	if modelClear {
		s.Model = ""
		if err := store.Save(s); err != nil {
			return err
		}
		fmt.Printf("Model override cleared; using %s\n", config.LLM.ModelName)
		return nil
	}

	if len(args) == 0 {
		active := s.Model
		if active == "" {
			active = config.LLM.ModelName
		}
		fmt.Printf("Provider: %s\n\n", config.LLM.Provider)
		for _, opt := range llm.GetModelsForProvider(config.LLM.Provider) {
			marker := "  "
			if opt.ID == active {
				marker = "* "
			}
			suffix := ""
			if opt.IsDefault {
				suffix = " (default)"
			}
			fmt.Printf("%s%s%s\n", marker, opt.ID, suffix)
		}
		return nil
	}

	name := strings.TrimSpace(args[0])
	if provider, ok := llm.InferProvider(name); ok && provider != config.LLM.Provider {
		return fmt.Errorf("model %s belongs to provider %s, but %s is configured", name, provider, config.LLM.Provider)
	}

	s.Model = name
	if err := store.Save(s); err != nil {
		return err
	}
	fmt.Printf("Session model set to %s\n", name)
	return nil
}

func runConfigStatus(cmd *cobra.Command, args []string) error {
	s, err := GetSessionStore().Load()
	if err != nil {
		return err
	}
	config := GetConfig()
	client := GetClient(s)

	fmt.Printf("Provider:   %s\n", client.Provider())
	fmt.Printf("Model:      %s", client.Model())
	if s.Model != "" {
		fmt.Print("  (session override)")
	}
	fmt.Println()

	if client.IsConfigured() {
		fmt.Println("API key:    configured")
	} else {
		fmt.Println("API key:    missing")
		fmt.Printf("            set %s or run `lazyresident config set-key`\n", keyEnvName(config.LLM.Provider))
	}

	if client.SupportsTranscription() {
		fmt.Println("Audio:      transcription available")
	} else {
		fmt.Println("Audio:      transcription unavailable for this provider/model")
	}
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	config := GetConfig()
	envName := keyEnvName(config.LLM.Provider)
	if envName == "" {
		return fmt.Errorf("provider %s does not use an API key", config.LLM.Provider)
	}

	var key string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Enter %s: ", envName)
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		key = string(raw)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			key = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read key: %w", err)
		}
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("no key provided")
	}

	if err := upsertEnvVar(".env", envName, key); err != nil {
		return err
	}
	fmt.Printf("Saved %s to .env\n", envName)
	return nil
}

// keyEnvName returns the conventional env var for the provider's API key.
func keyEnvName(provider string) string {
	switch provider {
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	case llm.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// upsertEnvVar replaces or appends name=value in a dotenv file, keeping the
// other lines intact.
func upsertEnvVar(path, name, value string) error {
	var lines []string
	if data, err := os.ReadFile(path); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), name+"=") {
			lines[i] = name + "=" + value
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, name+"="+value)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
