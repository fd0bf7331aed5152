package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lazyresident/lazyresident/internal/logger"
	"github.com/lazyresident/lazyresident/llm"
	"github.com/lazyresident/lazyresident/types"
)

const (
	configName = ".lazyresident"
	envPrefix  = "LAZYRESIDENT"

	defaultAppDir = ".lazyresident"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; missing files are fine.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., LAZYRESIDENT_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		// Prefer the project-local app directory, falling back to the
		// home directory and the working directory.
		if _, err := os.Stat(defaultAppDir); !os.IsNotExist(err) {
			viper.AddConfigPath(defaultAppDir)
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("session.file", filepath.Join(defaultAppDir, "session.yaml"))
	viper.SetDefault("session.templatesDir", filepath.Join(defaultAppDir, "templates"))
	viper.SetDefault("session.historyDb", filepath.Join(defaultAppDir, "history.db"))

	// Defaults for LLMConfig
	viper.SetDefault("llm.provider", llm.DefaultProvider)
	viper.SetDefault("llm.modelName", llm.DefaultModelForProvider(llm.DefaultProvider))
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.requestTimeoutSeconds", llm.DefaultRequestTimeoutSeconds)

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Provider API keys usually live in the provider's own env var
	// rather than the config file.
	if GlobalAppConfig.LLM.APIKey == "" {
		GlobalAppConfig.LLM.APIKey = apiKeyFromEnv(GlobalAppConfig.LLM.Provider)
	}

	// LLM debug diagnostics follow the global verbose flag.
	GlobalAppConfig.LLM.Debug = viper.GetBool("verbose")

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	logger.SetBasePath(filepath.Dir(GlobalAppConfig.Session.File))
}

// apiKeyFromEnv finds the provider's conventional API key variable.
func apiKeyFromEnv(provider string) string {
	switch provider {
	case llm.ProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_API_KEY")
	case llm.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case llm.ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return ""
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
