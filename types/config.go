package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"omitempty"`
}

// SessionConfig holds note-session storage settings
type SessionConfig struct {
	File         string `mapstructure:"file" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir"`
	HistoryDB    string `mapstructure:"historyDb"`
}

// LLMConfig holds configuration for LLM integration
type LLMConfig struct {
	Provider  string `mapstructure:"provider" validate:"omitempty,oneof=gemini openai anthropic ollama"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey    string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	// BaseURL is only consulted for Ollama
	BaseURL string `mapstructure:"baseURL" validate:"omitempty,url"`
	// RequestTimeoutSeconds controls the client timeout for LLM calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// Debug enables timing/size diagnostics within the LLM client (tied to --verbose)
	Debug bool `mapstructure:"debug"`
}
