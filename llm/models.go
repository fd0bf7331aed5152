package llm

import "sort"

// Model describes a chat model the client knows how to drive.
type Model struct {
	ID         string   // Canonical model ID (e.g., "gemini-2.5-flash")
	Provider   string   // Provider display name (e.g., "Google")
	ProviderID string   // Internal provider ID (e.g., "gemini")
	Aliases    []string // Alternative IDs including dated versions
	IsDefault  bool     // Whether this is the default model for its provider
	Transcribe bool     // Whether the model also handles audio transcription
}

// ModelRegistry is the single source of truth for all supported models.
// Add new models here - everything else derives from this registry.
var ModelRegistry = []Model{
	// ============================================
	// Google Gemini Models
	// ============================================
	{
		ID:         "gemini-2.5-flash",
		Provider:   "Google",
		ProviderID: ProviderGemini,
		IsDefault:  true,
		Transcribe: true,
	},
	{
		ID:         "gemini-2.5-pro",
		Provider:   "Google",
		ProviderID: ProviderGemini,
		Transcribe: true,
	},
	{
		ID:         "gemini-2.5-flash-lite",
		Provider:   "Google",
		ProviderID: ProviderGemini,
		Transcribe: true,
	},
	{
		ID:         "gemini-2.0-flash",
		Provider:   "Google",
		ProviderID: ProviderGemini,
		Transcribe: true,
	},

	// ============================================
	// OpenAI Models
	// ============================================
	{
		ID:         "gpt-4o",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4o-2024-08-06"},
		IsDefault:  true,
	},
	{
		ID:         "gpt-4o-mini",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4o-mini-2024-07-18"},
	},
	{
		ID:         "gpt-4.1-mini",
		Provider:   "OpenAI",
		ProviderID: ProviderOpenAI,
		Aliases:    []string{"gpt-4.1-mini-2025-04-14"},
	},

	// ============================================
	// Anthropic Models
	// ============================================
	{
		ID:         "claude-3-5-sonnet-latest",
		Provider:   "Anthropic",
		ProviderID: ProviderAnthropic,
		Aliases:    []string{"claude-3-5-sonnet-20241022"},
		IsDefault:  true,
	},
	{
		ID:         "claude-3-5-haiku-latest",
		Provider:   "Anthropic",
		ProviderID: ProviderAnthropic,
		Aliases:    []string{"claude-3-5-haiku-20241022"},
	},

	// ============================================
	// Ollama Models (local)
	// ============================================
	{
		ID:         "llama3.2",
		Provider:   "Ollama",
		ProviderID: ProviderOllama,
		IsDefault:  true,
	},
}

// modelIndex is built at init time for fast lookups
var modelIndex map[string]*Model

func init() {
	buildModelIndex()
}

func buildModelIndex() {
	modelIndex = make(map[string]*Model)
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		modelIndex[m.ID] = m
		for _, alias := range m.Aliases {
			modelIndex[alias] = m
		}
	}
}

// GetModel returns the model definition for a given model ID or alias.
// Returns nil if the model is not found.
func GetModel(modelID string) *Model {
	return modelIndex[modelID]
}

// GetDefaultModel returns the default model for a provider.
func GetDefaultModel(providerID string) *Model {
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		if m.ProviderID == providerID && m.IsDefault {
			return m
		}
	}
	return nil
}

// GetDefaultModelID returns the default model ID for a provider.
func GetDefaultModelID(providerID string) string {
	if m := GetDefaultModel(providerID); m != nil {
		return m.ID
	}
	return ""
}

// InferProvider attempts to determine the provider from a model name.
// Returns the provider ID and true if inference succeeded.
func InferProvider(modelID string) (string, bool) {
	if m := GetModel(modelID); m != nil {
		return m.ProviderID, true
	}

	switch {
	case hasPrefix(modelID, "gemini-"):
		return ProviderGemini, true
	case hasPrefix(modelID, "gpt-"), hasPrefix(modelID, "o1-"), hasPrefix(modelID, "o3-"):
		return ProviderOpenAI, true
	case hasPrefix(modelID, "claude-"):
		return ProviderAnthropic, true
	case hasPrefix(modelID, "llama"), hasPrefix(modelID, "mistral"), hasPrefix(modelID, "phi"):
		return ProviderOllama, true
	}

	return "", false
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// ModelOption represents a model choice for selection UI
type ModelOption struct {
	ID          string
	DisplayName string
	IsDefault   bool
}

// GetModelsForProvider returns available models for a provider (for UI selection).
func GetModelsForProvider(providerID string) []ModelOption {
	var options []ModelOption

	for _, m := range ModelRegistry {
		if m.ProviderID != providerID {
			continue
		}
		options = append(options, ModelOption{
			ID:          m.ID,
			DisplayName: m.ID,
			IsDefault:   m.IsDefault,
		})
	}

	// Sort: default first, then alphabetically
	sort.Slice(options, func(i, j int) bool {
		if options[i].IsDefault != options[j].IsDefault {
			return options[i].IsDefault
		}
		return options[i].ID < options[j].ID
	})

	return options
}
