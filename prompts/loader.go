package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptKey identifies an overridable prompt.
type PromptKey string

const (
	// KeyPresentIllnessStyle is the key for the present-illness narrative
	// style block inside the History prompt.
	KeyPresentIllnessStyle PromptKey = "PresentIllnessStyle"
)

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[PromptKey]promptConfig{
	KeyPresentIllnessStyle: {
		defaultContent: DefaultPresentIllnessStyle,
		filename:       "present_illness_style.txt",
	},
}

// GetPrompt searches for a user-provided prompt file in the configured
// templates directory. If found, its content replaces the embedded default;
// otherwise the default is returned. This lets a clinician customize the
// narrative style per session without rebuilding.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPath := filepath.Join(templatesDir, config.filename)
	if _, err := os.Stat(customPath); err == nil {
		content, readErr := os.ReadFile(customPath)
		if readErr != nil {
			return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPath, readErr)
		}
		return string(content), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPath, err)
	}

	return config.defaultContent, nil
}
