package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/lazyresident/lazyresident/types"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// PrintGenerationError turns the generation error taxonomy into actionable
// messages. All of these are recoverable: state is untouched and the user
// can fix the cause and rerun.
func PrintGenerationError(err error) {
	var (
		pre  *types.PreconditionError
		prov *types.ProviderError
		val  *types.ValidationError
	)
	switch {
	case errors.Is(err, types.ErrNotConfigured):
		PrintError("No API key configured. Set GEMINI_API_KEY (or configure llm.apiKey) and retry.", err)
	case errors.As(err, &pre):
		PrintError(fmt.Sprintf("%v. Generate or provide those first.", pre), err)
	case errors.As(err, &val):
		PrintError(fmt.Sprintf("The model returned an unusable %s response. Rerun the stage to retry.", val.Section), err)
	case errors.As(err, &prov):
		PrintError(fmt.Sprintf("The provider failed while generating %s. Check connectivity and retry.", prov.Section), err)
	default:
		PrintError(fmt.Sprintf("Generation failed: %v", err), err)
	}
}
