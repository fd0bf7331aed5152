package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazyresident/lazyresident/internal/audio"
	"github.com/lazyresident/lazyresident/internal/logger"
)

// transcribeCmd represents the transcribe command
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a dictated encounter and store it as the transcript",
	Long: `Transcribe an audio recording of the encounter.

The audio is uploaded to the provider's transcription API and the resulting
text replaces the session transcript. Pass "-" to read audio bytes from
stdin; use --ext to name the format in that case.

Examples:
  lazyresident transcribe rounds.m4a
  arecord -f cd -t wav - | lazyresident transcribe - --ext .wav`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

var transcribeExt string

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVar(&transcribeExt, "ext", ".wav", "audio format extension when reading from stdin")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	store := GetSessionStore()
	s, err := store.Load()
	if err != nil {
		return err
	}

	client := GetClient(s)
	logger.SetCommand("transcribe")
	logger.SetStage("transcription", client.Model())

	var transcript string
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		// Stdin audio has no path for MIME detection, so it takes a
		// scratch file with the declared extension.
		err = audio.WithTemporaryFile(audio.TempDir(appDir()), transcribeExt, data, func(path string) error {
			var tErr error
			transcript, tErr = client.TranscribeAudio(cmd.Context(), path)
			return tErr
		})
		if err != nil {
			PrintGenerationError(err)
			os.Exit(1)
		}
	} else {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("audio file %s: %w", filepath.Base(path), err)
		}
		transcript, err = client.TranscribeAudio(cmd.Context(), path)
		if err != nil {
			PrintGenerationError(err)
			os.Exit(1)
		}
	}

	s.Transcript = transcript
	if err := store.Save(s); err != nil {
		return err
	}

	fmt.Printf("Transcription complete (%d characters)\n", len(transcript))
	if verbose {
		preview := transcript
		if len(preview) > 400 {
			preview = preview[:400] + "..."
		}
		fmt.Println(strings.TrimSpace(preview))
	}
	return nil
}
