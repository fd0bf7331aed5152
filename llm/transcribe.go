package llm

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/lazyresident/lazyresident/prompts"
	"github.com/lazyresident/lazyresident/types"
)

const transcriptionSection = "transcription"

// audioMIMETypes maps supported audio file extensions to MIME types for
// the file upload API.
var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// SupportsTranscription reports whether the active model can transcribe
// audio. Only Gemini models expose the file-based audio API.
func (c *Client) SupportsTranscription() bool {
	if c.cfg.Provider != ProviderGemini {
		return false
	}
	if m := GetModel(c.cfg.ModelName); m != nil {
		return m.Transcribe
	}
	return true
}

// TranscribeAudio uploads an audio file to the provider, transcribes it and
// returns the plain transcript text. The uploaded provider file is deleted
// before returning, on success and on failure.
func (c *Client) TranscribeAudio(ctx context.Context, path string) (string, error) {
	if !c.IsConfigured() {
		return "", types.ErrNotConfigured
	}
	if !c.SupportsTranscription() {
		return "", &types.ProviderError{
			Section: transcriptionSection,
			Err:     fmt.Errorf("model %s (%s) does not support audio transcription", c.cfg.ModelName, c.cfg.Provider),
		}
	}

	mimeType, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", &types.ProviderError{
			Section: transcriptionSection,
			Err:     fmt.Errorf("unsupported audio format: %s", filepath.Ext(path)),
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &types.ProviderError{Section: transcriptionSection, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	file, err := client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
	if err != nil {
		return "", &types.ProviderError{Section: transcriptionSection, Err: fmt.Errorf("upload audio: %w", err)}
	}
	defer func() {
		// Best effort: the provider expires orphaned files on its own.
		_, _ = client.Files.Delete(context.WithoutCancel(ctx), file.Name, nil)
	}()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompts.TranscriptionInstruction),
			genai.NewPartFromURI(file.URI, file.MIMEType),
		}, genai.RoleUser),
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, c.cfg.ModelName, contents, nil)
	elapsed := time.Since(start)

	text := ""
	if err == nil {
		text = strings.TrimSpace(resp.Text())
	}

	c.report(RunRecord{
		Section:       transcriptionSection,
		Provider:      c.cfg.Provider,
		Model:         c.cfg.ModelName,
		Duration:      elapsed,
		ResponseBytes: len(text),
		Err:           err,
	})

	if err != nil {
		return "", &types.ProviderError{Section: transcriptionSection, Err: err}
	}
	if text == "" {
		return "", &types.ProviderError{Section: transcriptionSection, Err: fmt.Errorf("empty transcription from %s", c.cfg.ModelName)}
	}
	return text, nil
}
