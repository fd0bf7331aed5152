// Package audio persists raw audio bytes to temporary files long enough
// for transcription, then cleans them up.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoData is returned when an empty audio payload is offered for
// transcription.
var ErrNoData = errors.New("no audio data provided for transcription")

// WithTemporaryFile writes data to a temporary file under dir and calls fn
// with its path. The file is removed on every exit path, including when fn
// fails. The extension controls MIME detection downstream, so it is carried
// over from the source (".wav", ".mp3", ...).
func WithTemporaryFile(dir string, ext string, data []byte, fn func(path string) error) error {
	if len(data) == 0 {
		return ErrNoData
	}
	if ext == "" {
		ext = ".wav"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create audio directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "audio-*"+ext)
	if err != nil {
		return fmt.Errorf("create temporary audio file: %w", err)
	}
	path := tmp.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temporary audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary audio file: %w", err)
	}

	return fn(path)
}

// TempDir returns the audio scratch directory under the given base
// directory, matching the layout used by the session file.
func TempDir(base string) string {
	return filepath.Join(base, "temp", "audio")
}
