package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

// Store reads and writes the session file. It uses an afero.Fs interface
// for filesystem operations, enabling easy testing with in-memory
// filesystems.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store backed by the provided filesystem.
// Use afero.NewOsFs() for real filesystem operations,
// or afero.NewMemMapFs() for testing.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewOsStore creates a Store using the real operating system filesystem.
func NewOsStore(path string) *Store {
	return NewStore(afero.NewOsFs(), path)
}

// Path returns the session file path.
func (st *Store) Path() string { return st.path }

// Load reads the session file. A missing file yields a fresh session
// rather than an error, so commands work without an explicit init.
func (st *Store) Load() (*Session, error) {
	data, err := afero.ReadFile(st.fs, st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", st.path, err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("session file %s has no session ID", st.path)
	}
	return &s, nil
}

// Save writes the session atomically: marshal to a temp file next to the
// target, then rename over it.
func (st *Store) Save(s *Session) error {
	s.Touch()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(st.path)
	if err := st.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmpPath := st.path + ".tmp"
	if err := afero.WriteFile(st.fs, tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := st.fs.Rename(tmpPath, st.path); err != nil {
		_ = st.fs.Remove(tmpPath)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Reset discards any existing session file and persists a fresh session.
func (st *Store) Reset() (*Session, error) {
	if err := st.fs.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove session file: %w", err)
	}
	s := New()
	if err := st.Save(s); err != nil {
		return nil, err
	}
	return s, nil
}
