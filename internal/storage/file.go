package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore persists the high score as a single decimal integer in a text
// file. An absent, empty or unparsable file loads as zero.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed high score store at the given path.
// A leading ~ expands to the home directory; expansion failures are left
// for Load/Save to report.
func NewFileStore(path string) *FileStore {
	if expanded, err := expandHome(path); err == nil {
		path = expanded
	}
	return &FileStore{path: path}
}

// Load returns the stored high score. A missing file, empty content or
// content that is not a non-negative integer all count as "no score yet".
func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("storage: cannot read high score file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return 0, nil
	}

	score, err := strconv.Atoi(trimmed)
	if err != nil || score < 0 {
		return 0, nil
	}
	return score, nil
}

// Save writes the high score, creating parent directories as needed.
func (f *FileStore) Save(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score file: %w", err)
	}
	return nil
}
