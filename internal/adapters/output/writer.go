// Package output writes rendered markdown documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores markdown files.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a Writer that creates files with mode 0644.
func NewWriter() *Writer {
	return &Writer{perm: 0o644}
}

// Write creates the parent directories of path and writes md to it,
// replacing any existing file.
func (w *Writer) Write(path, md string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(md), w.perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// PathInDir returns <dir>/<slug>.md. An empty slug becomes "post".
func PathInDir(dir, slug string) string {
	if slug == "" {
		slug = "post"
	}
	return filepath.Join(dir, slug+".md")
}
