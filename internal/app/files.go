package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"
)

// Files is the file backend used by the pipeline.
type Files interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFiles reads and writes the local filesystem.
type OSFiles struct{}

// ReadFile reads the whole file.
func (OSFiles) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces path with data atomically, so readers never see a
// half-written config. A symlinked path is written through: the link stays
// and its target is replaced. The original file mode is kept; new files get
// 0600.
func (OSFiles) WriteFile(path string, data []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}

	mode := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	out, err := atomicfile.New(path, mode)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer out.Cancel()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	return out.Close()
}
