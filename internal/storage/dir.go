// Package storage is the file-system boundary used by file transfer sessions.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("storage: invalid file name")

// Dir reads and writes whole files relative to a root directory.
type Dir struct {
	root string
	perm os.FileMode
}

func NewDir(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", abs, err)
	}
	return &Dir{root: abs, perm: 0o644}, nil
}

func (d *Dir) Root() string {
	return d.root
}

// ReadFile reads path. Relative paths resolve under the root.
func (d *Dir) ReadFile(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidName)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.root, path)
	}
	return os.ReadFile(path)
}

// WriteFile creates or truncates name directly under the root. Names that
// carry directory components are rejected so a peer cannot write elsewhere.
func (d *Dir) WriteFile(name string, data []byte) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return os.WriteFile(filepath.Join(d.root, name), data, d.perm)
}
