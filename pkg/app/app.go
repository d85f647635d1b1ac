// Package app exposes a project source tree to providers.
//
// An [App] is a read-only view of the project root. Providers only ever ask
// two questions of it: whether a file exists, and what its text contents are.
// Both go through an [io/fs.FS], so tests can substitute an in-memory tree
// (see [testing/fstest.MapFS]) for a directory on disk.
package app

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/stackplan/pkg/errors"
)

// App is a project source tree rooted at Source.
// It is safe for concurrent use as long as the underlying FS is.
type App struct {
	Source string // Absolute root directory, or a label for in-memory trees
	fsys   fs.FS
}

// New opens the directory at dir as an App.
func New(dir string) (*App, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "directory does not exist: %s", abs)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "stat %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "not a directory: %s", abs)
	}
	return &App{Source: abs, fsys: os.DirFS(abs)}, nil
}

// NewFS wraps an existing file system. The label is reported as Source.
func NewFS(label string, fsys fs.FS) *App {
	return &App{Source: label, fsys: fsys}
}

// IncludesFile reports whether name exists relative to the project root.
// Invalid names and stat failures both report false.
func (a *App) IncludesFile(name string) bool {
	if errors.ValidatePath(name) != nil {
		return false
	}
	_, err := fs.Stat(a.fsys, filepath.ToSlash(name))
	return err == nil
}

// ReadFile returns the full contents of name.
// Missing files fail with [errors.ErrCodeFileNotFound], other read failures
// with [errors.ErrCodeIO].
func (a *App) ReadFile(name string) (string, error) {
	if err := errors.ValidatePath(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(a.fsys, filepath.ToSlash(name))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", name)
		}
		return "", errors.Wrap(errors.ErrCodeIO, err, "read %s", name)
	}
	return string(data), nil
}
