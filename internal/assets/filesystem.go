package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves styles from {basePath}/styles.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

var _ StyleLoader = (*FilesystemLoader)(nil)

// NewFilesystemLoader checks that basePath is a readable directory.
// Returns ErrInvalidBasePath otherwise.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	if _, err := os.ReadDir(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, root)
		}
		// Also reached when root is a regular file.
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{root: root}, nil
}

// LoadStyle reads {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	file, err := f.contained(filepath.Join(f.root, "styles", styleFile(name)))
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(file) // #nosec G304 -- contained in root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(data), nil
}

// contained resolves symlinks in file and fails with ErrPathTraversal if
// the result leaves the root. A file that does not exist yet is checked
// as written.
func (f *FilesystemLoader) contained(file string) (string, error) {
	if real, err := filepath.EvalSymlinks(file); err == nil {
		file = real
	}
	if !strings.HasPrefix(file, f.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, file, f.root)
	}
	return file, nil
}
