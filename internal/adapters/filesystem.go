package adapters

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/ports"
)

type LocalFileSystemAdapter struct{}

func NewLocalFileSystemAdapter() LocalFileSystemAdapter {
	return LocalFileSystemAdapter{}
}

// Exists reports whether a file or directory is present. Stat errors,
// including a non-directory parent, count as absent.
func (a LocalFileSystemAdapter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (a LocalFileSystemAdapter) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("directory not found: " + path).
			WithCause(err)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read directory: " + path).
			WithCause(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

var _ ports.FileSystemPort = LocalFileSystemAdapter{}
