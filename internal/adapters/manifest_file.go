package adapters

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/ports"
)

const (
	manifestName        = "Cartfile"
	privateManifestName = "Cartfile.private"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) ReadManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest not found: " + path).
			WithCause(err)
	}
	return string(data), nil
}

// FindManifests walks root for Cartfile and Cartfile.private files,
// skipping checkouts and build output.
func (a ManifestFileAdapter) FindManifests(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest search root is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipManifestDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		switch d.Name() {
		case manifestName, privateManifestName:
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan for manifests").
			WithCause(err)
	}
	return paths, nil
}

func shouldSkipManifestDir(name string) bool {
	switch name {
	case "Carthage", ".git", "build", "DerivedData", "Pods", ".build":
		return true
	default:
		return false
	}
}

var _ ports.ManifestPort = ManifestFileAdapter{}
