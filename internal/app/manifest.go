package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/mod/semver"

	"framelink/internal/core"
	"framelink/internal/types"
)

const (
	DefaultManifestPath   = "Cartfile"
	privateManifestSuffix = ".private"

	PinTag      = "tag"
	PinRevision = "revision"
)

// Manifest parses dependency declarations from a single manifest, or from
// every manifest below req.Dir. A Cartfile read by path pulls in its
// Cartfile.private sibling when one exists.
func (s Service) Manifest(ctx context.Context, req ManifestRequest) (ManifestResult, error) {
	paths, err := s.manifestPaths(req)
	if err != nil {
		return ManifestResult{}, err
	}
	parser := core.NewManifestParser()
	var result ManifestResult
	for _, path := range paths {
		text, err := s.ManifestSource.ReadManifest(path)
		if err != nil {
			return ManifestResult{}, err
		}
		decls := parser.Parse(ctx, text)
		log.Ctx(ctx).Debug().Str("path", path).Int("declarations", len(decls)).Msg("parsed manifest")
		result.Files = append(result.Files, types.ManifestFile{Path: path, Declarations: decls})
	}
	return result, nil
}

func (s Service) manifestPaths(req ManifestRequest) ([]string, error) {
	if dir := strings.TrimSpace(req.Dir); dir != "" {
		return s.ManifestSource.FindManifests(dir)
	}
	path := strings.TrimSpace(req.Path)
	if path == "" {
		path = DefaultManifestPath
	}
	paths := []string{path}
	if filepath.Base(path) == DefaultManifestPath {
		private := path + privateManifestSuffix
		if s.FileSystem != nil && s.FileSystem.Exists(private) {
			paths = append(paths, private)
		}
	}
	return paths, nil
}

// PinKind labels a version string as a release tag when it reads as a
// semantic version, and as a revision otherwise. The label is for display
// only; versions are never interpreted.
func PinKind(version string) string {
	candidate := strings.TrimSpace(version)
	if !strings.HasPrefix(candidate, "v") {
		candidate = "v" + candidate
	}
	if semver.IsValid(candidate) {
		return PinTag
	}
	return PinRevision
}
