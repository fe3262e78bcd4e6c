package types

import (
	"path/filepath"
	"strings"
)

// LinkedName is a link entry relative to @rpath, for example
// "Bolts.framework/Bolts" or "libfoo.dylib".
type LinkedName string

// Bundle returns the first path segment, which is the on-disk item that
// gets copied into the application bundle.
func (n LinkedName) Bundle() string {
	value := string(n)
	if idx := strings.Index(value, "/"); idx >= 0 {
		return value[:idx]
	}
	return value
}

// Framework returns the bare dependency name without extension.
func (n LinkedName) Framework() string {
	return FrameworkName(n.Bundle())
}

// FrameworkName strips any directory and extension from a bundle name,
// so "Carthage/Build/iOS/Bolts.framework" becomes "Bolts".
func FrameworkName(value string) string {
	base := filepath.Base(strings.TrimSpace(value))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UniqueBundles reduces a discovery result to its distinct bundle names,
// keeping first-seen order.
func UniqueBundles(names []LinkedName) []string {
	seen := map[string]struct{}{}
	var bundles []string
	for _, name := range names {
		bundle := name.Bundle()
		if _, ok := seen[bundle]; ok {
			continue
		}
		seen[bundle] = struct{}{}
		bundles = append(bundles, bundle)
	}
	return bundles
}

// ResolvedFramework pairs a dependency with the first search path entry
// that contains it.
type ResolvedFramework struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type FrameworkReport struct {
	Platform   string              `yaml:"platform,omitempty"`
	Frameworks []ResolvedFramework `yaml:"frameworks"`
}

type ExpectedFrameworks struct {
	Frameworks []string `yaml:"frameworks"`
}

type VerifyReport struct {
	Discovered []string
	Bundled    []string
	Missing    []string
}
