package core

import (
	"context"
	"errors"
	"sort"

	"framelink/internal/types"
)

type fakeIntrospector struct {
	links map[string][]string
	fails map[string]bool
	calls map[string]int
}

func newFakeIntrospector(links map[string][]string) *fakeIntrospector {
	return &fakeIntrospector{
		links: links,
		fails: map[string]bool{},
		calls: map[string]int{},
	}
}

func (f *fakeIntrospector) LinkedLibraries(_ context.Context, binaryPath string) ([]string, error) {
	f.calls[binaryPath]++
	if f.fails[binaryPath] {
		return nil, errors.New("otool: can't open file")
	}
	return f.links[binaryPath], nil
}

func (f *fakeIntrospector) Tool() string {
	return "otool"
}

type fakeFileSystem struct {
	paths map[string]bool
	dirs  map[string][]string
}

func newFakeFileSystem(paths ...string) fakeFileSystem {
	fs := fakeFileSystem{paths: map[string]bool{}, dirs: map[string][]string{}}
	for _, path := range paths {
		fs.paths[path] = true
	}
	return fs
}

func (f fakeFileSystem) Exists(path string) bool {
	return f.paths[path]
}

func (f fakeFileSystem) ListDir(path string) ([]string, error) {
	entries, ok := f.dirs[path]
	if !ok {
		return nil, errors.New("no such directory")
	}
	return entries, nil
}

func rpath(names ...string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "\t@rpath/"+name+" (compatibility version 1.0.0, current version 1.0.0)")
	}
	return lines
}

func distinct(names []types.LinkedName) []string {
	set := map[string]struct{}{}
	for _, name := range names {
		set[string(name)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
