package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"framelink/internal/adapters"
	"framelink/internal/types"
)

type fakeIntrospector struct {
	links map[string][]string
}

func (f fakeIntrospector) LinkedLibraries(_ context.Context, binaryPath string) ([]string, error) {
	return f.links[binaryPath], nil
}

func (f fakeIntrospector) Tool() string {
	return "otool"
}

type recordingRunner struct {
	missing map[string]bool
	runErr  error
	runs    []types.Command
}

func (r *recordingRunner) Run(_ context.Context, cmd types.Command) error {
	r.runs = append(r.runs, cmd)
	return r.runErr
}

func (r *recordingRunner) Output(_ context.Context, cmd types.Command) (string, error) {
	r.runs = append(r.runs, cmd)
	return "", r.runErr
}

func (r *recordingRunner) LookPath(name string) (string, error) {
	if r.missing[name] {
		return "", types.ToolNotInstalledError(name, errors.New("executable file not found in $PATH"))
	}
	return "/usr/local/bin/" + name, nil
}

type fakeProject struct {
	names []string
	err   error
}

func (f fakeProject) LinkedFrameworkNames(_ string, _ string) ([]string, error) {
	return f.names, f.err
}

func newTestService(links map[string][]string, runner *recordingRunner) Service {
	return NewService(
		fakeIntrospector{links: links},
		adapters.NewLocalFileSystemAdapter(),
		runner,
		fakeProject{},
		adapters.NewManifestFileAdapter(),
		adapters.NewReportFileAdapter(),
	)
}

func rpath(names ...string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "\t@rpath/"+name+" (compatibility version 1.0.0, current version 1.0.0)")
	}
	return lines
}

// touch creates an empty file and any missing parent directories.
func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}
