// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root. Test packages
// live two levels below it (internal/integration, tests/e2e).
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Fixture returns the path of a file under the repository's fixtures
// directory and fails the test when it does not exist.
func Fixture(t *testing.T, elems ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{RepoRoot(t), "fixtures"}, elems...)...)
	_, err := os.Stat(path)
	require.NoError(t, err, "fixture missing: %s", path)
	return path
}
