package shared

import (
	"strings"

	"github.com/google/uuid"
)

const escapedSpace = `\ `

// SplitEnvList splits a build-setting list such as FRAMEWORK_SEARCH_PATHS.
// Entries are separated by spaces; a space that belongs to an entry is
// written as a backslash followed by a space. Empty entries are dropped.
func SplitEnvList(value string) []string {
	placeholder := uuid.NewString()
	masked := strings.ReplaceAll(value, escapedSpace, placeholder)
	var entries []string
	for _, token := range strings.Split(masked, " ") {
		if token == "" {
			continue
		}
		entries = append(entries, strings.ReplaceAll(token, placeholder, " "))
	}
	return entries
}

// CleanSearchPaths prepares split entries for lookup: surrounding quotes
// are removed, `$(inherited)` is skipped and relative entries are anchored
// at root.
func CleanSearchPaths(entries []string, root string) []string {
	var paths []string
	for _, entry := range entries {
		entry = strings.Trim(strings.TrimSpace(entry), `"`)
		if entry == "" || entry == "$(inherited)" {
			continue
		}
		paths = append(paths, ResolvePath(root, entry))
	}
	return paths
}
