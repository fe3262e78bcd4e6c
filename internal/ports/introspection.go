package ports

import "context"

// IntrospectorPort asks an external tool which shared libraries a compiled
// binary links against.
type IntrospectorPort interface {
	// LinkedLibraries returns the raw dependency lines reported for
	// binaryPath. A tool failure is returned as an error; a binary without
	// dependencies yields an empty slice and no error.
	LinkedLibraries(ctx context.Context, binaryPath string) ([]string, error)

	// Tool names the executable the adapter shells out to.
	Tool() string
}
