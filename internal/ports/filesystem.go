package ports

// FileSystemPort exposes the existence and enumeration primitives used by
// discovery, resolution and verification.
type FileSystemPort interface {
	Exists(path string) bool
	ListDir(path string) ([]string, error)
}
