package ports

type ManifestPort interface {
	ReadManifest(path string) (string, error)
	FindManifests(root string) ([]string, error)
}
