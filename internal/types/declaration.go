package types

type SourceKind string

const (
	// SourceKindHostedGit is an `owner/repo` shorthand resolved against the hosting domain.
	SourceKindHostedGit SourceKind = "github"
	// SourceKindDirectGit carries an explicit remote URL.
	SourceKindDirectGit SourceKind = "git"
)

// Declaration is one dependency parsed from a Cartfile line. The version
// is kept verbatim; it may be a tag or a commit hash.
type Declaration struct {
	Kind      SourceKind `yaml:"kind"`
	RepoName  string     `yaml:"repo_name"`
	RemoteURL string     `yaml:"remote_url"`
	Version   string     `yaml:"version"`
}

// ManifestFile groups the declarations read from a single manifest path.
type ManifestFile struct {
	Path         string        `yaml:"path"`
	Declarations []Declaration `yaml:"declarations"`
}
