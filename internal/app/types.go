package app

import "framelink/internal/types"

type CopyRequest struct {
	Settings   types.BuildSettings
	SearchRoot string
	CopyTool   string
	CopyArgs   []string
	ReportPath string
	DryRun     bool
}

type CopyResult struct {
	Platform    string
	BinaryPath  string
	SearchRoot  string
	Frameworks  []types.ResolvedFramework
	Environment map[string]string
	Copied      bool
}

type VerifyRequest struct {
	AppPath      string
	Executable   string
	SearchRoot   string
	ExpectedPath string
}

type VerifyResult struct {
	BinaryPath string
	Report     types.VerifyReport
}

type DiscoverRequest struct {
	BinaryPath string
	SearchRoot string
}

type DiscoverResult struct {
	Names   []string
	Bundles []string
}

type ManifestRequest struct {
	Path string
	Dir  string
}

type ManifestResult struct {
	Files []types.ManifestFile
}

type FrameworksRequest struct {
	ProjectPath string
	Target      string
	SearchPaths string
	SourceRoot  string
}

type FrameworksResult struct {
	Names    []string
	Resolved []types.ResolvedFramework
}
