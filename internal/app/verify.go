package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/core"
	"framelink/internal/shared"
	"framelink/internal/types"
)

// Verify checks a built application bundle against the frameworks its
// binary links. Without an expected list the bundle's own Frameworks
// folder is the reference set.
func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	appPath := strings.TrimSpace(req.AppPath)
	if appPath == "" {
		return VerifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("application bundle path is required")
	}
	searchRoot := strings.TrimSpace(req.SearchRoot)
	if searchRoot == "" {
		return VerifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is required")
	}
	if err := s.requireTool(s.Introspector.Tool()); err != nil {
		return VerifyResult{}, err
	}

	executable := strings.TrimSpace(req.Executable)
	if executable == "" {
		executable = types.FrameworkName(appPath)
	}
	mac := s.FileSystem.Exists(shared.JoinPath(appPath, "Contents", "MacOS"))
	result := VerifyResult{BinaryPath: bundleBinaryPath(appPath, executable, mac)}

	expected, err := s.expectedFrameworks(req.ExpectedPath, bundleFrameworksDir(appPath, mac))
	if err != nil {
		return VerifyResult{}, err
	}
	report, err := core.NewVerifier(core.NewLinkageDiscovery(s.Introspector, s.FileSystem)).
		Verify(ctx, result.BinaryPath, searchRoot, expected)
	result.Report = report
	return result, err
}

func (s Service) expectedFrameworks(expectedPath string, frameworksDir string) ([]string, error) {
	if strings.TrimSpace(expectedPath) != "" {
		return s.Report.ReadExpected(expectedPath)
	}
	entries, err := s.FileSystem.ListDir(frameworksDir)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}
