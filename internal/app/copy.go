package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"framelink/internal/core"
	"framelink/internal/shared"
	"framelink/internal/types"
)

const (
	DefaultCopyTool = "carthage"

	scriptInputFile       = "SCRIPT_INPUT_FILE_"
	scriptOutputFile      = "SCRIPT_OUTPUT_FILE_"
	scriptInputFileCount  = "SCRIPT_INPUT_FILE_COUNT"
	scriptOutputFileCount = "SCRIPT_OUTPUT_FILE_COUNT"
)

var DefaultCopyArgs = []string{"copy-frameworks"}

// Copy discovers the frameworks the application links, resolves each one
// against the framework search paths and hands the list to the copy tool
// through numbered SCRIPT_INPUT_FILE / SCRIPT_OUTPUT_FILE variables.
func (s Service) Copy(ctx context.Context, req CopyRequest) (CopyResult, error) {
	settings := req.Settings
	platformDir, err := PlatformDirectory(settings.PlatformName)
	if err != nil {
		return CopyResult{}, err
	}
	copyTool := strings.TrimSpace(req.CopyTool)
	if copyTool == "" {
		copyTool = DefaultCopyTool
	}
	copyArgs := req.CopyArgs
	if len(copyArgs) == 0 {
		copyArgs = DefaultCopyArgs
	}

	if err := s.requireTool(s.Introspector.Tool()); err != nil {
		return CopyResult{}, err
	}
	if !req.DryRun {
		if err := s.requireTool(copyTool); err != nil {
			return CopyResult{}, err
		}
	}

	result := CopyResult{
		Platform:   platformDir,
		BinaryPath: ApplicationBinaryPath(settings, platformDir),
		SearchRoot: strings.TrimSpace(req.SearchRoot),
	}
	if result.SearchRoot == "" {
		result.SearchRoot = CarthageBuildDir(settings, platformDir)
	}

	names, err := core.NewLinkageDiscovery(s.Introspector, s.FileSystem).Discover(ctx, result.BinaryPath, result.SearchRoot)
	if err != nil {
		return CopyResult{}, err
	}
	bundles := types.UniqueBundles(names)
	log.Ctx(ctx).Debug().
		Str("binary", result.BinaryPath).
		Strs("bundles", bundles).
		Msg("discovered linked frameworks")

	resolved, err := core.NewSearchPathResolver(s.FileSystem).Resolve(ctx, bundles, SearchPaths(settings))
	if err != nil {
		return CopyResult{}, err
	}
	result.Frameworks = resolved
	result.Environment = CopyEnvironment(resolved, FrameworksOutputDir(settings))

	if strings.TrimSpace(req.ReportPath) != "" {
		report := types.FrameworkReport{Platform: platformDir, Frameworks: resolved}
		if err := s.Report.WriteFrameworks(req.ReportPath, report); err != nil {
			return CopyResult{}, err
		}
	}
	if req.DryRun {
		return result, nil
	}
	if len(resolved) == 0 {
		log.Ctx(ctx).Info().Msg("no frameworks to copy")
		return result, nil
	}

	cmd := types.Command{
		Name:    copyTool,
		Argv:    copyArgs,
		Dir:     settings.SourceRoot,
		WithEnv: result.Environment,
	}
	if err := s.Runner.Run(ctx, cmd); err != nil {
		return CopyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("copy step failed: " + copyTool).
			WithCause(err)
	}
	result.Copied = true
	log.Ctx(ctx).Info().Int("frameworks", len(resolved)).Msg("frameworks copied")
	return result, nil
}

// CopyEnvironment numbers the resolved frameworks from zero. Output files
// land in outputDir under the bundle name.
func CopyEnvironment(resolved []types.ResolvedFramework, outputDir string) map[string]string {
	env := map[string]string{
		scriptInputFileCount:  strconv.Itoa(len(resolved)),
		scriptOutputFileCount: strconv.Itoa(len(resolved)),
	}
	for i, framework := range resolved {
		index := strconv.Itoa(i)
		env[scriptInputFile+index] = framework.Path
		env[scriptOutputFile+index] = shared.JoinPath(outputDir, framework.Name)
	}
	return env
}

func (s Service) requireTool(name string) error {
	if s.Runner == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("command runner is not configured")
	}
	_, err := s.Runner.LookPath(name)
	return err
}
