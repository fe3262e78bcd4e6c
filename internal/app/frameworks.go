package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"framelink/internal/core"
	"framelink/internal/shared"
)

const frameworkExtension = ".framework"

// Frameworks lists the frameworks a target links in its project file and,
// when search paths are given, resolves each one to a directory.
func (s Service) Frameworks(ctx context.Context, req FrameworksRequest) (FrameworksResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return FrameworksResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project path is required")
	}
	names, err := s.Project.LinkedFrameworkNames(req.Target, projectPath)
	if err != nil {
		return FrameworksResult{}, err
	}
	log.Ctx(ctx).Debug().Str("target", req.Target).Strs("frameworks", names).Msg("read linked frameworks")

	result := FrameworksResult{Names: names}
	if strings.TrimSpace(req.SearchPaths) == "" {
		return result, nil
	}
	searchPaths := shared.CleanSearchPaths(shared.SplitEnvList(req.SearchPaths), req.SourceRoot)
	bundles := make([]string, 0, len(names))
	for _, name := range names {
		bundles = append(bundles, name+frameworkExtension)
	}
	resolved, err := core.NewSearchPathResolver(s.FileSystem).Resolve(ctx, bundles, searchPaths)
	if err != nil {
		return FrameworksResult{}, err
	}
	result.Resolved = resolved
	return result, nil
}
