package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"framelink/internal/ports"
	"framelink/internal/shared"
	"framelink/internal/types"
)

// SearchPathResolver maps names to the first search directory holding a
// same-named item.
type SearchPathResolver struct {
	FileSystem ports.FileSystemPort
}

func NewSearchPathResolver(fs ports.FileSystemPort) SearchPathResolver {
	return SearchPathResolver{FileSystem: fs}
}

// Resolve is all-or-nothing: the first name with no match aborts the batch
// with a FrameworkNotFound error naming it.
func (r SearchPathResolver) Resolve(ctx context.Context, names []string, searchPaths []string) ([]types.ResolvedFramework, error) {
	if r.FileSystem == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a filesystem port")
	}
	resolved := make([]types.ResolvedFramework, 0, len(names))
	for _, name := range names {
		path, ok := r.locate(name, searchPaths)
		if !ok {
			log.Ctx(ctx).Debug().Str("name", name).Strs("search_paths", searchPaths).Msg("no search path matched")
			return nil, types.FrameworkNotFoundError(name)
		}
		resolved = append(resolved, types.ResolvedFramework{Name: name, Path: path})
	}
	return resolved, nil
}

func (r SearchPathResolver) locate(name string, searchPaths []string) (string, bool) {
	for _, dir := range searchPaths {
		candidate := shared.JoinPath(dir, name)
		if r.FileSystem.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
