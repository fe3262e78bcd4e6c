package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/core"
	"framelink/internal/types"
)

// Discover lists the distinct linkage names reachable from a binary.
func (s Service) Discover(ctx context.Context, req DiscoverRequest) (DiscoverResult, error) {
	binaryPath := strings.TrimSpace(req.BinaryPath)
	if binaryPath == "" {
		return DiscoverResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("binary path is required")
	}
	if err := s.requireTool(s.Introspector.Tool()); err != nil {
		return DiscoverResult{}, err
	}
	names, err := core.NewLinkageDiscovery(s.Introspector, s.FileSystem).Discover(ctx, binaryPath, req.SearchRoot)
	if err != nil {
		return DiscoverResult{}, err
	}

	seen := map[string]struct{}{}
	result := DiscoverResult{Bundles: types.UniqueBundles(names)}
	for _, name := range names {
		if _, ok := seen[string(name)]; ok {
			continue
		}
		seen[string(name)] = struct{}{}
		result.Names = append(result.Names, string(name))
	}
	sort.Strings(result.Names)
	sort.Strings(result.Bundles)
	return result, nil
}
