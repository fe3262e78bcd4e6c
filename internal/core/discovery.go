package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"framelink/internal/ports"
	"framelink/internal/shared"
	"framelink/internal/types"
)

const (
	relocatablePrefix   = "@rpath/"
	swiftRuntimePrefix  = "libswift"
	loadMetadataOpening = "("
)

// LinkageDiscovery walks the transitive closure of @rpath dependencies of a
// binary, restricted to items that exist under a search root.
type LinkageDiscovery struct {
	Introspector ports.IntrospectorPort
	FileSystem   ports.FileSystemPort
}

func NewLinkageDiscovery(introspector ports.IntrospectorPort, fs ports.FileSystemPort) LinkageDiscovery {
	return LinkageDiscovery{
		Introspector: introspector,
		FileSystem:   fs,
	}
}

// Discover returns every dependency name reached from binaryPath. The
// result keeps discovery order and may contain duplicates; callers reduce
// it to a set. Names without a copy under searchRoot are pruned and not
// expanded. Each distinct name is introspected at most once.
func (d LinkageDiscovery) Discover(ctx context.Context, binaryPath string, searchRoot string) ([]types.LinkedName, error) {
	if d.Introspector == nil || d.FileSystem == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("discovery requires introspector and filesystem ports")
	}
	if strings.TrimSpace(binaryPath) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("binary path is required")
	}
	if strings.TrimSpace(searchRoot) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is required")
	}

	work := d.directDependencies(ctx, binaryPath)
	result := append([]types.LinkedName(nil), work...)
	visited := map[types.LinkedName]struct{}{}

	for len(work) > 0 {
		name := work[0]
		work = work[1:]
		if _, ok := visited[name]; ok {
			continue
		}
		candidate := shared.JoinPath(searchRoot, string(name))
		if !d.FileSystem.Exists(candidate) {
			log.Ctx(ctx).Debug().Str("name", string(name)).Str("path", candidate).Msg("dependency not vendored, pruning")
			result = removeLinkedName(result, name)
			continue
		}
		visited[name] = struct{}{}
		deps := d.directDependencies(ctx, candidate)
		work = append(work, deps...)
		result = append(result, deps...)
	}

	log.Ctx(ctx).Debug().
		Str("binary", binaryPath).
		Int("expanded", len(visited)).
		Int("names", len(result)).
		Msg("linkage discovery completed")
	return result, nil
}

// directDependencies introspects one binary. Failures are logged and
// treated as "no further dependencies" so one unreadable binary does not
// stop the walk.
func (d LinkageDiscovery) directDependencies(ctx context.Context, binaryPath string) []types.LinkedName {
	lines, err := d.Introspector.LinkedLibraries(ctx, binaryPath)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("binary", binaryPath).Msg("introspection failed, treating binary as leaf")
		return nil
	}
	return FilterLinkedNames(lines)
}

// FilterLinkedNames keeps @rpath entries from raw link lines, drops the
// trailing load metadata and the Swift runtime libraries, and returns the
// names relative to @rpath.
func FilterLinkedNames(lines []string) []types.LinkedName {
	var names []types.LinkedName
	for _, line := range lines {
		entry := line
		if idx := strings.Index(entry, loadMetadataOpening); idx >= 0 {
			entry = entry[:idx]
		}
		entry = strings.TrimSpace(entry)
		if !strings.HasPrefix(entry, relocatablePrefix) {
			continue
		}
		name := strings.TrimPrefix(entry, relocatablePrefix)
		if name == "" || strings.HasPrefix(name, swiftRuntimePrefix) {
			continue
		}
		names = append(names, types.LinkedName(name))
	}
	return names
}

func removeLinkedName(names []types.LinkedName, target types.LinkedName) []types.LinkedName {
	kept := names[:0]
	for _, name := range names {
		if name != target {
			kept = append(kept, name)
		}
	}
	return kept
}
