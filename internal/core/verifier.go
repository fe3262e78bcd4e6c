package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"framelink/internal/types"
)

// Verifier checks that an application bundle carries every framework its
// binary transitively links.
type Verifier struct {
	Discovery LinkageDiscovery
}

func NewVerifier(discovery LinkageDiscovery) Verifier {
	return Verifier{Discovery: discovery}
}

// Verify discovers the dependencies of binaryPath under searchRoot and
// compares them with the bundled (or expected) framework names. Names are
// compared without extension, so "Bolts.framework" satisfies "Bolts".
func (v Verifier) Verify(ctx context.Context, binaryPath string, searchRoot string, bundled []string) (types.VerifyReport, error) {
	names, err := v.Discovery.Discover(ctx, binaryPath, searchRoot)
	if err != nil {
		return types.VerifyReport{}, err
	}

	discovered := frameworkSet(nil)
	for _, name := range names {
		discovered[name.Framework()] = struct{}{}
	}
	present := frameworkSet(bundled)

	report := types.VerifyReport{
		Discovered: sortedKeys(discovered),
		Bundled:    sortedKeys(present),
	}
	for _, name := range report.Discovered {
		if _, ok := present[name]; !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	if len(report.Missing) > 0 {
		log.Ctx(ctx).Warn().Strs("missing", report.Missing).Msg("bundle is missing dependencies")
		return report, types.MissingDependencyError(report.Missing)
	}
	return report, nil
}

func frameworkSet(values []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, value := range values {
		name := types.FrameworkName(value)
		if name == "" || name == "." {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
