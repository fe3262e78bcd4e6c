package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framelink/internal/types"
)

const (
	appBinary = "/build/App.app/App"
	fwRoot    = "/src/Carthage/Build/iOS"
)

func TestDiscoverTerminatesOnCycle(t *testing.T) {
	introspector := newFakeIntrospector(map[string][]string{
		appBinary:                 rpath("A.framework/A"),
		fwRoot + "/A.framework/A": rpath("B.framework/B"),
		fwRoot + "/B.framework/B": rpath("A.framework/A"),
	})
	fs := newFakeFileSystem(fwRoot+"/A.framework/A", fwRoot+"/B.framework/B")

	names, err := NewLinkageDiscovery(introspector, fs).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A.framework/A", "B.framework/B"}, distinct(names)); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
	for path, count := range introspector.calls {
		assert.Equal(t, 1, count, "introspected more than once: %s", path)
	}
}

func TestDiscoverDiamondIntrospectsSharedNodeOnce(t *testing.T) {
	introspector := newFakeIntrospector(map[string][]string{
		appBinary:                 rpath("A.framework/A", "B.framework/B"),
		fwRoot + "/A.framework/A": rpath("C.framework/C"),
		fwRoot + "/B.framework/B": rpath("C.framework/C"),
	})
	fs := newFakeFileSystem(fwRoot+"/A.framework/A", fwRoot+"/B.framework/B", fwRoot+"/C.framework/C")

	names, err := NewLinkageDiscovery(introspector, fs).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.framework/A", "B.framework/B", "C.framework/C"}, distinct(names))
	assert.Equal(t, 1, introspector.calls[fwRoot+"/C.framework/C"])
	// C is emitted by both parents; the raw result keeps both.
	assert.Len(t, names, 4)
}

func TestDiscoverPrunesNamesMissingFromSearchRoot(t *testing.T) {
	introspector := newFakeIntrospector(map[string][]string{
		appBinary:                 rpath("A.framework/A", "Missing.framework/Missing"),
		fwRoot + "/A.framework/A": rpath("Missing.framework/Missing"),
	})
	fs := newFakeFileSystem(fwRoot + "/A.framework/A")

	names, err := NewLinkageDiscovery(introspector, fs).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	assert.Equal(t, []types.LinkedName{"A.framework/A"}, names)
	assert.Zero(t, introspector.calls[fwRoot+"/Missing.framework/Missing"])
}

func TestDiscoverTreatsIntrospectionFailureAsLeaf(t *testing.T) {
	introspector := newFakeIntrospector(map[string][]string{
		appBinary:                 rpath("A.framework/A", "B.framework/B"),
		fwRoot + "/A.framework/A": rpath("Hidden.framework/Hidden"),
		fwRoot + "/B.framework/B": rpath("C.framework/C"),
	})
	introspector.fails[fwRoot+"/A.framework/A"] = true
	fs := newFakeFileSystem(
		fwRoot+"/A.framework/A",
		fwRoot+"/B.framework/B",
		fwRoot+"/C.framework/C",
		fwRoot+"/Hidden.framework/Hidden",
	)

	names, err := NewLinkageDiscovery(introspector, fs).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.framework/A", "B.framework/B", "C.framework/C"}, distinct(names))
}

func TestDiscoverUnreadableApplicationYieldsNothing(t *testing.T) {
	introspector := newFakeIntrospector(nil)
	introspector.fails[appBinary] = true

	names, err := NewLinkageDiscovery(introspector, newFakeFileSystem()).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDiscoverSelfReferenceIsSkipped(t *testing.T) {
	// otool -L lists a dylib's own install name first.
	introspector := newFakeIntrospector(map[string][]string{
		appBinary:                 rpath("A.framework/A"),
		fwRoot + "/A.framework/A": rpath("A.framework/A"),
	})
	fs := newFakeFileSystem(fwRoot + "/A.framework/A")

	names, err := NewLinkageDiscovery(introspector, fs).Discover(t.Context(), appBinary, fwRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.framework/A"}, distinct(names))
	assert.Equal(t, 1, introspector.calls[fwRoot+"/A.framework/A"])
}

func TestDiscoverRequiresArguments(t *testing.T) {
	discovery := NewLinkageDiscovery(newFakeIntrospector(nil), newFakeFileSystem())

	_, err := discovery.Discover(t.Context(), appBinary, " ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "search root is required")

	_, err = discovery.Discover(t.Context(), "", fwRoot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binary path is required")

	_, err = LinkageDiscovery{}.Discover(t.Context(), appBinary, fwRoot)
	require.Error(t, err)
}

func TestFilterLinkedNames(t *testing.T) {
	lines := []string{
		"/build/App.app/App:",
		"\t@rpath/Bolts.framework/Bolts (compatibility version 1.0.0, current version 1.0.0)",
		"\t/System/Library/Frameworks/UIKit.framework/UIKit (compatibility version 1.0.0, current version 61000.0.0)",
		"\t/usr/lib/libobjc.A.dylib (compatibility version 1.0.0, current version 228.0.0)",
		"\t@rpath/libswiftCore.dylib (compatibility version 1.0.0, current version 1001.0.0)",
		"\t@rpath/libsqlite-local.dylib (compatibility version 9.0.0, current version 9.6.0)",
		"\t@executable_path/Frameworks/Other.framework/Other (compatibility version 1.0.0)",
		"\t@rpath/ (compatibility version 1.0.0)",
		"",
	}
	expected := []types.LinkedName{"Bolts.framework/Bolts", "libsqlite-local.dylib"}
	if diff := cmp.Diff(expected, FilterLinkedNames(lines)); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}
