package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framelink/internal/adapters"
	"framelink/internal/types"
)

func newFrameworksService(project fakeProject) Service {
	svc := newTestService(nil, &recordingRunner{})
	svc.Project = project
	return svc
}

func TestFrameworksListsTargetFrameworks(t *testing.T) {
	svc := newFrameworksService(fakeProject{names: []string{"Bolts", "Parse"}})

	result, err := svc.Frameworks(t.Context(), FrameworksRequest{ProjectPath: "App.xcodeproj", Target: "App"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bolts", "Parse"}, result.Names)
	assert.Empty(t, result.Resolved)
}

func TestFrameworksResolvesAgainstSearchPaths(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Vendor", "Bolts.framework", "Bolts"))
	touch(t, filepath.Join(root, "Carthage", "Build", "iOS", "Bolts.framework", "Bolts"))
	touch(t, filepath.Join(root, "Carthage", "Build", "iOS", "Parse.framework", "Parse"))
	svc := newFrameworksService(fakeProject{names: []string{"Bolts", "Parse"}})

	result, err := svc.Frameworks(t.Context(), FrameworksRequest{
		ProjectPath: "App.xcodeproj",
		Target:      "App",
		SearchPaths: `$(inherited) Vendor "Carthage/Build/iOS"`,
		SourceRoot:  root,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.ResolvedFramework{
		{Name: "Bolts.framework", Path: filepath.Join(root, "Vendor", "Bolts.framework")},
		{Name: "Parse.framework", Path: filepath.Join(root, "Carthage", "Build", "iOS", "Parse.framework")},
	}, result.Resolved)
}

func TestFrameworksPropagatesProjectErrors(t *testing.T) {
	svc := newFrameworksService(fakeProject{err: errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("target not found: Watch")})

	_, err := svc.Frameworks(t.Context(), FrameworksRequest{ProjectPath: "App.xcodeproj", Target: "Watch"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestFrameworksReadsRealProject(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "App.xcodeproj")
	writeFile(t, filepath.Join(projectDir, "project.pbxproj"), minimalPBXProj)
	svc := newFrameworksService(fakeProject{})
	svc.Project = adapters.NewXcodeProjectAdapter()

	result, err := svc.Frameworks(t.Context(), FrameworksRequest{ProjectPath: projectDir, Target: "App"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bolts"}, result.Names)
}

const minimalPBXProj = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 54;
	objects = {
		A10000000000000000000001 /* Bolts.framework in Frameworks */ = {isa = PBXBuildFile; fileRef = A20000000000000000000001 /* Bolts.framework */; };
		A20000000000000000000001 /* Bolts.framework */ = {isa = PBXFileReference; lastKnownFileType = wrapper.framework; name = Bolts.framework; path = Carthage/Build/iOS/Bolts.framework; sourceTree = "<group>"; };
		A30000000000000000000001 /* Frameworks */ = {
			isa = PBXFrameworksBuildPhase;
			buildActionMask = 2147483647;
			files = (
				A10000000000000000000001 /* Bolts.framework in Frameworks */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
		A40000000000000000000001 /* App */ = {
			isa = PBXNativeTarget;
			buildPhases = (
				A30000000000000000000001 /* Frameworks */,
			);
			name = App;
			productName = App;
		};
	};
	rootObject = A50000000000000000000001 /* Project object */;
}
`
