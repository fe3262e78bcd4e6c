package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"framelink/internal/shared"
	"framelink/internal/types"
)

const macPlatform = "Mac"

var platformDirectories = map[string]string{
	"iphoneos":         "iOS",
	"iphonesimulator":  "iOS",
	"macosx":           macPlatform,
	"appletvos":        "tvOS",
	"appletvsimulator": "tvOS",
	"watchos":          "watchOS",
	"watchsimulator":   "watchOS",
	"xros":             "visionOS",
	"xrsimulator":      "visionOS",
}

// LoadBuildSettings builds the settings record from the build environment.
// The first unset variable is reported by name.
func LoadBuildSettings(lookup func(env string) (string, bool)) (types.BuildSettings, error) {
	values := map[string]string{}
	for _, key := range types.BuildSettingKeys {
		value, ok := lookup(key.Env)
		if !ok || strings.TrimSpace(value) == "" {
			return types.BuildSettings{}, types.ConfigurationMissingError(key.Env)
		}
		values[key.Env] = value
	}
	return types.BuildSettings{
		BuiltProductsDir:     values["BUILT_PRODUCTS_DIR"],
		FrameworksFolderPath: values["FRAMEWORKS_FOLDER_PATH"],
		SourceRoot:           values["SRCROOT"],
		ExecutableName:       values["EXECUTABLE_NAME"],
		PlatformName:         values["PLATFORM_NAME"],
		FrameworkSearchPaths: values["FRAMEWORK_SEARCH_PATHS"],
	}, nil
}

// PlatformDirectory maps PLATFORM_NAME to the Carthage build folder name.
func PlatformDirectory(platformName string) (string, error) {
	dir, ok := platformDirectories[strings.ToLower(strings.TrimSpace(platformName))]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported platform: " + platformName)
	}
	return dir, nil
}

func CarthageBuildDir(settings types.BuildSettings, platformDir string) string {
	return shared.JoinPath(settings.SourceRoot, "Carthage", "Build", platformDir)
}

func ApplicationBundlePath(settings types.BuildSettings) string {
	return shared.JoinPath(settings.BuiltProductsDir, settings.ExecutableName+".app")
}

func ApplicationBinaryPath(settings types.BuildSettings, platformDir string) string {
	return bundleBinaryPath(ApplicationBundlePath(settings), settings.ExecutableName, platformDir == macPlatform)
}

func FrameworksOutputDir(settings types.BuildSettings) string {
	return shared.JoinPath(settings.BuiltProductsDir, settings.FrameworksFolderPath)
}

func SearchPaths(settings types.BuildSettings) []string {
	return shared.CleanSearchPaths(shared.SplitEnvList(settings.FrameworkSearchPaths), settings.SourceRoot)
}

func bundleBinaryPath(appPath string, executable string, mac bool) string {
	if mac {
		return shared.JoinPath(appPath, "Contents", "MacOS", executable)
	}
	return shared.JoinPath(appPath, executable)
}

func bundleFrameworksDir(appPath string, mac bool) string {
	if mac {
		return shared.JoinPath(appPath, "Contents", "Frameworks")
	}
	return shared.JoinPath(appPath, "Frameworks")
}
