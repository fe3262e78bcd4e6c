package types

// BuildSettings is the subset of the Xcode build environment the copy
// step needs. It is constructed once at startup and passed down by value.
type BuildSettings struct {
	BuiltProductsDir     string
	FrameworksFolderPath string
	SourceRoot           string
	ExecutableName       string
	PlatformName         string
	FrameworkSearchPaths string
}

// BuildSettingKey ties a BuildSettings field to its environment variable.
type BuildSettingKey struct {
	Key string
	Env string
}

var BuildSettingKeys = []BuildSettingKey{
	{Key: "built_products_dir", Env: "BUILT_PRODUCTS_DIR"},
	{Key: "frameworks_folder_path", Env: "FRAMEWORKS_FOLDER_PATH"},
	{Key: "srcroot", Env: "SRCROOT"},
	{Key: "executable_name", Env: "EXECUTABLE_NAME"},
	{Key: "platform_name", Env: "PLATFORM_NAME"},
	{Key: "framework_search_paths", Env: "FRAMEWORK_SEARCH_PATHS"},
}
