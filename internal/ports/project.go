package ports

// ProjectPort reads the frameworks a build target links from a project file.
type ProjectPort interface {
	LinkedFrameworkNames(target string, projectPath string) ([]string, error)
}
