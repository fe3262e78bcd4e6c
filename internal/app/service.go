package app

import "framelink/internal/ports"

type Service struct {
	Introspector   ports.IntrospectorPort
	FileSystem     ports.FileSystemPort
	Runner         ports.CommandRunnerPort
	Project        ports.ProjectPort
	ManifestSource ports.ManifestPort
	Report         ports.ReportPort
}

func NewService(
	introspector ports.IntrospectorPort,
	fs ports.FileSystemPort,
	runner ports.CommandRunnerPort,
	project ports.ProjectPort,
	manifest ports.ManifestPort,
	report ports.ReportPort,
) Service {
	return Service{
		Introspector:   introspector,
		FileSystem:     fs,
		Runner:         runner,
		Project:        project,
		ManifestSource: manifest,
		Report:         report,
	}
}
