package cli

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
	"go.uber.org/dig"

	"framelink/internal/adapters"
	"framelink/internal/app"
	"framelink/internal/ports"
)

type toolConfig struct {
	IntrospectTool string
}

// registerProviders wires adapters bottom-up: runner, then the ports that
// depend on it, then the service.
func registerProviders(container *dig.Container, tools toolConfig) error {
	providers := []any{
		func() toolConfig { return tools },
		func() ports.CommandRunnerPort { return adapters.NewExecRunnerAdapter() },
		func(runner ports.CommandRunnerPort, cfg toolConfig) ports.IntrospectorPort {
			return adapters.NewOtoolAdapter(runner, cfg.IntrospectTool)
		},
		func() ports.FileSystemPort { return adapters.NewLocalFileSystemAdapter() },
		func() ports.ProjectPort { return adapters.NewXcodeProjectAdapter() },
		func() ports.ManifestPort { return adapters.NewManifestFileAdapter() },
		func() ports.ReportPort { return adapters.NewReportFileAdapter() },
		app.NewService,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

func newAppService() (app.Service, error) {
	container := dig.New()
	tools := toolConfig{IntrospectTool: viper.GetString("introspect_tool")}
	if err := registerProviders(container, tools); err != nil {
		return app.Service{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to assemble service").
			WithCause(err)
	}
	var service app.Service
	if err := container.Invoke(func(s app.Service) {
		service = s
	}); err != nil {
		return app.Service{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to assemble service").
			WithCause(err)
	}
	return service, nil
}
