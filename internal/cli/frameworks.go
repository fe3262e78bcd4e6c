package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"framelink/internal/app"
)

type frameworksOptions struct {
	ProjectPath string
	Target      string
	SearchPaths string
	SourceRoot  string
}

func newFrameworksCommand() *cobra.Command {
	opts := frameworksOptions{}
	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List the frameworks a project target links",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFrameworks(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ProjectPath, "project", "", "Path to the .xcodeproj or project.pbxproj")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target name")
	cmd.Flags().StringVar(&opts.SearchPaths, "search-paths", "", "Space-separated search paths, as in FRAMEWORK_SEARCH_PATHS")
	cmd.Flags().StringVar(&opts.SourceRoot, "srcroot", "", "Directory relative search paths are anchored at")
	_ = viper.BindPFlag("project", cmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("target", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("search_paths", cmd.Flags().Lookup("search-paths"))
	_ = viper.BindPFlag("srcroot", cmd.Flags().Lookup("srcroot"))
	return cmd
}

func runFrameworks(ctx context.Context, cmd *cobra.Command, opts frameworksOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Frameworks(ctx, app.FrameworksRequest{
		ProjectPath: resolveString(cmd, opts.ProjectPath, "project", "project"),
		Target:      resolveString(cmd, opts.Target, "target", "target"),
		SearchPaths: resolveString(cmd, opts.SearchPaths, "search_paths", "search-paths"),
		SourceRoot:  resolveString(cmd, opts.SourceRoot, "srcroot", "srcroot"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(result.Resolved) == 0 {
		for _, name := range result.Names {
			fmt.Fprintln(out, name)
		}
		return nil
	}
	for _, framework := range result.Resolved {
		fmt.Fprintf(out, "%s\t%s\n", framework.Name, framework.Path)
	}
	return nil
}
