package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"framelink/internal/app"
)

type copyOptions struct {
	CopyTool   string
	CopyArgs   []string
	SearchRoot string
	ReportPath string
	DryRun     bool
}

func newCopyCommand() *cobra.Command {
	opts := copyOptions{}
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Resolve linked frameworks and run the copy step",
		Long: "Reads the Xcode build settings from the environment, discovers the frameworks\n" +
			"the application binary links and runs the copy tool with SCRIPT_INPUT_FILE_*\n" +
			"and SCRIPT_OUTPUT_FILE_* set for each one.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCopy(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.CopyTool, "copy-tool", app.DefaultCopyTool, "Copy tool executable")
	cmd.Flags().StringSliceVar(&opts.CopyArgs, "copy-arg", app.DefaultCopyArgs, "Copy tool arguments")
	cmd.Flags().StringVar(&opts.SearchRoot, "search-root", "", "Discovery search root (default SRCROOT/Carthage/Build/<platform>)")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write resolved frameworks as YAML to this path")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the copy environment instead of running the copy tool")
	_ = viper.BindPFlag("copy_tool", cmd.Flags().Lookup("copy-tool"))
	_ = viper.BindPFlag("copy_args", cmd.Flags().Lookup("copy-arg"))
	_ = viper.BindPFlag("search_root", cmd.Flags().Lookup("search-root"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runCopy(ctx context.Context, cmd *cobra.Command, opts copyOptions) error {
	settings, err := loadBuildSettings()
	if err != nil {
		return err
	}
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Copy(ctx, app.CopyRequest{
		Settings:   settings,
		SearchRoot: resolveString(cmd, opts.SearchRoot, "search_root", "search-root"),
		CopyTool:   resolveString(cmd, opts.CopyTool, "copy_tool", "copy-tool"),
		CopyArgs:   resolveStrings(cmd, opts.CopyArgs, "copy_args", "copy-arg"),
		ReportPath: resolveString(cmd, opts.ReportPath, "report", "report"),
		DryRun:     resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Copied {
		printEnvironment(out, result.Environment)
		return nil
	}
	for _, framework := range result.Frameworks {
		fmt.Fprintf(out, "copied: %s\n", framework.Path)
	}
	return nil
}

func printEnvironment(out io.Writer, env map[string]string) {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "%s=%s\n", key, env[key])
	}
}
