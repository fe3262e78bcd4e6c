package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"framelink/internal/app"
)

type verifyOptions struct {
	AppPath      string
	Executable   string
	SearchRoot   string
	ExpectedPath string
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that an app bundle carries every framework its binary links",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.AppPath, "app", "", "Path to the .app bundle")
	cmd.Flags().StringVar(&opts.Executable, "executable", "", "Executable name (default: bundle name)")
	cmd.Flags().StringVar(&opts.SearchRoot, "search-root", "", "Directory holding the vendored frameworks")
	cmd.Flags().StringVar(&opts.ExpectedPath, "expected", "", "YAML file listing the expected frameworks")
	_ = viper.BindPFlag("app", cmd.Flags().Lookup("app"))
	_ = viper.BindPFlag("executable", cmd.Flags().Lookup("executable"))
	_ = viper.BindPFlag("search_root", cmd.Flags().Lookup("search-root"))
	_ = viper.BindPFlag("expected", cmd.Flags().Lookup("expected"))
	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, opts verifyOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Verify(ctx, app.VerifyRequest{
		AppPath:      resolveString(cmd, opts.AppPath, "app", "app"),
		Executable:   resolveString(cmd, opts.Executable, "executable", "executable"),
		SearchRoot:   resolveString(cmd, opts.SearchRoot, "search_root", "search-root"),
		ExpectedPath: resolveString(cmd, opts.ExpectedPath, "expected", "expected"),
	})
	out := cmd.OutOrStdout()
	for _, name := range result.Report.Missing {
		fmt.Fprintf(out, "missing: %s\n", name)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "verified: %d frameworks linked by %s\n", len(result.Report.Discovered), result.BinaryPath)
	return nil
}
