package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"framelink/internal/app"
)

type discoverOptions struct {
	BinaryPath string
	SearchRoot string
	Bundles    bool
}

func newDiscoverCommand() *cobra.Command {
	opts := discoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List the vendored frameworks a binary links, transitively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.BinaryPath, "binary", "", "Binary to inspect")
	cmd.Flags().StringVar(&opts.SearchRoot, "search-root", "", "Directory holding the vendored frameworks")
	cmd.Flags().BoolVar(&opts.Bundles, "bundles", false, "Print bundle names instead of link names")
	_ = viper.BindPFlag("binary", cmd.Flags().Lookup("binary"))
	_ = viper.BindPFlag("search_root", cmd.Flags().Lookup("search-root"))
	return cmd
}

func runDiscover(ctx context.Context, cmd *cobra.Command, opts discoverOptions) error {
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Discover(ctx, app.DiscoverRequest{
		BinaryPath: resolveString(cmd, opts.BinaryPath, "binary", "binary"),
		SearchRoot: resolveString(cmd, opts.SearchRoot, "search_root", "search-root"),
	})
	if err != nil {
		return err
	}
	names := result.Names
	if opts.Bundles {
		names = result.Bundles
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
