package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"framelink/internal/app"
	"framelink/internal/types"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type manifestOptions struct {
	Path   string
	Dir    string
	Format string
}

func newManifestCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the dependencies declared in a Cartfile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Path, "manifest", app.DefaultManifestPath, "Manifest path")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Walk this directory for manifests instead")
	cmd.Flags().StringVar(&opts.Format, "format", formatText, "Output format (text|yaml)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runManifest(ctx context.Context, cmd *cobra.Command, opts manifestOptions) error {
	format := resolveString(cmd, opts.Format, "format", "format")
	if format != formatText && format != formatYAML {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported format: " + format)
	}
	service, err := newAppService()
	if err != nil {
		return err
	}
	result, err := service.Manifest(ctx, app.ManifestRequest{
		Path: resolveString(cmd, opts.Path, "manifest", "manifest"),
		Dir:  resolveString(cmd, opts.Dir, "dir", "dir"),
	})
	if err != nil {
		return err
	}
	if format == formatYAML {
		return writeManifestYAML(cmd.OutOrStdout(), result.Files)
	}
	writeManifestText(cmd.OutOrStdout(), result.Files)
	return nil
}

func writeManifestYAML(out io.Writer, files []types.ManifestFile) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(files); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	return encoder.Close()
}

func writeManifestText(out io.Writer, files []types.ManifestFile) {
	for _, file := range files {
		fmt.Fprintf(out, "%s:\n", file.Path)
		for _, decl := range file.Declarations {
			fmt.Fprintf(out, "  %s %s %s %s (%s)\n", decl.Kind, decl.RepoName, decl.RemoteURL, decl.Version, app.PinKind(decl.Version))
		}
	}
}
