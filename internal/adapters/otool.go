package adapters

import (
	"context"
	"strings"

	"framelink/internal/ports"
	"framelink/internal/types"
)

const defaultIntrospectTool = "otool"

// OtoolAdapter lists load commands with `otool -L`.
type OtoolAdapter struct {
	Runner ports.CommandRunnerPort
	Bin    string
}

func NewOtoolAdapter(runner ports.CommandRunnerPort, bin string) OtoolAdapter {
	if strings.TrimSpace(bin) == "" {
		bin = defaultIntrospectTool
	}
	return OtoolAdapter{Runner: runner, Bin: bin}
}

func (a OtoolAdapter) Tool() string {
	return a.Bin
}

func (a OtoolAdapter) LinkedLibraries(ctx context.Context, binaryPath string) ([]string, error) {
	stdout, err := a.Runner.Output(ctx, types.Command{
		Name: a.Bin,
		Argv: []string{"-L", binaryPath},
	})
	if err != nil {
		return nil, types.IntrospectionFailedError(binaryPath, err)
	}
	var lines []string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

var _ ports.IntrospectorPort = OtoolAdapter{}
