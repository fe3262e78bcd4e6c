package adapters

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"framelink/internal/ports"
	"framelink/internal/shared"
	"framelink/internal/types"
)

type ExecRunnerAdapter struct{}

func NewExecRunnerAdapter() ExecRunnerAdapter {
	return ExecRunnerAdapter{}
}

func (a ExecRunnerAdapter) Run(ctx context.Context, cmd types.Command) error {
	_, err := a.run(ctx, cmd)
	return err
}

func (a ExecRunnerAdapter) Output(ctx context.Context, cmd types.Command) (string, error) {
	return a.run(ctx, cmd)
}

func (a ExecRunnerAdapter) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", types.ToolNotInstalledError(name, err)
	}
	return path, nil
}

func (a ExecRunnerAdapter) run(ctx context.Context, cmd types.Command) (string, error) {
	xc := buildExec(ctx, cmd)
	var stdout, stderr bytes.Buffer
	xc.Stdout = &stdout
	xc.Stderr = &stderr

	log.Ctx(ctx).Debug().Str("cmd", cmd.Name).Strs("args", cmd.Argv).Str("dir", xc.Dir).Msg("running command")
	err := xc.Run()
	if err != nil {
		return stdout.String(), errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command failed: " + cmd.Name).
			WithCause(shared.CommandError(stderr.String(), err))
	}
	return stdout.String(), nil
}

func buildExec(ctx context.Context, cmd types.Command) *exec.Cmd {
	xc := exec.CommandContext(ctx, cmd.Name, cmd.Argv...)
	if cmd.Dir != "" {
		xc.Dir = cmd.Dir
	}
	switch {
	case cmd.Env != nil:
		xc.Env = toEnv(cmd.Env)
	case cmd.WithEnv != nil:
		xc.Env = append(os.Environ(), toEnv(cmd.WithEnv)...)
	default:
		xc.Env = os.Environ()
	}
	return xc
}

func toEnv(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for key, val := range env {
		out = append(out, key+"="+val)
	}
	sort.Strings(out)
	return out
}

var _ ports.CommandRunnerPort = ExecRunnerAdapter{}
