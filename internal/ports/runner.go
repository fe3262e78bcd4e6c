package ports

import (
	"context"

	"framelink/internal/types"
)

type CommandRunnerPort interface {
	Run(ctx context.Context, cmd types.Command) error
	Output(ctx context.Context, cmd types.Command) (string, error)
	LookPath(name string) (string, error)
}
