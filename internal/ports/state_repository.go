package ports

import (
	"context"

	"github.com/bnema/ignite-timer/internal/domain"
)

type CycleStateRepository interface {
	Load(ctx context.Context) (domain.CyclesState, error)
	Save(ctx context.Context, state domain.CyclesState) error
}
