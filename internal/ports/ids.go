package ports

import "github.com/bnema/ignite-timer/internal/domain"

type IDGenerator interface {
	NewCycleID() domain.CycleID
}
