package ids

import (
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
	"github.com/google/uuid"
)

type UUIDGenerator struct{}

var _ ports.IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewCycleID() domain.CycleID {
	return domain.CycleID(uuid.NewString())
}
