package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
)

// Store holds slots for the lifetime of the process only.
type Store struct {
	mu    sync.RWMutex
	slots map[string]string
}

var _ ports.SlotStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{slots: map[string]string{}}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return "", fmt.Errorf("slot %q: %w", key, domain.ErrSlotNotFound)
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)

	return nil
}
