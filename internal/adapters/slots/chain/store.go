package chain

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	filestore "github.com/bnema/ignite-timer/internal/adapters/slots/file"
	memorystore "github.com/bnema/ignite-timer/internal/adapters/slots/memory"
	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
)

// Store serves slots from primary until primary fails once, then serves
// every later call from fallback for the rest of the process.
type Store struct {
	primary  ports.SlotStore
	fallback ports.SlotStore
	degraded atomic.Bool
}

var _ ports.SlotStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary slot store is nil")
	errNilFallbackStore = errors.New("fallback slot store is nil")
)

func NewStore(primary ports.SlotStore, fallback ports.SlotStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SlotStore, fallback ports.SlotStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewFileFirstWithMemoryFallback(fileRoot string) (*Store, error) {
	return NewStoreChecked(filestore.NewStore(fileRoot), memorystore.NewStore())
}

// Degraded reports whether the primary backend has been abandoned.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if s.degraded.Load() {
		return s.fallback.Put(ctx, key, value)
	}

	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	s.degraded.Store(true)
	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.degraded.Load() {
		return s.fallback.Get(ctx, key)
	}

	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) || errors.Is(err, domain.ErrSlotNotFound) {
		return "", err
	}

	s.degraded.Store(true)
	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.degraded.Load() {
		return s.fallback.Delete(ctx, key)
	}

	err := s.primary.Delete(ctx, key)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	s.degraded.Store(true)
	fallbackErr := s.fallback.Delete(ctx, key)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
