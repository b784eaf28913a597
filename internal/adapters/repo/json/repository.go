package json

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
	json "github.com/goccy/go-json"
)

// StateKey is the versioned slot the cycles state lives in. Bump the
// version when the layout changes incompatibly.
const StateKey = "ignite-timer/cycles-state-1.0.0.json"

type Repository struct {
	store ports.SlotStore
	key   string
}

var _ ports.CycleStateRepository = (*Repository)(nil)

func NewRepository(store ports.SlotStore) *Repository {
	return NewRepositoryWithKey(store, StateKey)
}

func NewRepositoryWithKey(store ports.SlotStore, key string) *Repository {
	return &Repository{store: store, key: key}
}

func (r *Repository) Load(ctx context.Context) (domain.CyclesState, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			return domain.EmptyState(), nil
		}
		return domain.CyclesState{}, fmt.Errorf("read cycles state: %w", err)
	}

	return decodeState([]byte(raw))
}

func (r *Repository) Save(ctx context.Context, state domain.CyclesState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := r.store.Put(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("write cycles state: %w", err)
	}

	return nil
}

func encodeState(state domain.CyclesState) ([]byte, error) {
	file := stateSchema{Cycles: make([]cycleSchema, 0, len(state.Cycles))}
	for _, cycle := range state.Cycles {
		file.Cycles = append(file.Cycles, toSchema(cycle))
	}
	if state.ActiveCycleID != "" {
		id := string(state.ActiveCycleID)
		file.ActiveCycleID = &id
	}

	data, err := json.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode cycles state: %w", err)
	}

	return data, nil
}

func decodeState(data []byte) (domain.CyclesState, error) {
	var file stateSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.CyclesState{}, fmt.Errorf("%w: %v", domain.ErrMalformedState, err)
	}

	state := domain.EmptyState()
	for i, entry := range file.Cycles {
		if entry.ID == "" {
			return domain.CyclesState{}, fmt.Errorf("%w: cycle %d has no id", domain.ErrMalformedState, i)
		}
		state.Cycles = append(state.Cycles, fromSchema(entry))
	}
	if file.ActiveCycleID != nil {
		state.ActiveCycleID = domain.CycleID(*file.ActiveCycleID)
	}

	return state, nil
}

func toSchema(cycle domain.Cycle) cycleSchema {
	return cycleSchema{
		ID:              string(cycle.ID),
		Task:            cycle.Task,
		MinutesAmount:   cycle.MinutesAmount,
		StartDate:       cycle.StartDate,
		InterruptedDate: cycle.InterruptedDate,
		FinishedDate:    cycle.FinishedDate,
	}
}

func fromSchema(entry cycleSchema) domain.Cycle {
	return domain.Cycle{
		ID:              domain.CycleID(entry.ID),
		Task:            entry.Task,
		MinutesAmount:   entry.MinutesAmount,
		StartDate:       entry.StartDate,
		InterruptedDate: entry.InterruptedDate,
		FinishedDate:    entry.FinishedDate,
	}
}
