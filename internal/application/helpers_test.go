package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
	"github.com/stretchr/testify/mock"
)

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *fakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

type fakeTickers struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *fakeTickers) New(time.Duration) ports.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticker := &fakeTicker{ch: make(chan time.Time)}
	f.tickers = append(f.tickers, ticker)
	return ticker
}

func (f *fakeTickers) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func (f *fakeTickers) Last() *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tickers) == 0 {
		return nil
	}
	return f.tickers[len(f.tickers)-1]
}

type inMemoryStateRepo struct {
	mu    sync.Mutex
	state domain.CyclesState
	saves int
}

func (r *inMemoryStateRepo) Load(_ context.Context) (domain.CyclesState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Cycles == nil {
		return domain.EmptyState(), nil
	}
	return r.state.Clone(), nil
}

func (r *inMemoryStateRepo) Save(_ context.Context, state domain.CyclesState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state.Clone()
	r.saves++
	return nil
}

func (r *inMemoryStateRepo) Saved() (domain.CyclesState, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Clone(), r.saves
}

type sequentialIDs struct {
	ids []domain.CycleID
	n   int
}

func (s *sequentialIDs) NewCycleID() domain.CycleID {
	id := s.ids[s.n]
	s.n++
	return id
}

func mockAnyContext() interface{} {
	return mock.Anything
}
