package application

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
)

// Session owns the cycles state for one run of the program. Every change
// goes through domain.Reduce and is mirrored to the repository.
type Session struct {
	repo    ports.CycleStateRepository
	clock   ports.Clock
	ids     ports.IDGenerator
	tracker *ElapsedTracker
	logger  *slog.Logger

	mu                  sync.Mutex
	state               domain.CyclesState
	amountSecondsPassed int
	ticking             bool
	stopTicking         func() bool
	degraded            bool
	subscribers         []chan Event
	closed              bool
}

type SessionOption func(*Session)

func WithClock(clock ports.Clock) SessionOption {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithIDGenerator(ids ports.IDGenerator) SessionOption {
	return func(s *Session) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithTracker(tracker *ElapsedTracker) SessionOption {
	return func(s *Session) {
		if tracker != nil {
			s.tracker = tracker
		}
	}
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession hydrates the state from repo. A missing or unreadable state is
// replaced with an empty one.
func NewSession(ctx context.Context, repo ports.CycleStateRepository, opts ...SessionOption) *Session {
	s := &Session{
		repo:   repo,
		clock:  ports.SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = &clockIDGenerator{clock: s.clock}
	}
	if s.tracker == nil {
		s.tracker = NewElapsedTracker(s.clock, ports.NewSystemTicker, DefaultTickInterval)
	}

	s.hydrate(ctx)
	return s
}

func (s *Session) hydrate(ctx context.Context) {
	state, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Debug("cycles state unavailable, starting empty", "error", err)
		state = domain.EmptyState()
	}
	if state.Cycles == nil {
		state.Cycles = []domain.Cycle{}
	}

	s.state = state
	if active, ok := state.ActiveCycle(); ok {
		s.amountSecondsPassed = domain.SecondsBetween(active.StartDate, s.clock.Now())
	}
}

func (s *Session) CreateNewCycle(ctx context.Context, cmd CreateCycleCommand) (domain.Cycle, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cycle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cycle := domain.Cycle{
		ID:            s.ids.NewCycleID(),
		Task:          cmd.Task,
		MinutesAmount: cmd.MinutesAmount,
		StartDate:     s.clock.Now(),
	}

	s.dispatchLocked(ctx, domain.AddNewCycleAction{Cycle: cycle})
	s.amountSecondsPassed = 0
	if s.ticking {
		s.tracker.Start(cycle.ID, cycle.StartDate)
	}
	s.logger.Info("cycle created", "cycle_id", cycle.ID, "task", cycle.Task, "minutes", cycle.MinutesAmount)
	s.emitLocked(EventCycleCreated, cycle.ID, cycle.StartDate)

	return cycle, nil
}

func (s *Session) InterruptCurrentCycle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.state.ActiveCycle()
	if !ok {
		return nil
	}

	now := s.clock.Now()
	s.dispatchLocked(ctx, domain.InterruptCurrentCycleAction{At: now})
	s.amountSecondsPassed = domain.SecondsBetween(active.StartDate, now)
	s.tracker.Stop(s.amountSecondsPassed)
	s.logger.Info("cycle interrupted", "cycle_id", active.ID, "elapsed_seconds", s.amountSecondsPassed)
	s.emitLocked(EventCycleInterrupted, active.ID, now)

	return nil
}

func (s *Session) MarkCurrentCycleAsFinished(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.finishLocked(ctx)
	return nil
}

// FinishIfElapsed recomputes the elapsed seconds of the active cycle and
// finishes it once its target duration has passed.
func (s *Session) FinishIfElapsed(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active, ok := s.state.ActiveCycle()
	if !ok {
		return false, nil
	}

	s.amountSecondsPassed = domain.SecondsBetween(active.StartDate, s.clock.Now())
	if s.amountSecondsPassed < active.TotalSeconds() {
		return false, nil
	}

	return s.finishLocked(ctx), nil
}

func (s *Session) SetSecondsPassed(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amountSecondsPassed = seconds
}

// StartTicking keeps AmountSecondsPassed current while a cycle is active and
// finishes the cycle when it reaches its target. It stops when ctx is done or
// the Session is closed.
func (s *Session) StartTicking(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticking || s.closed {
		return
	}

	s.ticking = true
	s.tracker.OnTick(s.handleTick)
	if active, ok := s.state.ActiveCycle(); ok {
		s.amountSecondsPassed = s.tracker.Start(active.ID, active.StartDate)
	}
	s.stopTicking = context.AfterFunc(ctx, s.StopTicking)
}

func (s *Session) StopTicking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTickingLocked()
}

func (s *Session) stopTickingLocked() {
	if !s.ticking {
		return
	}

	s.ticking = false
	if s.stopTicking != nil {
		s.stopTicking()
		s.stopTicking = nil
	}
	s.tracker.OnTick(nil)
	if s.tracker.State() == TrackerRunning {
		s.tracker.Stop(s.amountSecondsPassed)
	}
}

func (s *Session) handleTick(id domain.CycleID, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ticking || s.state.ActiveCycleID != id {
		return
	}

	active, ok := s.state.ActiveCycle()
	if !ok {
		return
	}

	s.amountSecondsPassed = seconds
	if seconds >= active.TotalSeconds() {
		s.finishLocked(context.Background())
		return
	}

	s.emitLocked(EventTick, id, s.clock.Now())
}

func (s *Session) finishLocked(ctx context.Context) bool {
	active, ok := s.state.ActiveCycle()
	if !ok {
		return false
	}

	now := s.clock.Now()
	s.dispatchLocked(ctx, domain.MarkCurrentCycleAsFinishedAction{At: now})
	s.amountSecondsPassed = active.TotalSeconds()
	s.tracker.Stop(s.amountSecondsPassed)
	s.logger.Info("cycle finished", "cycle_id", active.ID)
	s.emitLocked(EventCycleFinished, active.ID, now)

	return true
}

func (s *Session) dispatchLocked(ctx context.Context, action domain.Action) {
	next := domain.Reduce(s.state, action)
	if !stateChanged(s.state, next) {
		return
	}

	s.state = next
	s.persistLocked(ctx)
}

func (s *Session) persistLocked(ctx context.Context) {
	if s.degraded {
		return
	}

	if err := s.repo.Save(ctx, s.state); err != nil {
		s.degraded = true
		s.logger.Warn("cycles state could not be saved, keeping it in memory only", "error", err)
	}
}

func stateChanged(prev, next domain.CyclesState) bool {
	return prev.ActiveCycleID != next.ActiveCycleID || len(prev.Cycles) != len(next.Cycles)
}

func (s *Session) Cycles() []domain.Cycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone().Cycles
}

func (s *Session) ActiveCycle() (domain.Cycle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveCycle()
}

func (s *Session) ActiveCycleID() domain.CycleID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveCycleID
}

func (s *Session) AmountSecondsPassed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amountSecondsPassed
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newSnapshot(s.state, s.amountSecondsPassed)
}

// Degraded reports whether a save failed and the Session now only keeps its
// state in memory.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subscribers = append(s.subscribers, ch)
	return ch
}

// Close stops ticking and closes every subscriber channel.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stopTickingLocked()
	s.closed = true
	for _, ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = nil
}

func (s *Session) emitLocked(eventType EventType, id domain.CycleID, at time.Time) {
	if len(s.subscribers) == 0 {
		return
	}

	event := Event{
		Type:     eventType,
		CycleID:  id,
		Seconds:  s.amountSecondsPassed,
		At:       at,
		Snapshot: newSnapshot(s.state, s.amountSecondsPassed),
	}
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// clockIDGenerator builds ids from the millisecond timestamp plus a counter
// suffix so ids stay unique within a millisecond.
type clockIDGenerator struct {
	clock ports.Clock
	seq   atomic.Uint64
}

func (g *clockIDGenerator) NewCycleID() domain.CycleID {
	n := g.seq.Add(1)
	return domain.CycleID(strconv.FormatInt(g.clock.Now().UnixMilli(), 10) + "-" + strconv.FormatUint(n, 10))
}
