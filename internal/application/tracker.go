package application

import (
	"sync"
	"time"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
)

const DefaultTickInterval = time.Second

type TrackerState string

const (
	TrackerIdle    TrackerState = "idle"
	TrackerRunning TrackerState = "running"
	TrackerStopped TrackerState = "stopped"
)

// TickFunc receives the elapsed seconds of the cycle the tracker was started
// for. It is called from the tracker goroutine.
type TickFunc func(id domain.CycleID, seconds int)

// ElapsedTracker derives whole seconds elapsed since a cycle's start date,
// recomputing them from the wall clock on every tick.
type ElapsedTracker struct {
	clock     ports.Clock
	newTicker ports.TickerFactory
	interval  time.Duration

	mu        sync.Mutex
	state     TrackerState
	cycleID   domain.CycleID
	startDate time.Time
	seconds   int
	onTick    TickFunc
	stop      chan struct{}
}

func NewElapsedTracker(clock ports.Clock, newTicker ports.TickerFactory, interval time.Duration) *ElapsedTracker {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if newTicker == nil {
		newTicker = ports.NewSystemTicker
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &ElapsedTracker{
		clock:     clock,
		newTicker: newTicker,
		interval:  interval,
		state:     TrackerIdle,
	}
}

func (t *ElapsedTracker) OnTick(fn TickFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// Start begins tracking id, replacing whatever was tracked before. The
// elapsed value is seeded from the wall clock, not from zero, so a cycle
// resumed after a restart keeps its progress.
func (t *ElapsedTracker) Start(id domain.CycleID, startDate time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.state = TrackerRunning
	t.cycleID = id
	t.startDate = startDate
	t.seconds = domain.SecondsBetween(startDate, t.clock.Now())

	stop := make(chan struct{})
	t.stop = stop
	go t.run(t.newTicker(t.interval), stop, id)

	return t.seconds
}

// Stop cancels the ticker and freezes the elapsed value at freezeAt.
func (t *ElapsedTracker) Stop(freezeAt int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.state = TrackerStopped
	t.seconds = freezeAt
}

func (t *ElapsedTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.state = TrackerIdle
	t.cycleID = ""
	t.startDate = time.Time{}
	t.seconds = 0
}

func (t *ElapsedTracker) State() TrackerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *ElapsedTracker) Seconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seconds
}

func (t *ElapsedTracker) CycleID() domain.CycleID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cycleID
}

func (t *ElapsedTracker) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *ElapsedTracker) run(ticker ports.Ticker, stop <-chan struct{}, id domain.CycleID) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !t.tick(stop, id) {
				return
			}
		}
	}
}

func (t *ElapsedTracker) tick(stop <-chan struct{}, id domain.CycleID) bool {
	t.mu.Lock()
	select {
	case <-stop:
		t.mu.Unlock()
		return false
	default:
	}

	t.seconds = domain.SecondsBetween(t.startDate, t.clock.Now())
	seconds := t.seconds
	fn := t.onTick
	t.mu.Unlock()

	if fn != nil {
		fn(id, seconds)
	}

	return true
}
