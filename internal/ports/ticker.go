package ports

import "time"

// Ticker is a cancellable periodic timer handle.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(interval time.Duration) Ticker

type systemTicker struct {
	ticker *time.Ticker
}

func NewSystemTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (t systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t systemTicker) Stop() {
	t.ticker.Stop()
}
