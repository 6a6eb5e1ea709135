package timing

import "time"

// TickerLimiter uses time.Ticker for simple, consistent frame timing.
// Less accurate than DeadlineLimiter but simpler and good enough for most cases.
type TickerLimiter struct {
	ticker   *time.Ticker
	ch       <-chan time.Time
	duration time.Duration
}

func NewTickerLimiter(fps int) *TickerLimiter {
	duration := FrameDuration(fps)
	ticker := time.NewTicker(duration)
	return &TickerLimiter{
		ticker:   ticker,
		ch:       ticker.C,
		duration: duration,
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ch
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.duration)
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
