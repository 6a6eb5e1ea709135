package timing

import (
	"log/slog"
	"runtime"
	"time"
)

const (
	// spinWindow is how close to a deadline sleeping stops and the clock is
	// polled instead. Sleeps overshoot by about a scheduler tick.
	spinWindow = time.Millisecond

	// maxLagFrames is how many periods the loop may fall behind before the
	// missed frames are dropped rather than rendered back to back.
	maxLagFrames = 3
)

// DeadlineLimiter paces the frame loop against absolute deadlines, one
// period apart, so slow renders do not shift the rate. It counts the frames
// it had to drop to catch up.
type DeadlineLimiter struct {
	period   time.Duration
	deadline time.Time
	frames   int64
	dropped  int64

	now   func() time.Time
	sleep func(time.Duration)
}

// NewDeadlineLimiter paces at fps frames per second. The first frame is
// due immediately.
func NewDeadlineLimiter(fps int) *DeadlineLimiter {
	return &DeadlineLimiter{
		period: FrameDuration(fps),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

func (l *DeadlineLimiter) WaitForNextFrame() {
	now := l.now()
	if l.deadline.IsZero() {
		l.deadline = now
	}

	if lag := now.Sub(l.deadline); lag > maxLagFrames*l.period {
		missed := int64(lag / l.period)
		l.dropped += missed
		l.deadline = now
		slog.Debug("Frame loop behind schedule", "frame", l.frames, "dropped", missed)
	}

	for wait := l.deadline.Sub(now); wait > 0; wait = l.deadline.Sub(now) {
		if wait > spinWindow {
			l.sleep(wait - spinWindow)
		} else {
			runtime.Gosched()
		}
		now = l.now()
	}

	l.frames++
	l.deadline = l.deadline.Add(l.period)
}

// Reset makes the next frame due immediately, as after a pause.
func (l *DeadlineLimiter) Reset() {
	l.deadline = time.Time{}
}

// Frames returns how many frames were paced.
func (l *DeadlineLimiter) Frames() int64 {
	return l.frames
}

// Dropped returns how many frames were skipped to catch up with the clock.
func (l *DeadlineLimiter) Dropped() int64 {
	return l.dropped
}
