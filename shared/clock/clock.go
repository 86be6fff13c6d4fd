// Package clock provides the millisecond time source that drives sprite
// animation cadence.
package clock

import "time"

// Clock reports monotonic milliseconds since an arbitrary origin.
type Clock interface {
	NowMillis() int64
}

// Monotonic reads the process monotonic clock relative to its creation.
type Monotonic struct {
	start time.Time
}

// NewMonotonic creates a clock whose origin is now.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) NowMillis() int64 {
	return time.Since(m.start).Milliseconds()
}

// Manual is a clock advanced by hand. Used by tests and replays.
type Manual struct {
	Millis int64
}

func (m *Manual) NowMillis() int64 {
	return m.Millis
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int64) {
	m.Millis += ms
}
