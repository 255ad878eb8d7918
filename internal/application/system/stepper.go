package system

import (
	"time"

	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Stepper converts wall-clock frames into a whole number of fixed ticks.
// Leftover time carries over to the next frame.
type Stepper struct {
	tick     time.Duration
	maxTicks int
	hitch    time.Duration

	last    time.Time
	started bool
	acc     time.Duration
}

// NewStepper creates a stepper from the timing config
func NewStepper(cfg config.TimingConfig) *Stepper {
	return &Stepper{
		tick:     time.Second / time.Duration(cfg.TickRate),
		maxTicks: cfg.MaxTicksPerFrame,
		hitch:    time.Duration(cfg.HitchSeconds * float64(time.Second)),
	}
}

// TickDuration returns the fixed tick length
func (s *Stepper) TickDuration() time.Duration {
	return s.tick
}

// Advance records a frame at now and returns how many ticks to run.
// The first call only latches the timestamp. A backlog above the hitch
// threshold collapses to exactly one tick. While paused nothing runs but
// time still accrues.
func (s *Stepper) Advance(now time.Time, paused bool) int {
	if !s.started {
		s.last = now
		s.started = true
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	s.acc += elapsed
	if elapsed > s.hitch || s.acc > s.hitch {
		s.acc = s.tick
	}

	if paused {
		return 0
	}

	n := 0
	for s.acc >= s.tick && n < s.maxTicks {
		s.acc -= s.tick
		n++
	}
	return n
}

// Reset forgets the latched timestamp and any backlog
func (s *Stepper) Reset() {
	s.started = false
	s.acc = 0
}

// Alpha returns the fraction of a tick left in the accumulator
func (s *Stepper) Alpha() float64 {
	a := float64(s.acc) / float64(s.tick)
	if a > 1 {
		return 1
	}
	return a
}
