package entity

import (
	"math"
	"math/rand"

	"github.com/younwookim/bossrush/internal/domain/geom"
)

// Big orb tuning that is part of its shape rather than encounter balance
const (
	OrbGrowTicks = 30    // radius swells during the last ticks of life
	OrbGrowRate  = 0.6   // radius gained per tick while swelling
	OrbNudgeGain = 0.002 // fraction of the offset to the player added to velocity
)

// Mine hover bob
const (
	MineHoverRate      = 1.0 / 12 // radians per tick
	MineHoverAmplitude = 0.02
)

// BigOrb drifts toward the player and bursts into a bullet ring
type BigOrb struct {
	ID          EntityID
	Pos, Vel    geom.Vec
	Radius      float64
	BaseRadius  float64
	MaxSpeed    float64
	NudgeChance float64
	Life        int
	MaxLife     int
	Exploded    bool
}

// Advance drifts the orb one tick, occasionally steering toward player
func (o *BigOrb) Advance(player geom.Vec, rng *rand.Rand) {
	o.Pos = o.Pos.Add(o.Vel)
	o.Life--

	if !o.Exploded && rng.Float64() < o.NudgeChance {
		o.Vel = o.Vel.Add(player.Sub(o.Pos).Scale(OrbNudgeGain))
		if speed := o.Vel.Len(); speed > o.MaxSpeed {
			o.Vel = o.Vel.Scale(o.MaxSpeed / speed)
		}
	}

	if o.Life < OrbGrowTicks {
		o.Radius = o.BaseRadius + float64(OrbGrowTicks-o.Life)*OrbGrowRate
	}
}

// Detonate marks the orb exploded. Returns false if it already was.
func (o *BigOrb) Detonate() bool {
	if o.Exploded {
		return false
	}
	o.Exploded = true
	return true
}

// LifeFraction returns remaining life in [0, 1]
func (o *BigOrb) LifeFraction() float64 {
	return fraction(o.Life, o.MaxLife)
}

// Timer is a telegraph-then-active countdown shared by timed hazards
type Timer struct {
	Telegraph      int
	ActiveLeft     int
	TelegraphTotal int
	ActiveTotal    int
}

// NewTimer creates a timer that telegraphs then stays active
func NewTimer(telegraph, active int) Timer {
	return Timer{
		Telegraph:      telegraph,
		ActiveLeft:     active,
		TelegraphTotal: telegraph,
		ActiveTotal:    active,
	}
}

// Step advances the countdown by one tick.
// Returns true if the hazard was active during the step.
func (t *Timer) Step() bool {
	if t.Telegraph > 0 {
		t.Telegraph--
		return false
	}
	if t.ActiveLeft > 0 {
		t.ActiveLeft--
		return true
	}
	return false
}

// Telegraphing returns true while the warning is shown
func (t Timer) Telegraphing() bool {
	return t.Telegraph > 0
}

// Active returns true while the hazard can deal damage
func (t Timer) Active() bool {
	return t.Telegraph <= 0 && t.ActiveLeft > 0
}

// Done returns true once both counters are exhausted
func (t Timer) Done() bool {
	return t.Telegraph <= 0 && t.ActiveLeft <= 0
}

// LifeFraction returns the progress of the current stage in [0, 1].
// During telegraph it rises toward 1; while active it falls toward 0.
func (t Timer) LifeFraction() float64 {
	if t.Telegraphing() {
		return 1 - fraction(t.Telegraph, t.TelegraphTotal)
	}
	return fraction(t.ActiveLeft, t.ActiveTotal)
}

// StrikeLine is a telegraphed segment that damages while active
type StrikeLine struct {
	ID   EntityID
	A, B geom.Vec
	Timer
}

// Advance counts the line down one tick
func (s *StrikeLine) Advance() {
	s.Step()
}

// Mine hovers in place and bursts when touched or when its fuse runs out
type Mine struct {
	ID       EntityID
	Pos      geom.Vec
	Radius   float64
	Life     int
	MaxLife  int
	Age      int
	Exploded bool
}

// Advance burns the fuse and bobs the mine
func (m *Mine) Advance() {
	m.Life--
	m.Age++
	m.Pos.Y += math.Sin(float64(m.Age)*MineHoverRate+m.Pos.X) * MineHoverAmplitude
}

// Detonate marks the mine exploded. Returns false if it already was.
func (m *Mine) Detonate() bool {
	if m.Exploded {
		return false
	}
	m.Exploded = true
	return true
}

// LifeFraction returns remaining fuse in [0, 1]
func (m *Mine) LifeFraction() float64 {
	return fraction(m.Life, m.MaxLife)
}

// LaserArm is a rotating sector anchored on the boss
type LaserArm struct {
	ID           EntityID
	Owner        EntityID
	Center       geom.Vec
	Heading      float64
	HalfArc      float64
	AngularSpeed float64
	Reach        float64
	Timer
}

// Advance follows the owner and sweeps while active.
// The heading is frozen during the telegraph.
func (l *LaserArm) Advance(owner geom.Vec, ok bool) {
	if ok {
		l.Center = owner
	}
	if l.Step() {
		l.Heading = geom.WrapAngle(l.Heading + l.AngularSpeed)
	}
}

// Hits reports whether p is inside the active sector
func (l *LaserArm) Hits(p geom.Vec) bool {
	if !l.Active() {
		return false
	}
	return geom.InSector(p, l.Center, l.Reach, l.Heading, l.HalfArc)
}
