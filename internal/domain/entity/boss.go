package entity

import "github.com/younwookim/bossrush/internal/domain/geom"

// Boss represents the single boss entity
type Boss struct {
	ID        EntityID
	Pos       geom.Vec
	Radius    float64
	Health    int
	MaxHealth int

	Phase        Phase
	Pattern      Pattern
	PatternTimer int // ticks spent in the current pattern
	FireCounter  int
	FireRate     float64 // ticks between volleys
	BulletSpeed  float64
	Color        ColorTag

	// Movement
	WaveTime      int
	InitialX      float64
	TargetY       float64
	VerticalTimer int

	HitFlash int
	Combo    *Combo
}

// Combo is a short scripted sequence of volleys
type Combo struct {
	Steps []ComboStep
	Index int
	Timer int
}

// Done returns true when every step has fired
func (c *Combo) Done() bool {
	return c.Index >= len(c.Steps)
}

// NewBoss creates a phase-1 boss at full health
func NewBoss(id EntityID, pos geom.Vec, radius float64, maxHealth int) *Boss {
	return &Boss{
		ID:        id,
		Pos:       pos,
		Radius:    radius,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Phase:     PhaseOne,
		Pattern:   PatternCircular,
		Color:     ColorDarkRed,
		InitialX:  pos.X,
		TargetY:   pos.Y,
	}
}

// PhaseFor maps boss health to its phase
func PhaseFor(health, phaseTwoHealth, phaseThreeHealth int) Phase {
	switch {
	case health <= phaseThreeHealth:
		return PhaseThree
	case health <= phaseTwoHealth:
		return PhaseTwo
	default:
		return PhaseOne
	}
}

// PhaseColor returns the color tag used for a phase
func PhaseColor(p Phase) ColorTag {
	switch p {
	case PhaseThree:
		return ColorPurple
	case PhaseTwo:
		return ColorDarkOrange
	default:
		return ColorDarkRed
	}
}

// TakeDamage applies damage, floored at zero, and starts the hit flash.
// Returns true if the boss is dead.
func (b *Boss) TakeDamage(damage, flashTicks int) bool {
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}
	b.HitFlash = flashTicks
	return b.Health <= 0
}

// IsAlive returns true if boss is still alive
func (b *Boss) IsAlive() bool {
	return b.Health > 0
}

// HealthFraction returns health as a fraction of max in [0, 1]
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
