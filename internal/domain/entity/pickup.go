package entity

import "github.com/younwookim/bossrush/internal/domain/geom"

// Pickup is a collectible dropped by the boss
type Pickup struct {
	ID       EntityID
	Kind     PickupKind
	Pos, Vel geom.Vec
	Radius   float64
	Life     int
	MaxLife  int
	Consumed bool
}

// NewPickup creates a pickup drifting straight down
func NewPickup(id EntityID, kind PickupKind, pos geom.Vec, speed, radius float64, life int) *Pickup {
	return &Pickup{
		ID:      id,
		Kind:    kind,
		Pos:     pos,
		Vel:     geom.V(0, speed),
		Radius:  radius,
		Life:    life,
		MaxLife: life,
	}
}

// Advance drifts the pickup one tick
func (p *Pickup) Advance() {
	p.Life--
	p.Pos = p.Pos.Add(p.Vel)
}

// Expired returns true once the pickup is collected, timed out or below the arena
func (p *Pickup) Expired(arenaHeight float64) bool {
	return p.Consumed || p.Life <= 0 || p.Pos.Y > arenaHeight+p.Radius
}

// LifeFraction returns remaining life in [0, 1]
func (p *Pickup) LifeFraction() float64 {
	return fraction(p.Life, p.MaxLife)
}
