package entity

import (
	"math"

	"github.com/younwookim/bossrush/internal/domain/geom"
)

// PlayerBullet is a straight shot from the standard weapon
type PlayerBullet struct {
	ID       EntityID
	Pos, Vel geom.Vec
	Radius   float64
	Damage   int
	Consumed bool
}

// Advance moves the bullet one tick
func (b *PlayerBullet) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Expired returns true once the bullet is consumed or has left through the top edge
func (b *PlayerBullet) Expired() bool {
	return b.Consumed || b.Pos.Y <= -b.Radius
}

// EnemyBullet is a straight boss shot
type EnemyBullet struct {
	ID       EntityID
	Pos, Vel geom.Vec
	Radius   float64
	Color    ColorTag
	Consumed bool
}

// Advance moves the bullet one tick
func (b *EnemyBullet) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Expired returns true once the bullet is consumed or outside the arena plus margin
func (b *EnemyBullet) Expired(width, height, margin float64) bool {
	if b.Consumed {
		return true
	}
	return b.Pos.X <= -margin || b.Pos.X >= width+margin ||
		b.Pos.Y <= -margin || b.Pos.Y >= height+margin
}

// HomingMissile steers toward its target at a bounded turn rate
type HomingMissile struct {
	ID       EntityID
	Pos, Vel geom.Vec
	Speed    float64
	TurnRate float64 // radians per tick
	Radius   float64
	Damage   int
	Target   EntityID
	Consumed bool
}

// NewHomingMissile creates a missile launched straight up
func NewHomingMissile(id EntityID, pos geom.Vec, speed, turnRate, radius float64, damage int, target EntityID) *HomingMissile {
	return &HomingMissile{
		ID:       id,
		Pos:      pos,
		Vel:      geom.V(0, -speed),
		Speed:    speed,
		TurnRate: turnRate,
		Radius:   radius,
		Damage:   damage,
		Target:   target,
	}
}

// Advance turns toward target by at most TurnRate and moves one tick.
// Without a target the missile keeps its heading.
func (m *HomingMissile) Advance(target geom.Vec, ok bool) {
	heading := m.Vel.Angle()
	if ok {
		desired := target.Sub(m.Pos).Angle()
		diff := geom.WrapAngle(desired - heading)
		if math.Abs(diff) > m.TurnRate {
			heading += math.Copysign(m.TurnRate, diff)
		} else {
			heading = desired
		}
	}
	m.Vel = geom.FromAngle(heading, m.Speed)
	m.Pos = m.Pos.Add(m.Vel)
}

// Expired returns true once the missile is consumed or has left through the top edge
func (m *HomingMissile) Expired() bool {
	return m.Consumed || m.Pos.Y <= -m.Radius
}

// Beam is the player's vertical corridor weapon.
// It follows the player horizontally and damages the boss at most once.
type Beam struct {
	ID             EntityID
	X              float64
	Width          float64
	Life           int
	MaxLife        int
	Damage         int
	HasDealtDamage bool
}

// Advance counts the beam down and re-centres it on x
func (b *Beam) Advance(x float64) {
	b.Life--
	b.X = x
}

// Expired returns true when the beam has burned out
func (b *Beam) Expired() bool {
	return b.Life <= 0
}

// Overlaps reports whether the beam corridor horizontally overlaps a circle
// that sits above the beam origin.
func (b *Beam) Overlaps(center geom.Vec, radius, originY float64) bool {
	half := b.Width / 2
	return center.X+radius > b.X-half &&
		center.X-radius < b.X+half &&
		center.Y < originY
}

// LifeFraction returns remaining life in [0, 1]
func (b *Beam) LifeFraction() float64 {
	return fraction(b.Life, b.MaxLife)
}

func fraction(n, total int) float64 {
	if total <= 0 || n <= 0 {
		return 0
	}
	if n >= total {
		return 1
	}
	return float64(n) / float64(total)
}
