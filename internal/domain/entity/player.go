package entity

import "github.com/younwookim/bossrush/internal/domain/geom"

// Player represents the player avatar
type Player struct {
	Pos          geom.Vec
	Speed        float64
	Radius       float64 // visual radius, used for pickups and arena bounds
	HitboxRadius float64 // damage radius
	Health       int

	// Damage immunity
	Invulnerable      bool
	InvulnerableTimer int
	HitEffectTimer    int // renderer glow, no gameplay effect

	// Weapons
	FireEnabled     bool
	FireCounter     int
	BeamCooldown    int
	MissileCooldown int
}

// NewPlayer creates a player at pos with fire enabled
func NewPlayer(pos geom.Vec, speed, radius, hitboxRadius float64, health int) *Player {
	return &Player{
		Pos:          pos,
		Speed:        speed,
		Radius:       radius,
		HitboxRadius: hitboxRadius,
		Health:       health,
		FireEnabled:  true,
	}
}

// TakeHit removes one health point unless the player is invulnerable.
// Returns true if the hit registered.
func (p *Player) TakeHit(invulnTicks, effectTicks int) bool {
	if p.Invulnerable {
		return false
	}
	p.Health--
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = true
	p.InvulnerableTimer = invulnTicks
	p.HitEffectTimer = effectTicks
	return true
}

// TickInvulnerability counts the immunity window down by one tick.
// A hit at tick T leaves the player immune for ticks T+1 through T+invulnTicks-1.
func (p *Player) TickInvulnerability() {
	if !p.Invulnerable {
		return
	}
	p.InvulnerableTimer--
	if p.HitEffectTimer > 0 {
		p.HitEffectTimer--
	}
	if p.InvulnerableTimer <= 0 {
		p.InvulnerableTimer = 0
		p.Invulnerable = false
	}
}

// Heal adds health. There is no upper bound.
func (p *Player) Heal(n int) {
	p.Health += n
}

// IsAlive returns true if the player has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Nose returns the spawn point of the standard weapon
func (p *Player) Nose() geom.Vec {
	return geom.V(p.Pos.X, p.Pos.Y-p.Radius)
}
