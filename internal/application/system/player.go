package system

import (
	"math"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// PlayerController moves the player and runs its weapons
type PlayerController struct {
	config *config.EncounterConfig
}

// NewPlayerController creates a new player controller
func NewPlayerController(cfg *config.EncounterConfig) *PlayerController {
	return &PlayerController{config: cfg}
}

// NewPlayer creates the player at its start position
func (c *PlayerController) NewPlayer() *entity.Player {
	pc := c.config.Player
	pos := geom.V(c.config.Arena.Width*pc.StartX, c.config.Arena.Height*pc.StartY)
	return entity.NewPlayer(pos, pc.Speed, pc.Radius, pc.HitboxRadius, pc.StartHealth)
}

// Update runs the player step of a tick: immunity countdown then movement
func (c *PlayerController) Update(p *entity.Player, move MoveIntent) {
	p.TickInvulnerability()
	c.Move(p, move.AxisX, move.AxisY)
}

// Move applies one tick of movement. Diagonals are normalised to unit length
// and the visual radius stays inside the arena.
func (c *PlayerController) Move(p *entity.Player, axisX, axisY int) {
	dir := geom.V(float64(sign(axisX)), float64(sign(axisY))).Norm()
	p.Pos = p.Pos.Add(dir.Scale(p.Speed))

	p.Pos.X = geom.Clamp(p.Pos.X, p.Radius, c.config.Arena.Width-p.Radius)
	p.Pos.Y = geom.Clamp(p.Pos.Y, p.Radius, c.config.Arena.Height-p.Radius)
}

// HandleFire applies queued weapon requests, runs the standard weapon and
// counts the cooldowns down.
func (c *PlayerController) HandleFire(w *ecs.World, p *entity.Player, stats *entity.Stats, requests []Intent) {
	for _, req := range requests {
		switch req.(type) {
		case ToggleFireIntent:
			p.FireEnabled = !p.FireEnabled
		case BeamIntent:
			c.fireBeam(w, p, stats)
		case MissileIntent:
			c.fireMissiles(w, p, stats)
		}
	}

	wc := c.config.Player.Weapon
	p.FireCounter++
	if p.FireEnabled && p.FireCounter >= wc.FireDelay {
		nose := p.Nose()
		for _, angle := range wc.FanAngles {
			w.SpawnPlayerBullet(entity.PlayerBullet{
				Pos:    nose,
				Vel:    geom.V(math.Sin(angle)*wc.BulletSpeed, -math.Cos(angle)*wc.BulletSpeed),
				Radius: wc.BulletRadius,
				Damage: wc.BulletDamage,
			})
		}
		stats.ShotsFired += len(wc.FanAngles)
		p.FireCounter = 0
	}

	if p.BeamCooldown > 0 {
		p.BeamCooldown--
	}
	if p.MissileCooldown > 0 {
		p.MissileCooldown--
	}
}

// fireBeam is a no-op while on cooldown or while a beam is live
func (c *PlayerController) fireBeam(w *ecs.World, p *entity.Player, stats *entity.Stats) {
	if p.BeamCooldown > 0 || w.Beam != nil {
		return
	}

	bc := c.config.Player.Beam
	w.SpawnBeam(entity.Beam{
		X:       p.Pos.X,
		Width:   bc.Width,
		Life:    bc.LifeTicks,
		MaxLife: bc.LifeTicks,
		Damage:  bc.Damage,
	})
	p.BeamCooldown = bc.CooldownTicks
	stats.BeamsFired++
}

// fireMissiles launches an evenly spaced salvo aimed at the boss
func (c *PlayerController) fireMissiles(w *ecs.World, p *entity.Player, stats *entity.Stats) {
	if p.MissileCooldown > 0 {
		return
	}

	mc := c.config.Player.Missile
	var target entity.EntityID
	if w.Boss != nil {
		target = w.Boss.ID
	}

	startX := p.Pos.X - mc.Spread/2
	spacing := 0.0
	if mc.Count > 1 {
		spacing = mc.Spread / float64(mc.Count-1)
	} else {
		startX = p.Pos.X
	}
	launchY := p.Pos.Y - mc.LaunchOffset

	for i := 0; i < mc.Count; i++ {
		pos := geom.V(startX+float64(i)*spacing, launchY)
		w.SpawnMissile(*entity.NewHomingMissile(0, pos, mc.Speed, mc.TurnRate, mc.Radius, mc.Damage, target))
	}
	p.MissileCooldown = mc.CooldownTicks
	stats.MissilesFired += mc.Count
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
