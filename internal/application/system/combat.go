package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Angle jitter applied to each fragment of a detonation ring, radians each side
const (
	orbBurstJitter  = 0.1
	mineBurstJitter = 0.2
)

// CombatSystem resolves collisions once per tick, after motion
type CombatSystem struct {
	config *config.EncounterConfig
	rng    *rand.Rand

	// Event callback
	OnEvent func(Event)
}

// NewCombatSystem creates a combat system drawing randomness from rng
func NewCombatSystem(cfg *config.EncounterConfig, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{config: cfg, rng: rng}
}

// Resolve runs every collision pass in order and returns the updated outcome.
// Once the outcome is resolved, later passes deal no boss damage.
func (s *CombatSystem) Resolve(w *ecs.World, stats *entity.Stats, outcome entity.Outcome) entity.Outcome {
	p, b := w.Player, w.Boss
	if p == nil || b == nil {
		return outcome
	}

	s.enemyBullets(w, p, stats)
	s.orbs(w, p)
	s.strikeLines(w, p, stats)
	s.mines(w, p)
	s.laserArms(w, p, stats)
	if !p.IsAlive() && !outcome.Resolved() {
		outcome = entity.OutcomeDefeat
	}

	outcome = s.playerBullets(w, b, stats, outcome)
	outcome = s.beam(w, p, b, stats, outcome)
	outcome = s.missiles(w, b, stats, outcome)
	s.pickups(w, p)

	return outcome
}

func (s *CombatSystem) enemyBullets(w *ecs.World, p *entity.Player, stats *entity.Stats) {
	for _, eb := range w.EnemyBullets {
		if eb.Consumed {
			continue
		}
		if geom.CirclesOverlap(eb.Pos, eb.Radius, p.Pos, p.HitboxRadius) {
			s.damagePlayer(p, stats)
			eb.Consumed = true
		}
	}
}

func (s *CombatSystem) orbs(w *ecs.World, p *entity.Player) {
	oc := s.config.Hazards.Orb
	for _, o := range w.Orbs {
		touching := geom.CirclesOverlap(o.Pos, o.Radius, p.Pos, p.HitboxRadius)
		if (touching || o.Life <= 0) && o.Detonate() {
			s.burst(w, o.Pos, oc.Fragments, orbBurstJitter, oc.FragmentMinSpeed, oc.FragmentMaxSpeed, entity.ColorMagenta)
		}
	}
}

func (s *CombatSystem) strikeLines(w *ecs.World, p *entity.Player, stats *entity.Stats) {
	threshold := p.HitboxRadius + s.config.Hazards.StrikeLine.HitMargin
	for _, sl := range w.StrikeLines {
		if sl.Active() && geom.PointSegmentDistance(p.Pos, sl.A, sl.B) < threshold {
			s.damagePlayer(p, stats)
		}
	}
}

func (s *CombatSystem) mines(w *ecs.World, p *entity.Player) {
	mc := s.config.Hazards.Mine
	for _, m := range w.Mines {
		touching := geom.CirclesOverlap(m.Pos, m.Radius, p.Pos, p.HitboxRadius)
		if (touching || m.Life <= 0) && m.Detonate() {
			s.burst(w, m.Pos, mc.Fragments, mineBurstJitter, mc.FragmentMinSpeed, mc.FragmentMaxSpeed, entity.ColorOrange)
		}
	}
}

func (s *CombatSystem) laserArms(w *ecs.World, p *entity.Player, stats *entity.Stats) {
	for _, la := range w.LaserArms {
		if la.Hits(p.Pos) {
			s.damagePlayer(p, stats)
		}
	}
}

func (s *CombatSystem) playerBullets(w *ecs.World, b *entity.Boss, stats *entity.Stats, outcome entity.Outcome) entity.Outcome {
	for _, pb := range w.PlayerBullets {
		if outcome.Resolved() {
			break
		}
		if pb.Consumed || !geom.CirclesOverlap(pb.Pos, pb.Radius, b.Pos, b.Radius) {
			continue
		}
		pb.Consumed = true
		stats.BulletHits++
		outcome = s.damageBoss(w, b, pb.Damage, SourceBullet, pb.Pos, outcome)
	}
	return outcome
}

// beam damages the boss at most once per beam
func (s *CombatSystem) beam(w *ecs.World, p *entity.Player, b *entity.Boss, stats *entity.Stats, outcome entity.Outcome) entity.Outcome {
	bm := w.Beam
	if outcome.Resolved() || bm == nil || bm.Expired() || bm.HasDealtDamage {
		return outcome
	}
	if !bm.Overlaps(b.Pos, b.Radius, p.Pos.Y) {
		return outcome
	}
	bm.HasDealtDamage = true
	stats.BeamHits++
	return s.damageBoss(w, b, bm.Damage, SourceBeam, b.Pos, outcome)
}

func (s *CombatSystem) missiles(w *ecs.World, b *entity.Boss, stats *entity.Stats, outcome entity.Outcome) entity.Outcome {
	for _, m := range w.Missiles {
		if outcome.Resolved() {
			break
		}
		if m.Consumed || !geom.CirclesOverlap(m.Pos, m.Radius, b.Pos, b.Radius) {
			continue
		}
		m.Consumed = true
		stats.MissileHits++
		outcome = s.damageBoss(w, b, m.Damage, SourceMissile, m.Pos, outcome)
	}
	return outcome
}

func (s *CombatSystem) pickups(w *ecs.World, p *entity.Player) {
	for _, pk := range w.Pickups {
		if pk.Consumed || !geom.CirclesOverlap(pk.Pos, pk.Radius, p.Pos, p.Radius) {
			continue
		}
		pk.Consumed = true
		if pk.Kind == entity.PickupHealth {
			p.Heal(1)
		}
		s.emit(Event{Kind: EventPickup, Pos: p.Pos})
	}
}

// damagePlayer applies one hit unless the player is immune
func (s *CombatSystem) damagePlayer(p *entity.Player, stats *entity.Stats) {
	pc := s.config.Player
	if !p.TakeHit(pc.InvulnerabilityTicks, pc.HitEffectTicks) {
		return
	}
	stats.HitsTaken++
	s.emit(Event{Kind: EventPlayerHit, Pos: p.Pos})
}

// damageBoss applies damage, rolls a drop and reports victory
func (s *CombatSystem) damageBoss(w *ecs.World, b *entity.Boss, damage int, src HitSource, at geom.Vec, outcome entity.Outcome) entity.Outcome {
	dead := b.TakeDamage(damage, s.config.Boss.HitFlashTicks)
	s.emit(Event{Kind: EventBossHit, Pos: at, Source: src})
	s.rollDrop(w, b.Pos)
	if dead {
		return entity.OutcomeVictory
	}
	return outcome
}

func (s *CombatSystem) rollDrop(w *ecs.World, at geom.Vec) {
	pc := s.config.Pickups
	if s.rng.Float64() >= pc.DropChance {
		return
	}
	w.SpawnPickup(*entity.NewPickup(0, entity.PickupHealth, at, pc.Speed, pc.Radius, pc.LifeTicks))
}

// burst spawns a ring of n enemy bullets with jittered angles and speeds
func (s *CombatSystem) burst(w *ecs.World, at geom.Vec, n int, jitter, minSpeed, maxSpeed float64, color entity.ColorTag) {
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi + (s.rng.Float64()*2-1)*jitter
		speed := minSpeed + s.rng.Float64()*(maxSpeed-minSpeed)
		w.SpawnEnemyBullet(entity.EnemyBullet{
			Pos:    at,
			Vel:    geom.FromAngle(angle, speed),
			Radius: s.config.Boss.BulletRadius,
			Color:  color,
		})
	}
	s.emit(Event{Kind: EventDetonation, Pos: at, Particles: n, Color: color})
}

func (s *CombatSystem) emit(e Event) {
	if s.OnEvent != nil {
		s.OnEvent(e)
	}
}
