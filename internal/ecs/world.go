package ecs

import (
	"math/rand"

	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
)

// Limits bounds the registry: arena extents for cleanup and caps for timed hazards
type Limits struct {
	Width, Height float64
	BulletMargin  float64 // enemy bullets survive this far outside the arena

	StrikeLineCap int
	MineCap       int
	LaserArmCap   int
}

// AdvanceContext carries the read-only observations entities need while moving
type AdvanceContext struct {
	Player geom.Vec
	RNG    *rand.Rand
}

// World holds every live entity collection and the next entity ID.
// Collections are ordered oldest first.
type World struct {
	nextID entity.EntityID
	limits Limits

	PlayerBullets []*entity.PlayerBullet
	EnemyBullets  []*entity.EnemyBullet
	Missiles      []*entity.HomingMissile
	Orbs          []*entity.BigOrb
	StrikeLines   []*entity.StrikeLine
	Mines         []*entity.Mine
	LaserArms     []*entity.LaserArm
	Pickups       []*entity.Pickup
	Beam          *entity.Beam

	// Singleton references
	Player *entity.Player
	Boss   *entity.Boss
}

// NewWorld creates a new empty world
func NewWorld(limits Limits) *World {
	return &World{
		nextID: 1, // 0 is "nil"
		limits: limits,
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// BossPosition resolves a boss handle.
// Returns false if id does not name the current boss.
func (w *World) BossPosition(id entity.EntityID) (geom.Vec, bool) {
	if w.Boss == nil || id == 0 || w.Boss.ID != id {
		return geom.Vec{}, false
	}
	return w.Boss.Pos, true
}

// SpawnPlayerBullet adds a player bullet
func (w *World) SpawnPlayerBullet(b entity.PlayerBullet) *entity.PlayerBullet {
	b.ID = w.NewEntity()
	p := &b
	w.PlayerBullets = append(w.PlayerBullets, p)
	return p
}

// SpawnEnemyBullet adds an enemy bullet
func (w *World) SpawnEnemyBullet(b entity.EnemyBullet) *entity.EnemyBullet {
	b.ID = w.NewEntity()
	p := &b
	w.EnemyBullets = append(w.EnemyBullets, p)
	return p
}

// SpawnMissile adds a homing missile
func (w *World) SpawnMissile(m entity.HomingMissile) *entity.HomingMissile {
	m.ID = w.NewEntity()
	p := &m
	w.Missiles = append(w.Missiles, p)
	return p
}

// SpawnOrb adds a big orb
func (w *World) SpawnOrb(o entity.BigOrb) *entity.BigOrb {
	o.ID = w.NewEntity()
	p := &o
	w.Orbs = append(w.Orbs, p)
	return p
}

// SpawnStrikeLine adds a strike line. Caps apply at cleanup, not here.
func (w *World) SpawnStrikeLine(s entity.StrikeLine) *entity.StrikeLine {
	s.ID = w.NewEntity()
	p := &s
	w.StrikeLines = append(w.StrikeLines, p)
	return p
}

// SpawnMine adds a mine. Caps apply at cleanup, not here.
func (w *World) SpawnMine(m entity.Mine) *entity.Mine {
	m.ID = w.NewEntity()
	p := &m
	w.Mines = append(w.Mines, p)
	return p
}

// SpawnLaserArm adds a laser arm. Caps apply at cleanup, not here.
func (w *World) SpawnLaserArm(l entity.LaserArm) *entity.LaserArm {
	l.ID = w.NewEntity()
	p := &l
	w.LaserArms = append(w.LaserArms, p)
	return p
}

// SpawnPickup adds a pickup
func (w *World) SpawnPickup(pk entity.Pickup) *entity.Pickup {
	pk.ID = w.NewEntity()
	p := &pk
	w.Pickups = append(w.Pickups, p)
	return p
}

// SpawnBeam installs the beam. Returns false if one is already live.
func (w *World) SpawnBeam(b entity.Beam) (*entity.Beam, bool) {
	if w.Beam != nil {
		return w.Beam, false
	}
	b.ID = w.NewEntity()
	w.Beam = &b
	return w.Beam, true
}

// Advance runs every live entity's own motion and timers for one tick
func (w *World) Advance(ctx AdvanceContext) {
	for _, b := range w.PlayerBullets {
		b.Advance()
	}
	for _, b := range w.EnemyBullets {
		b.Advance()
	}
	for _, m := range w.Missiles {
		target, ok := w.BossPosition(m.Target)
		m.Advance(target, ok)
	}
	for _, o := range w.Orbs {
		o.Advance(ctx.Player, ctx.RNG)
	}
	for _, s := range w.StrikeLines {
		s.Advance()
	}
	for _, m := range w.Mines {
		m.Advance()
	}
	for _, l := range w.LaserArms {
		owner, ok := w.BossPosition(l.Owner)
		l.Advance(owner, ok)
	}
	for _, p := range w.Pickups {
		p.Advance()
	}
	if w.Beam != nil {
		w.Beam.Advance(ctx.Player.X)
	}
}

// Cleanup drops finished entities and then enforces the caps oldest-first
func (w *World) Cleanup() {
	l := w.limits

	w.PlayerBullets = compact(w.PlayerBullets, func(b *entity.PlayerBullet) bool { return !b.Expired() })
	w.EnemyBullets = compact(w.EnemyBullets, func(b *entity.EnemyBullet) bool {
		return !b.Expired(l.Width, l.Height, l.BulletMargin)
	})
	w.Missiles = compact(w.Missiles, func(m *entity.HomingMissile) bool { return !m.Expired() })
	w.Orbs = compact(w.Orbs, func(o *entity.BigOrb) bool { return !o.Exploded })
	w.StrikeLines = compact(w.StrikeLines, func(s *entity.StrikeLine) bool { return !s.Done() })
	w.Mines = compact(w.Mines, func(m *entity.Mine) bool { return !m.Exploded })
	w.LaserArms = compact(w.LaserArms, func(a *entity.LaserArm) bool { return !a.Done() })
	w.Pickups = compact(w.Pickups, func(p *entity.Pickup) bool { return !p.Expired(l.Height) })
	if w.Beam != nil && w.Beam.Expired() {
		w.Beam = nil
	}

	w.StrikeLines = capOldest(w.StrikeLines, KindStrikeLine.Cap(l))
	w.Mines = capOldest(w.Mines, KindMine.Cap(l))
	w.LaserArms = capOldest(w.LaserArms, KindLaserArm.Cap(l))
}

// Count returns the number of live entities of kind k
func (w *World) Count(k Kind) int {
	switch k {
	case KindPlayerBullet:
		return len(w.PlayerBullets)
	case KindEnemyBullet:
		return len(w.EnemyBullets)
	case KindMissile:
		return len(w.Missiles)
	case KindOrb:
		return len(w.Orbs)
	case KindStrikeLine:
		return len(w.StrikeLines)
	case KindMine:
		return len(w.Mines)
	case KindLaserArm:
		return len(w.LaserArms)
	case KindPickup:
		return len(w.Pickups)
	case KindBeam:
		if w.Beam != nil {
			return 1
		}
	}
	return 0
}

// Clear empties every collection. IDs keep counting up.
func (w *World) Clear() {
	w.PlayerBullets = nil
	w.EnemyBullets = nil
	w.Missiles = nil
	w.Orbs = nil
	w.StrikeLines = nil
	w.Mines = nil
	w.LaserArms = nil
	w.Pickups = nil
	w.Beam = nil
	w.Player = nil
	w.Boss = nil
}

// compact keeps the items for which keep returns true, preserving order
func compact[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

// capOldest drops items from the front until at most limit remain
func capOldest[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	n := copy(items, items[len(items)-limit:])
	clear(items[n:])
	return items[:n]
}
