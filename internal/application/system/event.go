package system

import (
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/domain/geom"
)

// EventKind identifies a simulation event
type EventKind int

const (
	EventPhaseTransition EventKind = iota
	EventBossHit
	EventPlayerHit
	EventDetonation
	EventPickup
	EventOutcome
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventPhaseTransition:
		return "PhaseTransition"
	case EventBossHit:
		return "BossHit"
	case EventPlayerHit:
		return "PlayerHit"
	case EventDetonation:
		return "Detonation"
	case EventPickup:
		return "Pickup"
	case EventOutcome:
		return "Outcome"
	default:
		return "Unknown"
	}
}

// HitSource is the player weapon that landed a boss hit
type HitSource int

const (
	SourceBullet HitSource = iota
	SourceMissile
	SourceBeam
)

func (s HitSource) String() string {
	switch s {
	case SourceBullet:
		return "Bullet"
	case SourceMissile:
		return "Missile"
	case SourceBeam:
		return "Beam"
	default:
		return "Unknown"
	}
}

// Event is a notification for particle, sound and HUD collaborators.
// Fields not meaningful for a kind are left zero.
type Event struct {
	Kind      EventKind
	Pos       geom.Vec
	Phase     entity.Phase    // PhaseTransition
	Particles int             // PhaseTransition, Detonation
	Intensity float64         // PhaseTransition
	Source    HitSource       // BossHit
	Color     entity.ColorTag // Detonation
	Outcome   entity.Outcome  // Outcome
}
