package ecs

// Kind identifies one entity collection in the World
type Kind int

const (
	KindPlayerBullet Kind = iota
	KindEnemyBullet
	KindMissile
	KindOrb
	KindStrikeLine
	KindMine
	KindLaserArm
	KindPickup
	KindBeam
	kindCount
)

// kindInfo is the per-kind dispatch entry
type kindInfo struct {
	name string
	cap  func(l Limits) int // 0 = uncapped
}

var kinds = [kindCount]kindInfo{
	KindPlayerBullet: {name: "PlayerBullet", cap: uncapped},
	KindEnemyBullet:  {name: "EnemyBullet", cap: uncapped},
	KindMissile:      {name: "Missile", cap: uncapped},
	KindOrb:          {name: "Orb", cap: uncapped},
	KindStrikeLine:   {name: "StrikeLine", cap: func(l Limits) int { return l.StrikeLineCap }},
	KindMine:         {name: "Mine", cap: func(l Limits) int { return l.MineCap }},
	KindLaserArm:     {name: "LaserArm", cap: func(l Limits) int { return l.LaserArmCap }},
	KindPickup:       {name: "Pickup", cap: uncapped},
	KindBeam:         {name: "Beam", cap: func(Limits) int { return 1 }},
}

func uncapped(Limits) int { return 0 }

// Kinds returns every kind in registry order
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the kind name
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kinds[k].name
}

// Cap returns the live limit for k under l, or 0 when k is uncapped
func (k Kind) Cap(l Limits) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return kinds[k].cap(l)
}
