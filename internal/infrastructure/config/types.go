package config

import "math"

// EncounterConfig is the root config for encounter.yaml
type EncounterConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Timing  TimingConfig  `yaml:"timing"`
	Player  PlayerConfig  `yaml:"player"`
	Boss    BossConfig    `yaml:"boss"`
	Hazards HazardsConfig `yaml:"hazards"`
	Pickups PickupConfig  `yaml:"pickups"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ArenaConfig is the fixed playfield rectangle
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BulletMargin float64 `yaml:"bulletMargin"` // enemy bullets survive this far outside
}

// TimingConfig configures the fixed-timestep stepper
type TimingConfig struct {
	TickRate         int     `yaml:"tickRate"`         // ticks per second
	MaxTicksPerFrame int     `yaml:"maxTicksPerFrame"` // hard per-frame cap
	HitchSeconds     float64 `yaml:"hitchSeconds"`     // backlog above this is discarded
}

type PlayerConfig struct {
	StartX       float64 `yaml:"startX"` // fraction of arena width
	StartY       float64 `yaml:"startY"` // fraction of arena height
	Speed        float64 `yaml:"speed"`
	Radius       float64 `yaml:"radius"`       // visual radius, used for pickups and bounds
	HitboxRadius float64 `yaml:"hitboxRadius"` // damage radius
	StartHealth  int     `yaml:"startHealth"`

	InvulnerabilityTicks int `yaml:"invulnerabilityTicks"`
	HitEffectTicks       int `yaml:"hitEffectTicks"`

	Weapon  WeaponConfig  `yaml:"weapon"`
	Beam    BeamConfig    `yaml:"beam"`
	Missile MissileConfig `yaml:"missile"`
}

// WeaponConfig is the standard fan weapon
type WeaponConfig struct {
	FireDelay    int       `yaml:"fireDelay"`
	BulletSpeed  float64   `yaml:"bulletSpeed"`
	BulletRadius float64   `yaml:"bulletRadius"`
	BulletDamage int       `yaml:"bulletDamage"`
	FanAngles    []float64 `yaml:"fanAngles"` // radians from straight up
}

type BeamConfig struct {
	CooldownTicks int     `yaml:"cooldownTicks"`
	LifeTicks     int     `yaml:"lifeTicks"`
	Width         float64 `yaml:"width"`
	Damage        int     `yaml:"damage"`
}

type MissileConfig struct {
	CooldownTicks int     `yaml:"cooldownTicks"`
	Count         int     `yaml:"count"`
	Spread        float64 `yaml:"spread"`
	LaunchOffset  float64 `yaml:"launchOffset"`
	Speed         float64 `yaml:"speed"`
	TurnRate      float64 `yaml:"turnRate"` // radians per tick
	Radius        float64 `yaml:"radius"`
	Damage        int     `yaml:"damage"`
}

type BossConfig struct {
	StartX           float64 `yaml:"startX"`
	StartY           float64 `yaml:"startY"`
	Radius           float64 `yaml:"radius"`
	MaxHealth        int     `yaml:"maxHealth"`
	PhaseTwoHealth   int     `yaml:"phaseTwoHealth"`
	PhaseThreeHealth int     `yaml:"phaseThreeHealth"`

	BaseFireRate        float64 `yaml:"baseFireRate"`
	BaseBulletSpeed     float64 `yaml:"baseBulletSpeed"`
	BulletSpeedPerPhase float64 `yaml:"bulletSpeedPerPhase"`
	BulletRadius        float64 `yaml:"bulletRadius"`
	PatternSwitchDelay  int     `yaml:"patternSwitchDelay"`
	HitFlashTicks       int     `yaml:"hitFlashTicks"`

	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`

	ComboChance    float64 `yaml:"comboChance"`
	ComboStepDelay int     `yaml:"comboStepDelay"`
}

type HazardsConfig struct {
	StrikeLine StrikeLineConfig `yaml:"strikeLine"`
	Mine       MineConfig       `yaml:"mine"`
	Orb        OrbConfig        `yaml:"orb"`
	LaserArm   LaserArmConfig   `yaml:"laserArm"`
}

type StrikeLineConfig struct {
	Chance         float64 `yaml:"chance"`
	MaxLive        int     `yaml:"maxLive"` // spawn guard
	Cap            int     `yaml:"cap"`     // registry cap
	TelegraphTicks int     `yaml:"telegraphTicks"`
	ActiveTicks    int     `yaml:"activeTicks"`
	HitMargin      float64 `yaml:"hitMargin"` // added to the player hitbox radius
}

type MineConfig struct {
	Chance           float64 `yaml:"chance"`
	MaxLive          int     `yaml:"maxLive"`
	Cap              int     `yaml:"cap"`
	MinLifeTicks     int     `yaml:"minLifeTicks"`
	MaxLifeTicks     int     `yaml:"maxLifeTicks"`
	Radius           float64 `yaml:"radius"`
	Fragments        int     `yaml:"fragments"`
	FragmentMinSpeed float64 `yaml:"fragmentMinSpeed"`
	FragmentMaxSpeed float64 `yaml:"fragmentMaxSpeed"`
}

type OrbConfig struct {
	Chance           float64 `yaml:"chance"`
	MaxLive          int     `yaml:"maxLive"`
	TargetedMaxLive  int     `yaml:"targetedMaxLive"`
	Speed            float64 `yaml:"speed"`
	MaxSpeed         float64 `yaml:"maxSpeed"`
	Spread           float64 `yaml:"spread"` // random aim jitter, radians each side
	NudgeChance      float64 `yaml:"nudgeChance"`
	LifeTicks        int     `yaml:"lifeTicks"`
	Radius           float64 `yaml:"radius"`
	Fragments        int     `yaml:"fragments"`
	FragmentMinSpeed float64 `yaml:"fragmentMinSpeed"`
	FragmentMaxSpeed float64 `yaml:"fragmentMaxSpeed"`
}

type LaserArmConfig struct {
	Chance         float64 `yaml:"chance"`
	MaxLive        int     `yaml:"maxLive"`
	Cap            int     `yaml:"cap"`
	HalfArc        float64 `yaml:"halfArc"`
	AngularSpeed   float64 `yaml:"angularSpeed"`
	TelegraphTicks int     `yaml:"telegraphTicks"`
	ActiveTicks    int     `yaml:"activeTicks"`
	ReachFactor    float64 `yaml:"reachFactor"` // of max(arena width, height)
}

type PickupConfig struct {
	DropChance float64 `yaml:"dropChance"`
	LifeTicks  int     `yaml:"lifeTicks"`
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
}

// ScoringConfig holds the displayed (unscaled) score weights
type ScoringConfig struct {
	BulletHit      int `yaml:"bulletHit"`
	MissileHit     int `yaml:"missileHit"`
	BeamHit        int `yaml:"beamHit"`
	HitPenalty     int `yaml:"hitPenalty"`
	TimeBonusStart int `yaml:"timeBonusStart"`
	TimeBonusDecay int `yaml:"timeBonusDecay"` // per whole second
	VictoryBonus   int `yaml:"victoryBonus"`
}

// Default returns the built-in encounter.
// Health and damage values are already multiplied by the x10 scale.
func Default() *EncounterConfig {
	return &EncounterConfig{
		Arena: ArenaConfig{Width: 2400, Height: 1200, BulletMargin: 50},
		Timing: TimingConfig{
			TickRate:         60,
			MaxTicksPerFrame: 5,
			HitchSeconds:     1.0,
		},
		Player: PlayerConfig{
			StartX:               0.5,
			StartY:               0.85,
			Speed:                10,
			Radius:               8,
			HitboxRadius:         2,
			StartHealth:          3,
			InvulnerabilityTicks: 90,
			HitEffectTicks:       30,
			Weapon: WeaponConfig{
				FireDelay:    6,
				BulletSpeed:  15,
				BulletRadius: 3,
				BulletDamage: 10,
				FanAngles:    []float64{0, -0.18, 0.18, -0.35, 0.35},
			},
			Beam: BeamConfig{
				CooldownTicks: 480,
				LifeTicks:     30,
				Width:         15,
				Damage:        200,
			},
			Missile: MissileConfig{
				CooldownTicks: 180,
				Count:         6,
				Spread:        40,
				LaunchOffset:  10,
				Speed:         12,
				TurnRate:      0.08,
				Radius:        6,
				Damage:        10,
			},
		},
		Boss: BossConfig{
			StartX:              0.5,
			StartY:              0.15,
			Radius:              15,
			MaxHealth:           6000,
			PhaseTwoHealth:      4000,
			PhaseThreeHealth:    2000,
			BaseFireRate:        30,
			BaseBulletSpeed:     9,
			BulletSpeedPerPhase: 0.4,
			BulletRadius:        4,
			PatternSwitchDelay:  120,
			HitFlashTicks:       8,
			Amplitude:           100,
			Frequency:           0.012,
			ComboChance:         0.004,
			ComboStepDelay:      14,
		},
		Hazards: HazardsConfig{
			StrikeLine: StrikeLineConfig{
				Chance:         0.008,
				MaxLive:        2,
				Cap:            6,
				TelegraphTicks: 60,
				ActiveTicks:    21,
				HitMargin:      8,
			},
			Mine: MineConfig{
				Chance:           0.006,
				MaxLive:          3,
				Cap:              6,
				MinLifeTicks:     180,
				MaxLifeTicks:     300,
				Radius:           10,
				Fragments:        18,
				FragmentMinSpeed: 6,
				FragmentMaxSpeed: 10,
			},
			Orb: OrbConfig{
				Chance:           0.007,
				MaxLive:          3,
				TargetedMaxLive:  2,
				Speed:            1.6,
				MaxSpeed:         3.2,
				Spread:           0.3,
				NudgeChance:      0.02,
				LifeTicks:        300,
				Radius:           26,
				Fragments:        30,
				FragmentMinSpeed: 8,
				FragmentMaxSpeed: 14,
			},
			LaserArm: LaserArmConfig{
				Chance:         0.003,
				MaxLive:        2,
				Cap:            4,
				HalfArc:        math.Pi / 3,
				AngularSpeed:   0.02,
				TelegraphTicks: 54,
				ActiveTicks:    96,
				ReachFactor:    0.45,
			},
		},
		Pickups: PickupConfig{
			DropChance: 0.007,
			LifeTicks:  480,
			Speed:      2.5,
			Radius:     10,
		},
		Scoring: ScoringConfig{
			BulletHit:      10,
			MissileHit:     50,
			BeamHit:        300,
			HitPenalty:     100,
			TimeBonusStart: 5000,
			TimeBonusDecay: 17,
			VictoryBonus:   1000,
		},
	}
}
