// Package encounter owns one boss fight: the registry, both controllers,
// the collision system, the stats ledger and the seeded RNG they share.
//
// All mutation happens inside Tick. Frame asks the stepper how many ticks
// a wall-clock frame is worth and runs them.
package encounter

import (
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/bossrush/internal/application/system"
	"github.com/younwookim/bossrush/internal/domain/entity"
	"github.com/younwookim/bossrush/internal/ecs"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// Encounter is the simulation context for a single player against a single boss
type Encounter struct {
	config  *config.EncounterConfig
	next    *config.EncounterConfig // applied on the next restart
	clock   Clock
	stepper *system.Stepper

	seed    int64
	rng     *rand.Rand
	world   *ecs.World
	stats   *entity.Stats
	players *system.PlayerController
	bosses  *system.BossController
	combat  *system.CombatSystem

	move    system.MoveIntent
	pending []system.Intent
	paused  bool
	outcome entity.Outcome
	tick    int
	events  []system.Event
}

// New creates an encounter that has not started yet.
// The player and boss are already placed so a ready screen can draw them.
// A nil clock uses time.Now.
func New(cfg *config.EncounterConfig, seed int64, clock Clock) *Encounter {
	if clock == nil {
		clock = time.Now
	}
	e := &Encounter{
		config:  cfg,
		clock:   clock,
		stepper: system.NewStepper(cfg.Timing),
	}
	e.reset(seed)
	return e
}

// Restart starts a fresh encounter from seed.
// Returns false while an encounter is in progress.
func (e *Encounter) Restart(seed int64) bool {
	if e.outcome == entity.OutcomeInProgress {
		return false
	}

	if e.next != nil {
		e.config = e.next
		e.stepper = system.NewStepper(e.config.Timing)
		e.next = nil
	}
	e.reset(seed)
	e.outcome = entity.OutcomeInProgress
	e.stats.Start = e.clock()

	log.Printf("Encounter started (seed: %d)", seed)
	return true
}

// Reconfigure stages cfg for the next restart. The running encounter keeps its tuning.
func (e *Encounter) Reconfigure(cfg *config.EncounterConfig) {
	e.next = cfg
}

// reset rebuilds every piece of state from seed
func (e *Encounter) reset(seed int64) {
	cfg := e.config

	e.seed = seed
	e.rng = rand.New(rand.NewSource(seed))
	e.world = ecs.NewWorld(limitsFor(cfg))
	e.stats = entity.NewStats(time.Time{})

	e.players = system.NewPlayerController(cfg)
	e.bosses = system.NewBossController(cfg, e.rng)
	e.combat = system.NewCombatSystem(cfg, e.rng)
	e.bosses.OnEvent = e.push
	e.combat.OnEvent = e.push

	e.world.Player = e.players.NewPlayer()
	e.world.Boss = e.bosses.NewBoss(e.world.NewEntity())

	e.move = system.MoveIntent{}
	e.pending = nil
	e.paused = false
	e.outcome = entity.OutcomeNotStarted
	e.tick = 0
	e.events = nil
	e.stepper.Reset()
}

func limitsFor(cfg *config.EncounterConfig) ecs.Limits {
	return ecs.Limits{
		Width:         cfg.Arena.Width,
		Height:        cfg.Arena.Height,
		BulletMargin:  cfg.Arena.BulletMargin,
		StrikeLineCap: cfg.Hazards.StrikeLine.Cap,
		MineCap:       cfg.Hazards.Mine.Cap,
		LaserArmCap:   cfg.Hazards.LaserArm.Cap,
	}
}

// Apply feeds one decoded intent into the encounter.
//
// Pause and restart take effect immediately. Movement is continuous state.
// Weapon requests are queued for the fire step of the next tick and are
// dropped while paused or when no encounter is running.
func (e *Encounter) Apply(intent system.Intent) {
	switch i := intent.(type) {
	case system.MoveIntent:
		e.move = i
	case system.PauseIntent:
		if e.outcome == entity.OutcomeInProgress {
			e.paused = !e.paused
		}
	case system.RestartIntent:
		switch e.outcome {
		case entity.OutcomeNotStarted:
			e.Restart(e.seed)
		case entity.OutcomeVictory, entity.OutcomeDefeat:
			e.Restart(e.rng.Int63())
		}
	default:
		if system.IsEdge(intent) && e.Running() {
			e.pending = append(e.pending, intent)
		}
	}
}

// Frame records a frame at now and runs the ticks it is worth.
// Stops early once the outcome resolves. Returns the number of ticks run.
func (e *Encounter) Frame(now time.Time) int {
	n := e.stepper.Advance(now, !e.Running())
	ran := 0
	for ; ran < n && e.Running(); ran++ {
		e.Tick()
	}
	return ran
}

// Tick runs one fixed simulation step. It is a no-op unless the encounter is running.
func (e *Encounter) Tick() {
	if !e.Running() {
		return
	}
	e.tick++

	w := e.world
	e.players.Update(w.Player, e.move)
	e.bosses.Update(w, w.Boss, w.Player.Pos)
	e.players.HandleFire(w, w.Player, e.stats, e.pending)
	e.pending = e.pending[:0]

	w.Advance(ecs.AdvanceContext{Player: w.Player.Pos, RNG: e.rng})
	e.outcome = e.combat.Resolve(w, e.stats, e.outcome)
	w.Cleanup()

	if e.outcome.Resolved() {
		e.finish()
	}
}

func (e *Encounter) finish() {
	now := e.clock()
	e.stats.Finish(now)
	score := e.stats.Score(weightsFor(e.config), e.outcome == entity.OutcomeVictory, now)

	e.push(system.Event{Kind: system.EventOutcome, Outcome: e.outcome})
	log.Printf("Encounter ended: %s (score: %d, elapsed: %s, ticks: %d)",
		e.outcome, score, e.stats.Elapsed(now).Round(time.Millisecond), e.tick)
}

func weightsFor(cfg *config.EncounterConfig) entity.ScoreWeights {
	sc := cfg.Scoring
	return entity.ScoreWeights{
		BulletHit:      sc.BulletHit,
		MissileHit:     sc.MissileHit,
		BeamHit:        sc.BeamHit,
		HitPenalty:     sc.HitPenalty,
		TimeBonusStart: sc.TimeBonusStart,
		TimeBonusDecay: sc.TimeBonusDecay,
		VictoryBonus:   sc.VictoryBonus,
	}
}

func (e *Encounter) push(ev system.Event) {
	e.events = append(e.events, ev)
}

// DrainEvents returns the events raised since the last call
func (e *Encounter) DrainEvents() []system.Event {
	events := e.events
	e.events = nil
	return events
}

// Running returns true while ticks should run
func (e *Encounter) Running() bool {
	return e.outcome == entity.OutcomeInProgress && !e.paused
}

// Outcome returns the current encounter outcome
func (e *Encounter) Outcome() entity.Outcome {
	return e.outcome
}

// Paused returns true while the encounter is paused
func (e *Encounter) Paused() bool {
	return e.paused
}

// Seed returns the seed of the current encounter
func (e *Encounter) Seed() int64 {
	return e.seed
}

// Config returns the tuning of the current encounter
func (e *Encounter) Config() *config.EncounterConfig {
	return e.config
}
