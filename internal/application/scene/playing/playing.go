// Package playing provides the encounter scene: it feeds decoded intents into
// the simulation, runs it from the frame clock and draws its snapshot.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/bossrush/internal/application/encounter"
	"github.com/younwookim/bossrush/internal/application/scene"
	"github.com/younwookim/bossrush/internal/application/state"
	"github.com/younwookim/bossrush/internal/application/system"
	"github.com/younwookim/bossrush/internal/infrastructure/config"
	"golang.org/x/image/font/basicfont"
)

// Screen shake applied when the player is hit
const (
	hitShake   = 14.0
	shakeDecay = 0.85
)

// Frames a phase banner stays up
const bannerFrames = 90

// Playing is the encounter scene
type Playing struct {
	encounter   *encounter.Encounter
	inputSystem *system.InputSystem
	state       state.GameState
	screenW     int
	screenH     int

	// Config hot reload; nil when disabled
	reloads <-chan *config.EncounterConfig

	// Feedback
	particles []particle
	shake     float64
	fxRNG     *rand.Rand // cosmetic only, never shared with the simulation
	banner    string
	bannerTTL int

	face text.Face
}

// New creates the encounter scene in the ready state.
// reloads may be nil; configs received on it apply at the next restart.
func New(cfg *config.EncounterConfig, seed int64, reloads <-chan *config.EncounterConfig) *Playing {
	return &Playing{
		encounter:   encounter.New(cfg, seed, time.Now),
		inputSystem: system.NewInputSystem(),
		state:       state.StateReady,
		screenW:     int(cfg.Arena.Width),
		screenH:     int(cfg.Arena.Height),
		reloads:     reloads,
		fxRNG:       rand.New(rand.NewSource(seed)),
		face:        text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(now time.Time) (scene.Scene, error) {
	p.pollReload()

	for _, intent := range p.inputSystem.GetInput().Intents() {
		p.encounter.Apply(intent)
	}
	p.encounter.Frame(now)

	for _, ev := range p.encounter.DrainEvents() {
		p.onEvent(ev)
	}
	p.updateParticles()
	p.shake *= shakeDecay
	if p.bannerTTL > 0 {
		p.bannerTTL--
	}

	p.state = state.For(p.encounter.Outcome(), p.encounter.Paused())
	return nil, nil // nil = stay on this scene
}

// pollReload stages the newest config received since the last frame
func (p *Playing) pollReload() {
	if p.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			p.encounter.Reconfigure(cfg)
			log.Printf("Config reloaded, applies on next restart")
		default:
			return
		}
	}
}

func (p *Playing) onEvent(ev system.Event) {
	switch ev.Kind {
	case system.EventPhaseTransition:
		p.burst(ev.Pos, ev.Particles, ev.Intensity, colorFor(ev.Color))
		p.banner = fmt.Sprintf("PHASE %d", ev.Phase)
		p.bannerTTL = bannerFrames
	case system.EventDetonation:
		p.burst(ev.Pos, ev.Particles/2, 6, colorFor(ev.Color))
	case system.EventBossHit:
		n, speed, c := hitSpark(ev.Source)
		p.burst(ev.Pos, n, speed, c)
	case system.EventPlayerHit:
		p.shake = hitShake
		p.burst(ev.Pos, 12, 5, colorPlayerHit)
	case system.EventPickup:
		p.burst(ev.Pos, 8, 3, colorPickup)
	case system.EventOutcome:
		p.shake = 0
		p.bannerTTL = 0
	}
}

// hitSpark sizes the boss hit burst by the weapon that landed it
func hitSpark(src system.HitSource) (n int, speed float64, c color.RGBA) {
	switch src {
	case system.SourceBeam:
		return 24, 8, colorBeam
	case system.SourceMissile:
		return 8, 5, colorMissile
	default:
		return 3, 3, colorSpark
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.encounter.Snapshot()
	screen.Fill(colorBG)

	v := view{}
	if p.shake > 0.5 {
		v.dx = p.shake * (2*p.fxRNG.Float64() - 1)
		v.dy = p.shake * (2*p.fxRNG.Float64() - 1)
	}

	p.drawWorld(screen, v, &snap)
	p.drawParticles(screen, v)
	p.drawHUD(screen, &snap)
	p.drawBanner(screen)

	switch {
	case p.state.Terminal():
		p.drawResultOverlay(screen, &snap)
	case p.state == state.StateReady:
		p.drawReadyOverlay(screen)
	case p.state == state.StatePaused:
		p.drawPauseOverlay(screen)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
