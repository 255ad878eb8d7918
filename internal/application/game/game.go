// Package game adapts a Scene to ebiten.Game and stamps every frame with wall-clock time.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/bossrush/internal/application/scene"
)

// Game implements ebiten.Game. It owns the frame clock and the current scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	clock func() time.Time
	last  time.Time // timestamp handed to the previous frame
}

// New creates a Game showing initialScene, whose OnEnter runs immediately
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update reads the clock once and hands the timestamp to the current scene.
// Scenes never see time go backwards: a clock that steps back repeats the
// previous timestamp.
func (g *Game) Update() error {
	now := g.clock()
	if now.Before(g.last) {
		now = g.last
	}
	g.last = now

	next, err := g.current.Update(now)
	if err != nil {
		return err
	}
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the arena size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the frame clock
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}
