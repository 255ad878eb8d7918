package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state.
// Held keys drive movement; *Pressed fields are true only on the frame a key goes down.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	ToggleFirePressed bool
	BeamPressed       bool
	MissilePressed    bool
	PausePressed      bool
	RestartPressed    bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:              anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:             anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Up:                anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:              anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		ToggleFirePressed: inpututil.IsKeyJustPressed(ebiten.KeyY),
		BeamPressed:       inpututil.IsKeyJustPressed(ebiten.KeyI),
		MissilePressed:    inpututil.IsKeyJustPressed(ebiten.KeyU),
		PausePressed:      inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		RestartPressed:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// Intents decodes an input state. The movement intent is always first.
func (in InputState) Intents() []Intent {
	move := MoveIntent{}
	if in.Left {
		move.AxisX--
	}
	if in.Right {
		move.AxisX++
	}
	if in.Up {
		move.AxisY--
	}
	if in.Down {
		move.AxisY++
	}

	intents := []Intent{move}
	if in.ToggleFirePressed {
		intents = append(intents, ToggleFireIntent{})
	}
	if in.BeamPressed {
		intents = append(intents, BeamIntent{})
	}
	if in.MissilePressed {
		intents = append(intents, MissileIntent{})
	}
	if in.PausePressed {
		intents = append(intents, PauseIntent{})
	}
	if in.RestartPressed {
		intents = append(intents, RestartIntent{})
	}
	return intents
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
