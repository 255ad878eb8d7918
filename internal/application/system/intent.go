package system

// Intent represents an action decoded from player input
type Intent interface {
	isIntent()
}

// MoveIntent holds the current movement axes, each in {-1, 0, 1}.
// It is continuous state: the latest value applies until replaced.
type MoveIntent struct {
	AxisX, AxisY int
}

func (MoveIntent) isIntent() {}

// ToggleFireIntent flips the standard weapon on or off
type ToggleFireIntent struct{}

func (ToggleFireIntent) isIntent() {}

// BeamIntent requests the beam weapon
type BeamIntent struct{}

func (BeamIntent) isIntent() {}

// MissileIntent requests a missile salvo
type MissileIntent struct{}

func (MissileIntent) isIntent() {}

// PauseIntent toggles pause
type PauseIntent struct{}

func (PauseIntent) isIntent() {}

// RestartIntent starts a new encounter from the ready or result screen
type RestartIntent struct{}

func (RestartIntent) isIntent() {}

// IsEdge reports whether i is a one-shot weapon request that is queued for the next tick
func IsEdge(i Intent) bool {
	switch i.(type) {
	case ToggleFireIntent, BeamIntent, MissileIntent:
		return true
	default:
		return false
	}
}
