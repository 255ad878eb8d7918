package entity

// EntityID is a unique identifier for an entity (never recycled, 0 is "nil")
type EntityID uint64

// ScaleFactor converts displayed health and damage into internal units.
// A displayed boss health of 600 is stored as 6000.
const ScaleFactor = 10

// Outcome is the resolution state of an encounter
type Outcome int

const (
	OutcomeNotStarted Outcome = iota
	OutcomeInProgress
	OutcomeVictory
	OutcomeDefeat
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNotStarted:
		return "NotStarted"
	case OutcomeInProgress:
		return "InProgress"
	case OutcomeVictory:
		return "Victory"
	case OutcomeDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Resolved returns true once the encounter has a winner
func (o Outcome) Resolved() bool {
	return o == OutcomeVictory || o == OutcomeDefeat
}

// Phase is the boss difficulty stage, 1 through 3
type Phase int

const (
	PhaseOne   Phase = 1
	PhaseTwo   Phase = 2
	PhaseThree Phase = 3
)

// Pattern is the boss fire pattern
type Pattern int

const (
	PatternCircular Pattern = iota
	PatternTargeted
	PatternFan
)

// Next returns the pattern that follows p in the rotation
func (p Pattern) Next() Pattern {
	return (p + 1) % 3
}

// String returns the string representation of the pattern
func (p Pattern) String() string {
	switch p {
	case PatternCircular:
		return "Circular"
	case PatternTargeted:
		return "Targeted"
	case PatternFan:
		return "Fan"
	default:
		return "Unknown"
	}
}

// ComboStep is one volley of a phase-3 combo
type ComboStep int

const (
	ComboFan ComboStep = iota
	ComboBurst
)

// ColorTag names a palette entry. Values are CSS color names so renderers
// can resolve them through a standard name table.
type ColorTag string

const (
	ColorDarkRed    ColorTag = "darkred"
	ColorDarkOrange ColorTag = "darkorange"
	ColorPurple     ColorTag = "purple"
	ColorMagenta    ColorTag = "magenta"
	ColorOrange     ColorTag = "orange"
)

// PickupKind is the effect a pickup applies
type PickupKind int

const (
	PickupHealth PickupKind = iota
)
