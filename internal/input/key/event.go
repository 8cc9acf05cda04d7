package key

import (
	"fmt"
	"time"
)

// Direction is the direction of a key transition.
type Direction uint8

const (
	// Pressed indicates the key went down (or auto-repeated).
	Pressed Direction = iota

	// Released indicates the key went up.
	Released
)

// String returns "press" or "release".
func (d Direction) String() string {
	switch d {
	case Pressed:
		return "press"
	case Released:
		return "release"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Transition is a single press or release of a physical key.
// Transitions are values; hooks create them and nothing mutates them afterward.
type Transition struct {
	// Key identifies the physical key.
	Key Key

	// Direction is the direction of the transition.
	Direction Direction

	// Time is when the hook observed the transition.
	Time time.Time
}

// NewTransition creates a transition with the current timestamp.
func NewTransition(k Key, dir Direction) Transition {
	return Transition{
		Key:       k,
		Direction: dir,
		Time:      time.Now(),
	}
}

// Press creates a press transition for k.
func Press(k Key) Transition {
	return NewTransition(k, Pressed)
}

// Release creates a release transition for k.
func Release(k Key) Transition {
	return NewTransition(k, Released)
}

// IsPress returns true for a press transition.
func (t Transition) IsPress() bool {
	return t.Direction == Pressed
}

// IsRelease returns true for a release transition.
func (t Transition) IsRelease() bool {
	return t.Direction == Released
}

// String returns a compact representation like "press KeyA".
func (t Transition) String() string {
	return t.Direction.String() + " " + t.Key.String()
}
