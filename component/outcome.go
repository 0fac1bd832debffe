package component

import "github.com/lixenwraith/geometry-fighter/core"

// Outcome is the category deciding what touching an object does
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeGood
	OutcomeBad
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGood:
		return "GOOD"
	case OutcomeBad:
		return "BAD"
	default:
		return "NONE"
	}
}

// OutcomeFor maps a color to its category: the bad color is BAD, everything else GOOD
func OutcomeFor(color, bad core.RGB) Outcome {
	if color == bad {
		return OutcomeBad
	}
	return OutcomeGood
}

// OutcomeComponent tags a game object with its precomputed category
type OutcomeComponent struct {
	Outcome Outcome
}
