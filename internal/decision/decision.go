// Package decision draws one option from a weighted set.
package decision

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	ErrNoOptions     = errors.New("no options to choose from")
	ErrInvalidWeight = errors.New("weight must be a finite non-negative number")
	ErrZeroWeights   = errors.New("weights sum to zero")
)

// Option is a named candidate with a relative weight.
type Option struct {
	Name   string
	Weight float64
}

// Maker makes weighted random decisions.
type Maker struct {
	rng *rand.Rand
}

// NewMaker creates a Maker drawing from rng.
//
// rng is expected to be seeded once at process start.
func NewMaker(rng *rand.Rand) *Maker {
	return &Maker{rng: rng}
}

// Choose returns the name of one option, picked with probability
// proportional to its weight. Weights need not sum to 1.
func (m *Maker) Choose(options []Option) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	var total float64
	for _, o := range options {
		if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
			return "", fmt.Errorf("option %q: %w", o.Name, ErrInvalidWeight)
		}
		total += o.Weight
	}

	if total <= 0 || math.IsInf(total, 0) {
		return "", ErrZeroWeights
	}

	u := m.rng.Float64()

	var cumulative float64
	last := -1
	for i, o := range options {
		if o.Weight == 0 {
			continue
		}
		last = i
		cumulative += o.Weight / total
		if u < cumulative {
			return o.Name, nil
		}
	}

	// rounding can leave cumulative slightly below 1
	return options[last].Name, nil
}
