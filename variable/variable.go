package variable

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-igu/igu/vector"
)

// ErrEmptyPositionSet is returned when a Variable is constructed with no
// input positions.
var ErrEmptyPositionSet = errors.New("variable: position set must be nonempty")

// Variable is an unordered, deduplicated set of input-bit positions. It
// classifies a RegVec to the parity of the bits at those positions.
// Degree 1 ("primary") selects a single input bit; degree > 1 ("compound")
// XORs several.
type Variable struct {
	positions []int // sorted, deduplicated, canonical order
}

// New builds a Variable from positions, deduplicating and sorting them into
// canonical order. Returns ErrEmptyPositionSet if positions is empty after
// deduplication.
func New(positions []int) (*Variable, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyPositionSet
	}
	uniq := slices.Clone(positions)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)
	if len(uniq) == 0 {
		return nil, ErrEmptyPositionSet
	}
	return &Variable{positions: uniq}, nil
}

// Positions returns the canonical, sorted, deduplicated position set. The
// caller must not mutate the returned slice.
func (v *Variable) Positions() []int { return v.positions }

// Degree returns r = |positions|: 1 for a primary variable, >1 for compound.
func (v *Variable) Degree() int { return len(v.positions) }

// Classify returns the parity (0 or 1) of Σ rv[i] for i in the position set.
func (v *Variable) Classify(rv *vector.RegVec) uint {
	var parity uint
	for _, pos := range v.positions {
		parity ^= rv.Val(pos)
	}
	return parity
}

// String renders the variable as x_i1^x_i2^... for diagnostics.
func (v *Variable) String() string {
	s := fmt.Sprintf("x%d", v.positions[0])
	for _, p := range v.positions[1:] {
		s += fmt.Sprintf("^x%d", p)
	}
	return s
}
