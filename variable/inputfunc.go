package variable

import (
	"errors"
	"fmt"

	"github.com/go-igu/igu/vector"
)

// Kind discriminates the two InputFunc variants.
type Kind int

const (
	// KindVar identifies an InputFunc built from p caller-selected Variables
	// (typically the output of the variable-selection solver).
	KindVar Kind = iota
	// KindXor identifies an InputFunc built from p position sets supplied
	// directly (typically by the random hash generator).
	KindXor
)

// ErrTooWide is returned when an InputFunc would need an output width above
// 31 bits, beyond what a uint32 pattern value can hold (see
// InconsistentConfiguration in the outer driver).
var ErrTooWide = errors.New("variable: output_width > 31")

// ErrNoOutputs is returned when an InputFunc is constructed with zero
// component Variables.
var ErrNoOutputs = errors.New("variable: output_num must be positive")

// InputFunc is a function RegVec -> {0, ..., 2^p - 1}, implemented as a
// tagged variant over {KindVar, KindXor}. Both variants are mechanically
// identical: bit j of the result is the classification of the j-th
// component Variable. The Kind tag only records provenance for diagnostics.
type InputFunc struct {
	kind  Kind
	comps []*Variable
}

// NewVarFunc builds an InputFunc of KindVar from p already-selected
// Variables, bit j of the result coming from vars[j].Classify.
func NewVarFunc(vars []*Variable) (*InputFunc, error) {
	return newInputFunc(KindVar, vars)
}

// NewXorFunc builds an InputFunc of KindXor from p position sets, each
// turned into a Variable internally.
func NewXorFunc(positionSets [][]int) (*InputFunc, error) {
	comps := make([]*Variable, len(positionSets))
	for j, ps := range positionSets {
		v, err := New(ps)
		if err != nil {
			return nil, fmt.Errorf("variable: output bit %d: %w", j, err)
		}
		comps[j] = v
	}
	return newInputFunc(KindXor, comps)
}

func newInputFunc(kind Kind, comps []*Variable) (*InputFunc, error) {
	if len(comps) == 0 {
		return nil, ErrNoOutputs
	}
	if len(comps) > 31 {
		return nil, ErrTooWide
	}
	return &InputFunc{kind: kind, comps: comps}, nil
}

// Kind reports which variant this InputFunc is.
func (f *InputFunc) Kind() Kind { return f.kind }

// OutputWidth returns p, the number of output bits.
func (f *InputFunc) OutputWidth() int { return len(f.comps) }

// Components returns the p component Variables backing this function. The
// caller must not mutate the returned slice.
func (f *InputFunc) Components() []*Variable { return f.comps }

// Eval computes f(v) in [0, 2^OutputWidth()).
func (f *InputFunc) Eval(rv *vector.RegVec) uint32 {
	var result uint32
	for j, c := range f.comps {
		result |= uint32(c.Classify(rv)) << uint(j)
	}
	return result
}
