package funcvect

import "errors"

// ErrLengthMismatch is returned by New when len(values) does not match the
// declared input size.
var ErrLengthMismatch = errors.New("funcvect: values length does not match input size")

// FuncVect is a dense array of size input_size holding, for every vector-id
// i in [0, input_size), the value of one hash function evaluated over
// vector i. Every value lies in [0, maxVal). It is read-only once built.
type FuncVect struct {
	values []uint32
	maxVal uint32
}

// New builds a FuncVect directly from a precomputed values slice. Returns
// ErrLengthMismatch if len(values) != inputSize.
func New(values []uint32, maxVal uint32, inputSize int) (*FuncVect, error) {
	if len(values) != inputSize {
		return nil, ErrLengthMismatch
	}
	cp := make([]uint32, len(values))
	copy(cp, values)
	return &FuncVect{values: cp, maxVal: maxVal}, nil
}

// InputSize returns k, the number of vectors this FuncVect was built over.
func (fv *FuncVect) InputSize() int { return len(fv.values) }

// MaxVal returns 2^p, the exclusive upper bound on every value.
func (fv *FuncVect) MaxVal() uint32 { return fv.maxVal }

// Val returns the hash value of vector-id i.
func (fv *FuncVect) Val(i int) uint32 { return fv.values[i] }
