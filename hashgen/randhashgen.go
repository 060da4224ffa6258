package hashgen

import (
	"errors"
	"math/bits"

	"github.com/go-igu/igu/variable"
)

// ErrInsufficientInputs is returned when outputNum exceeds inputNum: there
// are not enough distinct positions to assign one primary per output.
var ErrInsufficientInputs = errors.New("hashgen: output_num exceeds input_num")

// ErrInvalidParams is returned when inputNum, outputNum, or maxDegree is
// not a positive integer.
var ErrInvalidParams = errors.New("hashgen: input_num, output_num, and max_degree must be positive")

// RandHashGen produces random XOR hash functions of bounded fan-in. It owns
// a deterministic PRNG stream; seeding is caller-controlled via New.
type RandHashGen struct {
	rng *streamRNG
}

// New returns a RandHashGen seeded deterministically from seed: the same
// seed always reproduces the same sequence of generated functions.
func New(seed uint64) *RandHashGen {
	return &RandHashGen{rng: newStreamRNG(seed)}
}

// GenFunc produces an InputFunc of KindXor with outputNum outputs over
// inputNum inputs, each output XORing at most maxDegree distinct input
// positions.
//
// Construction, per output j:
//  1. One distinct primary position is assigned to each output (sampled
//     without replacement across outputs, so no two outputs share a
//     primary).
//  2. A bit pattern over (maxDegree-1) slots is drawn and reduced modulo
//     mask = (1<<(maxDegree-1))-1; the popcount of the reduced value gives
//     the additional-position count c. This mirrors the source material's
//     `bit_pat % mask` reduction: the single all-ones bit pattern maps to
//     zero, so c lies in [0, maxDegree-2] (never maxDegree-1, and always 0
//     when maxDegree is 2) and is biased toward lower popcounts than an
//     unreduced draw would be (Open Question (a) in the design notes;
//     behavior is preserved deliberately, not fixed).
//  3. c positions are sampled without replacement from the inputNum-1
//     inputs other than j's own primary (which may include other outputs'
//     primaries).
func (g *RandHashGen) GenFunc(inputNum, outputNum, maxDegree int) (*variable.InputFunc, error) {
	if inputNum < 1 || outputNum < 1 || maxDegree < 1 {
		return nil, ErrInvalidParams
	}
	if maxDegree > inputNum {
		return nil, ErrInvalidParams
	}
	if outputNum > inputNum {
		return nil, ErrInsufficientInputs
	}

	allPositions := make([]int, inputNum)
	for i := range allPositions {
		allPositions[i] = i
	}
	primaries := sampleWithoutReplacement(g.rng, append([]int(nil), allPositions...), outputNum)

	mask := uint64(1)<<uint(maxDegree-1) - 1

	positionSets := make([][]int, outputNum)
	for j, primary := range primaries {
		extraCount := 0
		if maxDegree > 1 {
			bitPat := g.rng.next() & mask
			reduced := bitPat % mask
			extraCount = bits.OnesCount64(reduced)
		}

		others := make([]int, 0, inputNum-1)
		for _, p := range allPositions {
			if p != primary {
				others = append(others, p)
			}
		}
		extras := sampleWithoutReplacement(g.rng, others, extraCount)

		set := append([]int{primary}, extras...)
		positionSets[j] = set
	}

	return variable.NewXorFunc(positionSets)
}
