package regvec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/go-igu/igu/funcvect"
	"github.com/go-igu/igu/variable"
	"github.com/go-igu/igu/vector"
)

// RvMgr owns all RegVecs loaded from one vector dump. It is created empty,
// filled by exactly one Load call, and read-only thereafter.
type RvMgr struct {
	n        int
	q        int
	vectList []*vector.RegVec
	loaded   bool
}

// New returns an empty RvMgr ready for Load.
func New() *RvMgr {
	return &RvMgr{}
}

// Load parses the vector-dump format from s: a header line "n k" followed
// by k lines of exactly n characters each in {'0','1'}. Duplicate lines
// (identical bit patterns) are silently discarded and do not consume a
// dense id. Load may be called at most once per RvMgr; a second call
// returns ErrAlreadyLoaded. Malformed input aborts the load and returns a
// *MalformedInput describing the first offending line/column.
func (m *RvMgr) Load(s io.Reader) error {
	if m.loaded {
		return ErrAlreadyLoaded
	}

	scanner := bufio.NewScanner(s)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return &MalformedInput{Line: 1, Column: 1, Reason: "missing header line"}
	}
	n, k, err := parseHeader(scanner.Text())
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, k)
	vects := make([]*vector.RegVec, 0, k)

	for i := 0; i < k; i++ {
		lineNo := i + 2
		if !scanner.Scan() {
			return &MalformedInput{Line: lineNo, Column: 1, Reason: "unexpected end of input, fewer data lines than declared"}
		}
		line := scanner.Text()
		if len(line) != n {
			return &MalformedInput{Line: lineNo, Column: len(line) + 1, Reason: fmt.Sprintf("expected %d characters, got %d", n, len(line))}
		}
		if col := firstNonBit(line); col >= 0 {
			return &MalformedInput{Line: lineNo, Column: col + 1, Reason: "character is neither '0' nor '1'"}
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}

		rv, err := vector.New(n, len(vects), line)
		if err != nil {
			return &MalformedInput{Line: lineNo, Column: 1, Reason: err.Error()}
		}
		vects = append(vects, rv)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("regvec: reading input: %w", err)
	}

	m.n = n
	m.vectList = vects
	m.q = indexWidth(len(vects))
	m.loaded = true
	return nil
}

func parseHeader(line string) (n, k int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, &MalformedInput{Line: 1, Column: 1, Reason: "header must be \"n k\""}
	}
	n, err = strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0, 0, &MalformedInput{Line: 1, Column: 1, Reason: "n must be a positive integer"}
	}
	k, err = strconv.Atoi(fields[1])
	if err != nil || k <= 0 {
		return 0, 0, &MalformedInput{Line: 1, Column: len(fields[0]) + 2, Reason: "k must be a positive integer"}
	}
	return n, k, nil
}

func firstNonBit(line string) int {
	return bytes.IndexFunc([]byte(line), func(r rune) bool {
		return r != '0' && r != '1'
	})
}

// indexWidth computes q = ceil(log2(k+1)), the index-width for k vectors.
func indexWidth(k int) int {
	if k <= 0 {
		return 0
	}
	return bits.Len(uint(k))
}

// VectSize returns n, the fixed bit-width of every stored vector.
func (m *RvMgr) VectSize() int { return m.n }

// VectList returns the ordered, dense-id-indexed sequence of stored
// RegVecs. The caller must not mutate the returned slice.
func (m *RvMgr) VectList() []*vector.RegVec { return m.vectList }

// IndexSize returns q = ceil(log2(k+1)), the number of bits needed to
// encode a vector-id.
func (m *RvMgr) IndexSize() int { return m.q }

// GenHashVect evaluates f over every stored vector, in id order, producing
// a FuncVect. Returns ErrEmptyStore if Load has not yet succeeded.
func (m *RvMgr) GenHashVect(f *variable.InputFunc) (*funcvect.FuncVect, error) {
	if !m.loaded {
		return nil, ErrEmptyStore
	}
	values := make([]uint32, len(m.vectList))
	for i, rv := range m.vectList {
		values[i] = f.Eval(rv)
	}
	maxVal := uint32(1) << uint(f.OutputWidth())
	return funcvect.New(values, maxVal, len(values))
}

// Dump writes every stored vector back out in dump-format order, one
// bit-string per line, for diagnostics and round-trip testing.
func (m *RvMgr) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rv := range m.vectList {
		if _, err := bw.WriteString(rv.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
