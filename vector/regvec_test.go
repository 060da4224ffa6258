package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-igu/igu/vector"
)

func TestNew_RoundTrip(t *testing.T) {
	bits := "10110"
	v, err := vector.New(5, 0, bits)
	require.NoError(t, err)
	require.Equal(t, bits, v.String())
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := vector.New(4, 0, "101")
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func TestNew_BadBitString(t *testing.T) {
	_, err := vector.New(3, 0, "10x")
	require.ErrorIs(t, err, vector.ErrBadBitString)
}

func TestVal(t *testing.T) {
	v, err := vector.New(4, 0, "1001")
	require.NoError(t, err)
	require.Equal(t, uint(1), v.Val(0))
	require.Equal(t, uint(0), v.Val(1))
	require.Equal(t, uint(0), v.Val(2))
	require.Equal(t, uint(1), v.Val(3))
}

func TestEqual_IgnoresID(t *testing.T) {
	a, _ := vector.New(3, 1, "110")
	b, _ := vector.New(3, 99, "110")
	c, _ := vector.New(3, 2, "111")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestXOR(t *testing.T) {
	a, _ := vector.New(4, 0, "1010")
	b, _ := vector.New(4, 1, "0110")
	got := a.XOR(b)
	require.Equal(t, "1100", got.String())
}

func TestRegVecSpanningMultipleWords(t *testing.T) {
	n := 130
	bits := make([]byte, n)
	for i := range bits {
		if i%7 == 0 {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	v, err := vector.New(n, 0, string(bits))
	require.NoError(t, err)
	require.Equal(t, string(bits), v.String())
}
