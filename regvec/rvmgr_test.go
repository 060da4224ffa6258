package regvec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-igu/igu/regvec"
	"github.com/go-igu/igu/variable"
)

func TestLoad_ScenarioA(t *testing.T) {
	data := "3 4\n000\n011\n101\n110\n"
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader(data)))
	require.Equal(t, 3, m.VectSize())
	require.Len(t, m.VectList(), 4)
	require.Equal(t, 3, m.IndexSize()) // ceil(log2(5)) = 3
}

func TestLoad_DeduplicatesLines(t *testing.T) {
	data := "2 3\n00\n11\n00\n"
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader(data)))
	require.Len(t, m.VectList(), 2)
	require.Equal(t, 0, m.VectList()[0].ID())
	require.Equal(t, 1, m.VectList()[1].ID())
}

func TestLoad_RoundTrip(t *testing.T) {
	lines := []string{"10110", "00011", "11111"}
	data := "5 3\n" + strings.Join(lines, "\n") + "\n"
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader(data)))

	var buf strings.Builder
	require.NoError(t, m.Dump(&buf))
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, lines, got)
}

func TestLoad_BadLineLength(t *testing.T) {
	data := "3 2\n00\n101\n"
	m := regvec.New()
	err := m.Load(strings.NewReader(data))
	require.Error(t, err)
	var mi *regvec.MalformedInput
	require.ErrorAs(t, err, &mi)
	require.Equal(t, 2, mi.Line)
}

func TestLoad_BadChar(t *testing.T) {
	data := "3 1\n10x\n"
	m := regvec.New()
	err := m.Load(strings.NewReader(data))
	require.Error(t, err)
	var mi *regvec.MalformedInput
	require.ErrorAs(t, err, &mi)
	require.Equal(t, 2, mi.Line)
	require.Equal(t, 3, mi.Column)
}

func TestLoad_Twice(t *testing.T) {
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader("1 1\n0\n")))
	require.ErrorIs(t, m.Load(strings.NewReader("1 1\n0\n")), regvec.ErrAlreadyLoaded)
}

func TestGenHashVect(t *testing.T) {
	data := "3 4\n000\n011\n101\n110\n"
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader(data)))

	f, err := variable.NewXorFunc([][]int{{0}, {1}})
	require.NoError(t, err)
	fv, err := m.GenHashVect(f)
	require.NoError(t, err)
	require.Equal(t, 4, fv.InputSize())
	require.Equal(t, uint32(4), fv.MaxVal())
	require.Equal(t, uint32(0), fv.Val(0)) // 000 -> bit0=0 bit1=0
	require.Equal(t, uint32(2), fv.Val(1)) // 011 -> bit0=0 bit1=1
}
