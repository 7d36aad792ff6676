package nw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/nw"
)

func TestScoreMatrix_ResetGrowsNeverShrinks(t *testing.T) {
	var m nw.ScoreMatrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cap())

	m.Reset(3, 4)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 12, m.Cap())

	m.Reset(2, 2)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 12, m.Cap(), "capacity must be retained")

	m.Reset(5, 5)
	assert.Equal(t, 25, m.Cap())
}

func TestScoreMatrix_At(t *testing.T) {
	var m nw.ScoreMatrix
	m.Reset(2, 3)

	_, err := m.At(0, 0)
	assert.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, nw.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}

// TestBuild_Borders checks M[i][0] = i·d and M[0][j] = j·d, plus the shape.
func TestBuild_Borders(t *testing.T) {
	for _, d := range []int{-1, -2, -5} {
		al := nw.NewAligner[rune, rune](nw.WithGapPenalty(d))
		_, err := al.Score([]rune("abcd"), []rune("xy"), unit)
		require.NoError(t, err)

		m := al.Matrix()
		require.Equal(t, 5, m.Rows())
		require.Equal(t, 3, m.Cols())
		for i := 0; i < m.Rows(); i++ {
			v, err := m.At(i, 0)
			require.NoError(t, err)
			assert.Equal(t, i*d, v)
		}
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(0, j)
			require.NoError(t, err)
			assert.Equal(t, j*d, v)
		}
	}
}

func TestBuild_String(t *testing.T) {
	al := nw.NewAligner[rune, rune]()
	_, err := al.Score([]rune("ab"), []rune("b"), unit)
	require.NoError(t, err)

	assert.Equal(t, "[0, -1]\n[-1, -1]\n[-2, 0]\n", al.Matrix().String())
}

// TestBuild_StaleCellsOverwritten fills a large matrix, then a smaller one,
// and compares against a fresh aligner cell by cell.
func TestBuild_StaleCellsOverwritten(t *testing.T) {
	reused := nw.NewAligner[rune, rune]()
	_, err := reused.Score([]rune("zzzzzzzzzz"), []rune("zzzzzzzzzz"), unit)
	require.NoError(t, err)
	_, err = reused.Score([]rune("abc"), []rune("cab"), unit)
	require.NoError(t, err)

	fresh := nw.NewAligner[rune, rune]()
	_, err = fresh.Score([]rune("abc"), []rune("cab"), unit)
	require.NoError(t, err)

	assert.Equal(t, fresh.Matrix().String(), reused.Matrix().String())
}

func TestFits(t *testing.T) {
	assert.True(t, nw.Fits(4, 5, 20))
	assert.False(t, nw.Fits(5, 5, 20))
	assert.True(t, nw.Fits(1, 1, 1))
	assert.False(t, nw.Fits(1<<40, 1<<40, nw.DefaultMaxCells), "product overflow must not fit")
}
