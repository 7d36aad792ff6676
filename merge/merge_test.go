package merge_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/merge"
	"github.com/katalvlaran/nwalign/nw"
)

func runes(ss ...string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = []rune(s)
	}

	return out
}

// TestMerge_Converges merges four partial reads into the full label.
func TestMerge_Converges(t *testing.T) {
	out, err := merge.Merge('*', runes("*12*bc777*", "a1***b771*", "a2**bc77*7", "*3**c*77**"))
	require.NoError(t, err)
	assert.Equal(t, "a123bc7771", string(out))
}

// TestMerger_Steps pins the consensus after every Add.
func TestMerger_Steps(t *testing.T) {
	m := merge.New('*', []rune("*12*bc777*"))
	assert.Equal(t, 3, m.Unresolved())

	steps := []struct {
		seq  string
		want string
	}{
		{"a1***b771*", "a12*bc7771"},
		{"a2**bc77*7", "a12*bc7771"},
		{"*3**c*77**", "a123bc7771"},
	}
	for _, st := range steps {
		require.NoError(t, m.Add([]rune(st.seq)))
		assert.Equal(t, st.want, string(m.Consensus()), "after %q", st.seq)
	}
	assert.True(t, m.Resolved())

	// Resolved consensus ignores further input.
	require.NoError(t, m.Add([]rune("zzzzzzzzzz")))
	assert.Equal(t, "a123bc7771", string(m.Consensus()))
}

func TestMerge_Table(t *testing.T) {
	tests := []struct {
		name string
		seqs []string
		want string
	}{
		{"single", []string{"a*c"}, "a*c"},
		{"fills tail", []string{"ab*", "abc"}, "abc"},
		{"shorter read lands right", []string{"***", "x"}, "**x"},
		{"known positions kept", []string{"a*c", "zzz"}, "azc"},
		{"first fill wins", []string{"*b*", "abc", "xbz"}, "abc"},
		{"empty seed", []string{"", "abc"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := merge.Merge('*', runes(tt.seqs...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestMerge_Ints(t *testing.T) {
	out, err := merge.Merge(-1, [][]int{
		{1, -1, 3, -1},
		{1, 2, 3},
		{4},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, out)
}

func TestMerge_Errors(t *testing.T) {
	_, err := merge.Merge[rune]('*', nil)
	assert.ErrorIs(t, err, merge.ErrNoSequences)

	_, err = merge.Merge('*', runes("ab*", "abcdef"), merge.WithAlignerOptions(nw.WithMaxCells(8)))
	assert.ErrorIs(t, err, nw.ErrTooLarge)
}

func TestMerger_ConsensusIsCopy(t *testing.T) {
	seed := []rune("a*")
	m := merge.New('*', seed)
	seed[0] = 'z'

	c := m.Consensus()
	c[1] = 'q'
	assert.Equal(t, "a*", string(m.Consensus()))
}

func TestMerger_Logs(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, err := merge.Merge('*', runes("*12*bc777*", "a1***b771*", "a2**bc77*7", "*3**c*77**", "a123bc7771"), merge.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.True(t, strings.Contains(lines[0], "sequence merged"))
	assert.True(t, strings.Contains(lines[3], "already resolved"))
}

func TestWildcard(t *testing.T) {
	s := merge.Wildcard('*')
	assert.Equal(t, 1, s('a', 'a'))
	assert.Equal(t, 0, s('a', '*'))
	assert.Equal(t, -1, s('a', 'b'))
}
