package nw

import "fmt"

// build fills the scratch matrix for source against reference.
//
// Algorithm Outline:
//  1. Let n = len(source), m = len(reference). Reset M to (n+1)x(m+1).
//  2. Borders: M[i][0] = i·d, M[0][j] = j·d.
//  3. For i = 1..n, j = 1..m:
//     diag = M[i-1][j-1] + score(source[i-1], reference[j-1])
//     drop = M[i-1][j]   + d   (source element consumed, nothing emitted)
//     ins  = M[i][j-1]   + d   (reference position gets the placeholder)
//     M[i][j] = max(diag, drop, ins)
//  4. M[n][m] is the optimal score.
//
// Errors:
//   - ErrTooLarge when (n+1)·(m+1) exceeds Options.MaxCells. The matrix is
//     left untouched in that case.
//
// Complexity: O(n·m) time, O(n·m) memory.
func (al *Aligner[A, B]) build(source []A, reference []B, score ScoreFunc[A, B]) error {
	n, m := len(source), len(reference)
	if !fits(n+1, m+1, al.opts.MaxCells) {
		return fmt.Errorf("%w: %d×%d cells, limit %d", ErrTooLarge, n+1, m+1, al.opts.MaxCells)
	}

	d := al.opts.GapPenalty
	mx := &al.matrix
	mx.Reset(n+1, m+1)

	// Stage 1: borders
	for i := 0; i <= n; i++ {
		mx.set(i, 0, i*d)
	}
	for j := 1; j <= m; j++ {
		mx.set(0, j, j*d)
	}

	// Stage 2: interior, row by row
	for i := 1; i <= n; i++ {
		a := source[i-1]
		for j := 1; j <= m; j++ {
			diag := mx.at(i-1, j-1) + score(a, reference[j-1])
			drop := mx.at(i-1, j) + d
			ins := mx.at(i, j-1) + d
			mx.set(i, j, max(diag, drop, ins))
		}
	}

	return nil
}
