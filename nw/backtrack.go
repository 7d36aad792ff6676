package nw

// backtrack walks the filled matrix from (n, m) back to the origin and writes
// the aligned sequence into dst, which must hold exactly len(reference)
// elements.
//
// Every step that moves along the reference axis produces exactly one output
// element, so the output cursor is always j-1 and dst is filled from its end
// without a reversal pass.
//
// When several moves reproduce M[i][j], the first of these wins:
//  1. diagonal: emit source[i-1], i--, j--
//  2. drop: M[i][j] == M[i-1][j] + d: skip source[i-1], i--
//  3. insert: emit placeholder, j--
//
// Source elements left over once j reaches 0 are discarded; reference
// positions left over once i reaches 0 get the placeholder.
func (al *Aligner[A, B]) backtrack(dst []A, source []A, reference []B, score ScoreFunc[A, B], placeholder A) {
	mx := &al.matrix
	d := al.opts.GapPenalty

	i, j := len(source), len(reference)
	for i > 0 && j > 0 {
		cur := mx.at(i, j)
		switch {
		case cur == mx.at(i-1, j-1)+score(source[i-1], reference[j-1]):
			dst[j-1] = source[i-1]
			i--
			j--
		case cur == mx.at(i-1, j)+d:
			i--
		default:
			dst[j-1] = placeholder
			j--
		}
	}

	for ; j > 0; j-- {
		dst[j-1] = placeholder
	}
}
