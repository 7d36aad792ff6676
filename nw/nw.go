package nw

import "fmt"

// Aligner aligns source sequences of element type A against reference
// sequences of element type B. It owns a scratch ScoreMatrix that is reused
// across calls, so an Aligner must not be shared between goroutines without
// external locking. Separate Aligners share no state.
type Aligner[A, B any] struct {
	opts   Options
	matrix ScoreMatrix
}

// NewAligner returns an Aligner configured by opts on top of DefaultOptions.
func NewAligner[A, B any](opts ...Option) *Aligner[A, B] {
	return &Aligner[A, B]{opts: gatherOptions(opts...)}
}

// Options returns the effective options of the aligner.
func (al *Aligner[A, B]) Options() Options { return al.opts }

// Align returns source fitted onto the shape of reference: a new slice of
// exactly len(reference) elements, each either an aligned source element or
// placeholder.
//
// Degenerate inputs are valid: an empty source yields len(reference)
// placeholders, an empty reference yields an empty slice.
//
// Errors:
//   - ErrNilScore  if score is nil.
//   - ErrTooLarge  if (len(source)+1)·(len(reference)+1) exceeds MaxCells.
//
// Complexity: O(n·m) time and memory, where n = len(source) and
// m = len(reference). Bound n·m on the caller side for untrusted input.
func (al *Aligner[A, B]) Align(source []A, reference []B, score ScoreFunc[A, B], placeholder A) ([]A, error) {
	dst := make([]A, len(reference))
	if err := al.AlignInto(dst, source, reference, score, placeholder); err != nil {
		return nil, err
	}

	return dst, nil
}

// AlignInto is Align writing into a caller-owned dst, which must have
// exactly len(reference) elements (ErrDestinationSize otherwise). dst is
// only written once the matrix is built successfully.
//
// dst must not share memory with source: the backtracker writes dst while it
// still reads source. Overlapping slices fail with ErrDestinationOverlap.
func (al *Aligner[A, B]) AlignInto(dst []A, source []A, reference []B, score ScoreFunc[A, B], placeholder A) error {
	// Stage 1 (Validate)
	if score == nil {
		return ErrNilScore
	}
	if len(dst) != len(reference) {
		return fmt.Errorf("%w: got %d, want %d", ErrDestinationSize, len(dst), len(reference))
	}
	if overlaps(dst, source) {
		return ErrDestinationOverlap
	}

	// Stage 2 (Score)
	if err := al.build(source, reference, score); err != nil {
		return err
	}

	// Stage 3 (Reconstruct)
	al.backtrack(dst, source, reference, score, placeholder)

	return nil
}

// Score returns the optimal alignment score of source against reference,
// i.e. M[n][m], without reconstructing the alignment.
func (al *Aligner[A, B]) Score(source []A, reference []B, score ScoreFunc[A, B]) (int, error) {
	if score == nil {
		return 0, ErrNilScore
	}
	if err := al.build(source, reference, score); err != nil {
		return 0, err
	}

	return al.matrix.at(len(source), len(reference)), nil
}

// Align is a one-shot helper that runs a fresh Aligner. Prefer a long-lived
// Aligner when aligning many sequences of similar size.
func Align[A, B any](source []A, reference []B, score ScoreFunc[A, B], placeholder A, opts ...Option) ([]A, error) {
	return NewAligner[A, B](opts...).Align(source, reference, score, placeholder)
}

// overlaps reports whether a and b share at least one element. Two
// overlapping windows of one array always contain the first element of the
// later window, so checking both first elements suffices.
// Complexity: O(len(a)+len(b)).
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	return contains(a, &b[0]) || contains(b, &a[0])
}

func contains[T any](s []T, p *T) bool {
	for i := range s {
		if &s[i] == p {
			return true
		}
	}

	return false
}
