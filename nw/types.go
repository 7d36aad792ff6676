package nw

import (
	"errors"
	"math"
)

// Defaults applied by DefaultOptions.
const (
	// DefaultGapPenalty is the score added for every dropped source element
	// and every placeholder written into the output.
	DefaultGapPenalty = -1

	// DefaultMaxCells bounds (n+1)·(m+1) before the score matrix is allocated.
	DefaultMaxCells = 1 << 26

	// MinGapPenalty is the harshest accepted gap penalty. Border cells hold
	// up to (n+m)·d, which stays inside int for any matrix that fits in memory.
	MinGapPenalty = math.MinInt32
)

const (
	panicGapPenaltyInvalid = "nw: WithGapPenalty: penalty must be in [MinGapPenalty, -1]"
	panicMaxCellsInvalid   = "nw: WithMaxCells: limit must be positive"
)

// Sentinel errors returned by the aligner. Match them with errors.Is.
var (
	// ErrNilScore indicates that no score function was supplied.
	ErrNilScore = errors.New("nw: score function is nil")

	// ErrDestinationSize indicates that the destination slice passed to
	// AlignInto does not have exactly len(reference) elements.
	ErrDestinationSize = errors.New("nw: destination length must equal reference length")

	// ErrDestinationOverlap indicates that the destination slice passed to
	// AlignInto shares memory with the source.
	ErrDestinationOverlap = errors.New("nw: destination overlaps source")

	// ErrTooLarge indicates that the score matrix would exceed the configured
	// cell limit. Nothing is allocated when this is returned.
	ErrTooLarge = errors.New("nw: score matrix exceeds cell limit")

	// ErrOutOfRange indicates a ScoreMatrix index outside the current shape.
	ErrOutOfRange = errors.New("nw: index out of range")
)

// ScoreFunc rates how well source element a fits reference element b.
// Higher is better. It must be pure: the aligner calls it again while
// backtracking and expects the same value.
type ScoreFunc[A, B any] func(a A, b B) int

// Equal returns a ScoreFunc for same-typed sequences that yields match for
// equal elements and mismatch otherwise.
func Equal[T comparable](match, mismatch int) ScoreFunc[T, T] {
	return func(a, b T) int {
		if a == b {
			return match
		}

		return mismatch
	}
}

// Options configures an Aligner.
//
//   - GapPenalty: negative score of one insertion or deletion step.
//   - MaxCells: upper bound on (n+1)·(m+1); larger inputs fail with ErrTooLarge.
type Options struct {
	GapPenalty int
	MaxCells   int
}

// DefaultOptions returns the options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		GapPenalty: DefaultGapPenalty,
		MaxCells:   DefaultMaxCells,
	}
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithGapPenalty sets the linear gap penalty d. It panics unless
// MinGapPenalty <= d < 0.
func WithGapPenalty(d int) Option {
	if d >= 0 || d < MinGapPenalty {
		panic(panicGapPenaltyInvalid)
	}

	return func(o *Options) { o.GapPenalty = d }
}

// WithMaxCells sets the cell limit of the score matrix. It panics unless
// limit > 0.
func WithMaxCells(limit int) Option {
	if limit <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.MaxCells = limit }
}

// gatherOptions applies opts over DefaultOptions. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
