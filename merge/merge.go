// Package merge builds a consensus from several partially-known sequences of
// the same shape, e.g. repeated OCR reads of one label where every read has
// unreadable positions marked with a wildcard.
//
// The first sequence seeds the consensus and fixes its length. Each further
// sequence is stripped of wildcards, aligned against the current consensus
// with nw, and every consensus wildcard that receives a concrete element is
// filled. Known consensus positions are never overwritten.
//
//	out, _ := merge.Merge('*', [][]rune{
//	    []rune("*12*bc777*"),
//	    []rune("a1***b771*"),
//	    []rune("a2**bc77*7"),
//	    []rune("*3**c*77**"),
//	})
//	// string(out) == "a123bc7771"
package merge

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/nwalign/nw"
)

// ErrNoSequences indicates that Merge was called without any sequence.
var ErrNoSequences = errors.New("merge: no sequences to merge")

// Wildcard returns the consensus scoring: +1 for equal elements, 0 when the
// consensus slot is still the wildcard, -1 otherwise.
func Wildcard[T comparable](wildcard T) nw.ScoreFunc[T, T] {
	return func(a, b T) int {
		switch {
		case a == b:
			return 1
		case b == wildcard:
			return 0
		default:
			return -1
		}
	}
}

type options struct {
	log    logr.Logger
	nwOpts []nw.Option
}

// Option configures a Merger.
type Option func(*options)

// WithLogger logs every merged sequence at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithAlignerOptions forwards options to the underlying nw.Aligner.
func WithAlignerOptions(opts ...nw.Option) Option {
	return func(o *options) { o.nwOpts = append(o.nwOpts, opts...) }
}

// Merger accumulates a consensus. It is not safe for concurrent use.
type Merger[T comparable] struct {
	wildcard  T
	consensus []T
	aligner   *nw.Aligner[T, T]
	score     nw.ScoreFunc[T, T]
	log       logr.Logger

	stripped []T // wildcard-free copy of the sequence being added
	aligned  []T // alignment output, len == len(consensus)
	added    int
}

// New returns a Merger seeded with a copy of seed.
func New[T comparable](wildcard T, seed []T, opts ...Option) *Merger[T] {
	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	consensus := make([]T, len(seed))
	copy(consensus, seed)

	return &Merger[T]{
		wildcard:  wildcard,
		consensus: consensus,
		aligner:   nw.NewAligner[T, T](o.nwOpts...),
		score:     Wildcard(wildcard),
		log:       o.log,
		aligned:   make([]T, len(seed)),
		added:     1,
	}
}

// Add aligns seq against the consensus and fills consensus wildcards with
// the concrete elements it aligned there. Once the consensus is resolved,
// Add is a no-op.
func (m *Merger[T]) Add(seq []T) error {
	m.added++
	if m.Resolved() {
		m.log.V(1).Info("consensus already resolved, sequence skipped", "sequence", m.added)

		return nil
	}

	m.stripped = m.stripped[:0]
	for _, v := range seq {
		if v != m.wildcard {
			m.stripped = append(m.stripped, v)
		}
	}

	if err := m.aligner.AlignInto(m.aligned, m.stripped, m.consensus, m.score, m.wildcard); err != nil {
		return err
	}

	filled := 0
	for k, v := range m.aligned {
		if v != m.wildcard && m.consensus[k] == m.wildcard {
			m.consensus[k] = v
			filled++
		}
	}
	m.log.V(1).Info("sequence merged", "sequence", m.added, "filled", filled, "unresolved", m.Unresolved())

	return nil
}

// Consensus returns a copy of the current consensus.
func (m *Merger[T]) Consensus() []T {
	out := make([]T, len(m.consensus))
	copy(out, m.consensus)

	return out
}

// Unresolved counts consensus positions still holding the wildcard.
func (m *Merger[T]) Unresolved() int {
	n := 0
	for _, v := range m.consensus {
		if v == m.wildcard {
			n++
		}
	}

	return n
}

// Resolved reports whether no wildcard is left in the consensus.
func (m *Merger[T]) Resolved() bool { return m.Unresolved() == 0 }

// Merge folds seqs into one consensus of len(seqs[0]) elements.
func Merge[T comparable](wildcard T, seqs [][]T, opts ...Option) ([]T, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	m := New(wildcard, seqs[0], opts...)
	for _, s := range seqs[1:] {
		if err := m.Add(s); err != nil {
			return nil, err
		}
	}

	return m.Consensus(), nil
}
