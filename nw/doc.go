// Package nw aligns a variable-length source sequence against a fixed-length
// reference sequence with a constrained Needleman–Wunsch algorithm.
//
// 🚀 What is different from classic Needleman–Wunsch?
//
//	The result is not a pair of gapped strings. It is a single sequence with
//	exactly len(reference) elements, each one either the source element that
//	aligned to that reference position or a caller-supplied placeholder.
//	Source elements that do not fit the reference shape are dropped.
//	Typical uses:
//	  • reconciling noisy OCR fragments against a template
//	  • fitting tokens onto a classification mask (digit / letter / …)
//	  • preparing heterogeneous sequences for position-by-position merging
//
// ✨ Key features:
//   - generic element types: source []A and reference []B may differ,
//     a ScoreFunc[A, B] bridges them
//   - explicit placeholder, no per-type defaults
//   - linear gap penalty d (default -1), same for insertion and deletion
//   - reusable scratch matrix per Aligner: it grows, never shrinks
//   - fixed tie-break order on backtrack: diagonal, drop, insert
//
// ⚙️ Usage:
//
//	al := nw.NewAligner[rune, rune]()
//	out, err := al.Align([]rune("aabcd"), []rune("aaabbbccd"), nw.Equal[rune](1, -1), '*')
//	// string(out) == "*aa**b*cd"
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) cells, bounded by WithMaxCells (ErrTooLarge otherwise)
//
// An Aligner is not safe for concurrent use. Use one Aligner per goroutine.
package nw
