package nw

import (
	"fmt"
	"strconv"
	"strings"
)

// ScoreMatrix is the row-major scratch table of an Aligner. Rows follow the
// source sequence, columns follow the reference sequence, so cell (i, j)
// holds the best score of source[:i] against reference[:j].
//
// The zero value is an empty matrix ready for Reset.
type ScoreMatrix struct {
	rows, cols int
	data       []int // len == rows*cols, cap only grows
}

// Reset reshapes the matrix to rows×cols. The backing storage is reused when
// it is large enough and reallocated otherwise; it never shrinks. Cell
// contents are unspecified after Reset, the builder overwrites every cell
// it reads.
// Complexity: O(1) amortized, O(rows·cols) when growing.
func (m *ScoreMatrix) Reset(rows, cols int) {
	size := rows * cols
	if cap(m.data) < size {
		m.data = make([]int, size)
	}
	m.data = m.data[:size]
	m.rows, m.cols = rows, cols
}

// Rows returns the number of rows of the current shape.
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the number of columns of the current shape.
func (m *ScoreMatrix) Cols() int { return m.cols }

// Cap returns the number of cells the backing storage holds without
// reallocating.
func (m *ScoreMatrix) Cap() int { return cap(m.data) }

// At returns cell (row, col) or ErrOutOfRange.
func (m *ScoreMatrix) At(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("ScoreMatrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.cols+col], nil
}

// at and set skip bounds checks beyond the slice's own; the builder and
// backtracker only touch cells inside the current shape.
func (m *ScoreMatrix) at(row, col int) int { return m.data[row*m.cols+col] }

func (m *ScoreMatrix) set(row, col, v int) { m.data[row*m.cols+col] = v }

// String renders the current shape one row per line, e.g. "[0, -1]\n[-1, 1]\n".
func (m *ScoreMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.at(i, j)))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// fits reports whether a rows×cols matrix stays within limit cells without
// computing the product. cols must be positive.
func fits(rows, cols, limit int) bool {
	return rows <= limit/cols
}
