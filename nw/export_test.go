package nw

// Matrix exposes the scratch matrix to external tests.
func (al *Aligner[A, B]) Matrix() *ScoreMatrix { return &al.matrix }

// Fits exposes the cell-limit check.
var Fits = fits
