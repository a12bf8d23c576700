package decomp

import (
	"errors"

	"github.com/katalvlaran/convdecomp/subproblem"
)

// Precondition-violation sentinels: returned by NewEngine
// before any DP work starts.
var (
	// ErrTooFewVertices is returned when the input polygon has fewer
	// than 3 vertices.
	ErrTooFewVertices = errors.New("decomp: polygon has fewer than 3 vertices")

	// ErrBadVertexID is returned when the input vertex ids are not
	// 0..N-1, strictly increasing by position.
	ErrBadVertexID = errors.New("decomp: vertex ids must be 0..N-1 in order")

	// ErrNotCCW is returned when the input polygon's signed area is
	// negative (clockwise). A zero area gets ErrDegenerateArea instead.
	ErrNotCCW = errors.New("decomp: polygon is not counter-clockwise")

	// ErrDegenerateArea is returned when the input polygon's signed
	// area is exactly zero: no orientation to preprocess or decompose.
	ErrDegenerateArea = errors.New("decomp: polygon has zero area")
)

// ErrInfeasible re-exports subproblem.ErrInfeasible (the
// "infeasible subproblem" error kind) so callers never need to import
// package subproblem just to compare errors.Is.
var ErrInfeasible = subproblem.ErrInfeasible

// ErrAlreadyDecomposed is returned by a second call to
// (*Engine).Decompose on the same Engine: an Engine is single-use.
var ErrAlreadyDecomposed = errors.New("decomp: Decompose already called on this Engine")
