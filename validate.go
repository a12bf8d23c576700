package decomp

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/convdecomp/geom"
)

// validate checks the precondition-violation error kinds and, if
// the polygon passes, returns it translated into geom.Vertex form (OrigID
// and ID both set to the caller's id, Refl not yet computed).
func validate(poly []Vertex) ([]geom.Vertex, error) {
	if len(poly) < 3 {
		return nil, ErrTooFewVertices
	}

	out := make([]geom.Vertex, len(poly))
	for i, v := range poly {
		if v.ID != i {
			return nil, ErrBadVertexID
		}
		out[i] = geom.Vertex{ID: i, OrigID: v.ID, P: r2.Vec{X: v.X, Y: v.Y}}
	}

	area := geom.SignedArea(out)
	switch {
	case area == 0:
		return nil, ErrDegenerateArea
	case area < 0:
		return nil, ErrNotCCW
	}

	return out, nil
}
