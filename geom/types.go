package geom

import "gonum.org/v1/gonum/spatial/r2"

// ReflTolerance is the absolute tolerance IsRefl applies to the signed
// projected distance. It is an absolute, not relative, tolerance by design:
// the caller is expected to have run ScaleGuard first so that tiny polygons
// do not fall entirely inside it.
const ReflTolerance = 1e-3

// NearTolerance is the coordinate-wise tolerance IsNear uses to decide that
// two vertices occupy (near-)coincident positions. It matches the default
// simplification tolerance in package preprocess so the two notions of
// "duplicate" stay consistent without the packages importing each other.
const NearTolerance = 1e-9

// Vertex is a single polygon vertex after preprocessing.
//
// ID is the vertex's position in the preprocessed input, before any
// rotation that places a reflex vertex at index 0; it is used to remap
// results back to caller-visible indices. Refl is set once, before the DP
// runs, and is immutable thereafter. OrigID is the caller's id for this
// vertex: it is set from the input when the polygon is validated and is
// carried unchanged through Simplify, which renumbers only ID.
type Vertex struct {
	ID     int
	OrigID int
	P      r2.Vec
	Refl   bool
}

// X returns the vertex's x coordinate.
func (v Vertex) X() float64 { return v.P.X }

// Y returns the vertex's y coordinate.
func (v Vertex) Y() float64 { return v.P.Y }
