package visibility

import (
	"github.com/katalvlaran/convdecomp/geom"
)

// NoUse is the sentinel id for a synthesized (non-original-vertex) point in
// a VisiblePoint sequence. This oracle never emits one today, but the tag
// is part of GetVisPoly's contract.
const NoUse = -1

// VisiblePoint is one element of a visibility-polygon result: either a
// real polygon vertex (ID = its index into poly) or a synthesized point
// (ID == NoUse).
type VisiblePoint struct {
	ID int
	P  geom.Vertex
}

// GetVisPoly returns the visibility polygon from poly[from]: a sequence
// whose element 0 is poly[from] itself (ID == from) and whose remaining
// elements are the other vertices of poly visible from it, in increasing
// index order.
//
// A vertex j is considered visible from i when:
//  1. the chord i-j neither crosses nor touches any polygon edge that
//     does not already share an endpoint with it, and
//  2. the chord's midpoint lies strictly inside the polygon.
//
// This is sufficient for a simple, non-self-intersecting, hole-free
// polygon: every interior chord between two vertices that satisfies both
// conditions lies entirely inside the polygon.
//
// Complexity: O(N^2).
func GetVisPoly(poly []geom.Vertex, from int) []VisiblePoint {
	n := len(poly)
	out := make([]VisiblePoint, 0, n)
	out = append(out, VisiblePoint{ID: from, P: poly[from]})

	for j := 0; j < n; j++ {
		if j == from {
			continue
		}
		if visibleFrom(poly, from, j) {
			out = append(out, VisiblePoint{ID: j, P: poly[j]})
		}
	}

	return out
}

// visibleFrom reports whether poly[j] is visible from poly[i].
func visibleFrom(poly []geom.Vertex, i, j int) bool {
	n := len(poly)
	if j == (i+1)%n || i == (j+1)%n {
		return true // adjacent vertices are always joined by a polygon edge
	}

	a, b := poly[i].P, poly[j].P

	for e := 0; e < n; e++ {
		e2 := (e + 1) % n
		if e == i || e == j || e2 == i || e2 == j {
			continue // shares an endpoint with the candidate chord
		}
		if geom.SegmentsIntersect(a, b, poly[e].P, poly[e2].P) {
			return false
		}
	}

	mid := a.Add(b).Scale(0.5)

	return geom.PointInPolygon(poly, mid)
}
