package geom

import "gonum.org/v1/gonum/spatial/r2"

// SignedArea computes the shoelace sum of poly, positive for a
// counter-clockwise ring.
//
// Complexity: O(N).
func SignedArea(poly []Vertex) float64 {
	var area float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].P.Cross(poly[j].P)
	}

	return area / 2
}

// ScaleGuard returns poly unchanged unless 0 < |SignedArea(poly)| < 10, in
// which case it returns a rescaled copy whose coordinates are multiplied
// by 10/|area| (so the copy's area is 100/|area|). This keeps IsRefl's absolute ReflTolerance meaningful for
// very small polygons without having to switch to a relative tolerance.
//
// Complexity: O(N).
func ScaleGuard(poly []Vertex) []Vertex {
	area := SignedArea(poly)
	abs := area
	if abs < 0 {
		abs = -abs
	}
	if abs >= 10 || abs == 0 {
		return poly
	}

	f := 10 / abs
	out := make([]Vertex, len(poly))
	for i, v := range poly {
		out[i] = Vertex{ID: v.ID, OrigID: v.OrigID, P: v.P.Scale(f), Refl: v.Refl}
	}

	return out
}

// IsRefl reports whether the interior angle at b, bounded by neighbors a
// and c, exceeds π. b and c play asymmetric roles: the unit normal is
// computed from the b→c segment and the signed distance is measured from
// a. Implementations MUST preserve this argument order at every call
// site — swapping b and c (or a and c) changes the answer.
//
// Complexity: O(1).
func IsRefl(a, b, c Vertex) bool {
	if IsNear(b, c) {
		return true
	}

	n := r2.Vec{X: b.P.Y - c.P.Y, Y: c.P.X - b.P.X}
	n = r2.Unit(n)
	d := n.Dot(a.P.Sub(b.P))

	return d > ReflTolerance
}

// IsNear reports whether a and b occupy (near-)coincident positions,
// within NearTolerance on each coordinate.
//
// Complexity: O(1).
func IsNear(a, b Vertex) bool {
	dx := a.P.X - b.P.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.P.Y - b.P.Y
	if dy < 0 {
		dy = -dy
	}

	return dx <= NearTolerance && dy <= NearTolerance
}
