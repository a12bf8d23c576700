package geom

import "gonum.org/v1/gonum/spatial/r2"

// orient returns the sign of the cross product (b-a) x (c-a): positive if
// a,b,c turn left (CCW), negative if right (CW), zero if collinear.
func orient(a, b, c r2.Vec) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the closed bounding box of segment a-b.
func onSegment(a, b, p r2.Vec) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	return p.X >= minX-NearTolerance && p.X <= maxX+NearTolerance &&
		p.Y >= minY-NearTolerance && p.Y <= maxY+NearTolerance
}

// SegmentsIntersect reports whether closed segments a1-a2 and b1-b2 meet:
// a proper crossing, or an endpoint of one lying on the other (which
// includes collinear overlap). A shared endpoint counts as meeting, so
// callers are expected to exclude edges that share an endpoint with the
// segment under test before calling this.
//
// Complexity: O(1).
func SegmentsIntersect(a1, a2, b1, b2 r2.Vec) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}

	return false
}

// PointInPolygon reports whether p lies strictly inside the CCW ring poly,
// using a standard even-odd ray-casting test.
//
// Complexity: O(N).
func PointInPolygon(poly []Vertex, p r2.Vec) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i].P, poly[j].P
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xIntersect := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}

	return inside
}
