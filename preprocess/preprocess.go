package preprocess

import (
	"math"

	"github.com/katalvlaran/convdecomp/geom"
)

type pendingRemoval struct {
	v              RemovedVertex
	prevID, nextID int // OrigID of the surviving neighbors at removal time
}

// Simplify removes vertices of poly that are near-duplicates of a
// neighbor or collinear with their neighbors (within opts.Tolerance), and
// renumbers the survivors to a contiguous 0..M-1 index space. Each
// survivor's geom.Vertex.OrigID is preserved; its ID becomes its new
// position. Removed vertices are recorded in the returned SavedPoints,
// keyed by the surviving edge they used to sit on.
//
// Simplify never reduces a polygon below 3 vertices.
//
// Complexity: O(N^2) worst case (one O(N) scan per removal).
func Simplify(poly []geom.Vertex, opts SimplifyOptions) ([]geom.Vertex, SavedPoints) {
	cur := make([]geom.Vertex, len(poly))
	copy(cur, poly)
	for i := range cur {
		cur[i].OrigID = poly[i].OrigID
	}

	var removed []pendingRemoval

	for len(cur) > 3 {
		n := len(cur)
		victim := -1
		for i := 0; i < n; i++ {
			prev := cur[(i-1+n)%n]
			next := cur[(i+1)%n]
			if geom.IsNear(cur[i], next) || geom.IsNear(cur[i], prev) || isCollinear(prev, cur[i], next, opts.Tolerance) {
				victim = i
				break
			}
		}
		if victim < 0 {
			break
		}

		prev := cur[(victim-1+n)%n]
		next := cur[(victim+1)%n]
		removed = append(removed, pendingRemoval{
			v:      RemovedVertex{OrigID: cur[victim].OrigID, P: cur[victim]},
			prevID: prev.OrigID,
			nextID: next.OrigID,
		})
		cur = append(cur[:victim], cur[victim+1:]...)
	}

	origToNew := make(map[int]int, len(cur))
	for i := range cur {
		origToNew[cur[i].OrigID] = i
		cur[i].ID = i
	}

	byOrig := make(map[int]pendingRemoval, len(removed))
	for _, r := range removed {
		byOrig[r.v.OrigID] = r
	}

	saved := make(SavedPoints)
	for _, r := range removed {
		// A neighbor removed later is replaced by its own neighbor on the same side.
		prevID, nextID := r.prevID, r.nextID
		for p, gone := byOrig[prevID]; gone; p, gone = byOrig[prevID] {
			prevID = p.prevID
		}
		for q, gone := byOrig[nextID]; gone; q, gone = byOrig[nextID] {
			nextID = q.nextID
		}
		key := edgeKey{u: origToNew[prevID], v: origToNew[nextID]}
		saved[key] = append(saved[key], r.v)
	}

	return cur, saved
}

// isCollinear reports whether b lies (within tol, measured as the sine of
// the angle at b) on the straight line through a and c.
func isCollinear(a, b, c geom.Vertex, tol float64) bool {
	e1 := b.P.Sub(a.P)
	e2 := c.P.Sub(b.P)
	len1 := math.Hypot(e1.X, e1.Y)
	len2 := math.Hypot(e2.X, e2.Y)
	if len1 == 0 || len2 == 0 {
		return true
	}

	sin := math.Abs(e1.Cross(e2)) / (len1 * len2)

	return sin <= tol
}
