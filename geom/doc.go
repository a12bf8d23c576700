// Package geom provides the small set of geometric primitives the convex
// decomposition engine is built on: signed area, the scale guard, and the
// asymmetric reflex predicate.
//
// What:
//
//   - Vertex wraps a 2D point (gonum.org/v1/gonum/spatial/r2.Vec) with its
//     original index and a reflex flag.
//   - SignedArea computes the shoelace sum of a vertex ring.
//   - ScaleGuard rescales a tiny polygon so the reflex predicate's absolute
//     tolerance stays meaningful.
//   - IsRefl decides whether the interior angle at a vertex exceeds π, with
//     a fixed, asymmetric 3-argument signature — argument order matters.
//   - IsNear is the coordinate-wise near-equality test shared with the
//     preprocess package's notion of "duplicate".
//
// Why:
//
//   - Every other package in this module uses Vertex, and preprocess
//     (IsNear), visibility (SegmentsIntersect, PointInPolygon), dp (IsRefl)
//     and the decomp façade (SignedArea, ScaleGuard, IsRefl) call its
//     predicates; keeping them in one small, dependency-light package
//     avoids import cycles and keeps the tolerance values in a single place.
//
// Complexity:
//
//   - SignedArea: O(N). ScaleGuard: O(N). IsRefl / IsNear: O(1).
package geom
