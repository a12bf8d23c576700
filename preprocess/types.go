package preprocess

import "github.com/katalvlaran/convdecomp/geom"

// SimplifyOptions configures Simplify.
type SimplifyOptions struct {
	// Tolerance bounds the collinearity cross-product test (normalized by
	// edge length). The near-duplicate test is geom.IsNear, which always
	// uses geom.NearTolerance.
	Tolerance float64
}

// DefaultSimplifyOptions returns the conservative default: Tolerance
// matches geom.NearTolerance so "duplicate" means the same thing to both
// packages.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{Tolerance: geom.NearTolerance}
}

// edgeKey identifies a surviving ring edge by the new (simplified-ring)
// indices of its two endpoints, in forward boundary order.
type edgeKey struct {
	u, v int
}

// RemovedVertex is a vertex Simplify dropped from the ring, kept so
// SimpleRestore can reinsert it by original id.
type RemovedVertex struct {
	// OrigID is the caller-visible id this vertex had before simplification.
	OrigID int
	P      geom.Vertex
}

// SavedPoints maps a surviving edge (u, v), in forward boundary order, to
// the vertices Simplify removed from between u and v, also in forward
// boundary order.
type SavedPoints map[edgeKey][]RemovedVertex
