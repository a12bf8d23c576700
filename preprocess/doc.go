// Package preprocess implements the polygon-simplification collaborator
// the decomposition engine treats as a separate concern: Simplify removes collinear or
// near-duplicate vertices and records a restoration mapping; SimpleRestore
// reinserts them into a decomposed piece.
//
// What:
//
//   - Simplify walks a vertex ring, drops vertices that are either
//     near-coincident with a neighbor or collinear with their neighbors
//     within a cross-product tolerance, and renumbers the survivors to a
//     contiguous 0..M-1 index space.
//   - SavedPoints records, for each surviving edge, the removed vertices
//     that used to sit on it, in boundary order.
//   - SimpleRestore expands a decomposed piece (a list of simplified-ring
//     indices) back into original caller ids, reinserting any removed
//     vertices whose edge is still present in the piece's boundary.
//
// Why:
//
//   - The DP driver's correctness depends on catalog pairs referring to
//     "real" interior chords; collinear/duplicate vertices only add noise
//     to the reflex/visibility computation without changing the polygon's
//     shape, so removing them first shrinks N and keeps ScaleGuard and
//     IsRefl well-conditioned (see package geom).
//
// Errors:
//
//   - None: Simplify/SimpleRestore operate on already-validated polygons
//     (precondition checks live in the decomp package's NewEngine).
//
// Complexity:
//
//   - Simplify: O(N^2) worst case. SimpleRestore: O(len(piece) + removed).
package preprocess
