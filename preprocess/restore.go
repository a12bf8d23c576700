package preprocess

import "github.com/katalvlaran/convdecomp/geom"

// SimpleRestore expands piece — a list of indices into the simplified
// ring (as produced by Simplify) — into a list of original caller ids.
// Surviving indices are translated through simplified[i].OrigID; any
// vertices Simplify removed from between two consecutive piece entries
// are reinserted in their original boundary order.
//
// Complexity: O(len(piece) + total removed vertices on piece's edges).
func SimpleRestore(piece []int, saved SavedPoints, simplified []geom.Vertex) []int {
	out := make([]int, 0, len(piece))
	n := len(piece)
	for i := 0; i < n; i++ {
		u := piece[i]
		v := piece[(i+1)%n]

		out = append(out, simplified[u].OrigID)

		if extra, ok := saved[edgeKey{u: u, v: v}]; ok {
			for _, r := range extra {
				out = append(out, r.OrigID)
			}
		}
	}

	return out
}
