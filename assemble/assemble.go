package assemble

import (
	"sort"

	"github.com/katalvlaran/convdecomp/collect"
)

// Pieces walks the N-vertex ring once against the sorted diagonal list
// and returns each convex piece as a slice of vertex indices (into the
// rotated vertex sequence the DP ran over).
//
// diags need not be pre-sorted; Pieces sorts its own copy by (F asc, G
// desc) before walking.
func Pieces(n int, diags []collect.Diagonal) [][]int {
	sorted := make([]collect.Diagonal, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].F != sorted[b].F {
			return sorted[a].F < sorted[b].F
		}
		return sorted[a].G > sorted[b].G
	})

	res := [][]int{{}}
	var rs, ps []int // rs: open-diagonal indices (into sorted); ps: the piece each opener interrupted
	p, q, i := 0, 0, 0

	for i < n {
		dec := res[p]
		if len(dec) == 0 || dec[len(dec)-1] != i {
			dec = append(dec, i)
			res[p] = dec
		}

		switch {
		case len(rs) > 0 && i == sorted[rs[len(rs)-1]].G:
			top := sorted[rs[len(rs)-1]]
			dec = res[p]
			if dec[0] != top.F {
				dec = append(dec, top.F)
				res[p] = dec
			}
			rs = rs[:len(rs)-1]
			p = ps[len(ps)-1]
			ps = ps[:len(ps)-1]

		case q < len(sorted) && i == sorted[q].F:
			dec = res[p]
			if dec[0] != sorted[q].G {
				dec = append(dec, sorted[q].G)
				res[p] = dec
			}
			res = append(res, []int{})
			rs = append(rs, q)
			ps = append(ps, p)
			q++
			p = q

		default:
			i++
		}
	}

	return res
}
