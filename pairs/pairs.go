package pairs

import (
	"github.com/katalvlaran/convdecomp/geom"
	"github.com/katalvlaran/convdecomp/visibility"
)

// Key is an unordered pair (min, max) of vertex indices naming a
// candidate interior chord.
type Key struct {
	Min, Max int
}

// Catalog is the set of candidate interior chords, built once from the
// visibility oracle and consulted read-only by the DP driver.
type Catalog map[Key]struct{}

// Has reports whether (i, k) (in either order) is a catalog chord.
func (c Catalog) Has(i, k int) bool {
	if i > k {
		i, k = k, i
	}
	_, ok := c[Key{Min: i, Max: k}]

	return ok
}

// insert adds the unordered pair (i, j) to the catalog.
func (c Catalog) insert(i, j int) {
	if i == j {
		return
	}
	if i > j {
		i, j = j, i
	}
	c[Key{Min: i, Max: j}] = struct{}{}
}

// Build constructs the catalog from verts: for every reflex vertex i, it
// queries the visibility oracle and inserts (min(i,j), max(i,j)) for
// every real visible vertex j != i. Synthesized (NO_USE) points are
// skipped.
//
// Complexity: O(N) visibility queries, each O(N^2) — see package
// visibility — so O(N^3) overall, matching the DP driver's own order.
func Build(verts []geom.Vertex) Catalog {
	cat := make(Catalog)
	for i, v := range verts {
		if !v.Refl {
			continue
		}
		vp := visibility.GetVisPoly(verts, i)
		for _, hit := range vp[1:] {
			if hit.ID == visibility.NoUse {
				continue
			}
			cat.insert(i, hit.ID)
		}
	}

	return cat
}
