package dp

import (
	"fmt"

	"github.com/katalvlaran/convdecomp/geom"
	"github.com/katalvlaran/convdecomp/pairs"
	"github.com/katalvlaran/convdecomp/subproblem"
)

// Run seeds the base-case wedges and fills store by
// increasing chain length. verts must already be
// rotated so that a reflex vertex (if any) sits at index 0.
//
// If no vertex is reflex, the returned store is empty and the caller
// should short-circuit: the whole input polygon is already convex
// (no reflex vertex means the polygon is already convex).
//
// Complexity: O(N^3).
func Run(verts []geom.Vertex, cat pairs.Catalog) (*subproblem.Store, error) {
	store := subproblem.NewStore()
	seed(store, verts)

	if store.Len() == 0 {
		return store, nil
	}

	n := len(verts)
	for l := 3; l < n; l++ {
		for i := 0; i+l < n; i++ {
			if !verts[i].Refl {
				continue
			}
			k := i + l
			if !cat.Has(i, k) {
				continue
			}
			if verts[k].Refl {
				for j := i + 1; j < k; j++ {
					if err := forw(verts, cat, store, i, j, k); err != nil {
						return nil, err
					}
				}
			} else {
				for j := i + 1; j < k-1; j++ {
					if verts[j].Refl {
						if err := forw(verts, cat, store, i, j, k); err != nil {
							return nil, err
						}
					}
				}
				if err := forw(verts, cat, store, i, k-1, k); err != nil {
					return nil, err
				}
			}
		}

		for k := l; k < n; k++ {
			if !verts[k].Refl {
				continue
			}
			i := k - l
			if !cat.Has(i, k) {
				continue
			}
			if verts[i].Refl {
				continue // handled by the forward pass
			}
			if err := backw(verts, cat, store, i, i+1, k); err != nil {
				return nil, err
			}
			for j := i + 2; j < k; j++ {
				if verts[j].Refl {
					if err := backw(verts, cat, store, i, j, k); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return store, nil
}

// seed installs the base-case wedges: for each reflex
// vertex i and offset in {-2,-1,+1,+2}, an edge (w=0, S empty) or a
// wedge (w=0, S=[{a+1,a+1}]) at the ordered interval (min,max).
func seed(store *subproblem.Store, verts []geom.Vertex) {
	n := len(verts)
	for i, v := range verts {
		if !v.Refl {
			continue
		}
		for _, delta := range [4]int{-2, -1, 1, 2} {
			k := i + delta
			if k <= 0 || k >= n {
				continue
			}
			a, b := i, k
			if a > b {
				a, b = b, a
			}
			if store.Has(a, b) {
				continue
			}

			s := subproblem.SubP{W: 0}
			if b-a == 2 {
				c := a + 1
				s.S = []subproblem.Pair{{F: c, G: c}}
			}
			store.Seed(a, b, s)
		}
	}
}

// forw is Forw(i,j,k): relax subs[(i,k)] by considering
// the split at j. Each IsRefl call here leads with the far endpoint (k
// or, while walking S, the candidate junction) rather than j: the same
// leading-argument swap engine.go applies when computing a vertex's own
// Refl flag, and for the same reason (it is the order that reports the
// correct corner polarity for this ring's winding).
func forw(verts []geom.Vertex, cat pairs.Catalog, store *subproblem.Store, i, j, k int) error {
	if !cat.Has(i, j) {
		return nil
	}

	a := j
	sp := store.Get(i, j)
	w := sp.W

	if k-j > 1 {
		if !cat.Has(j, k) {
			return nil
		}
		w += store.Get(j, k).W + 1
	}

	if j-i > 1 {
		if len(sp.S) == 0 {
			return fmt.Errorf("dp: forw(%d,%d,%d): %w", i, j, k, subproblem.ErrInfeasible)
		}

		if !geom.IsRefl(verts[k], verts[j], verts[sp.Back().G]) {
			for len(sp.S) > 1 && !geom.IsRefl(verts[k], verts[j], verts[sp.S[len(sp.S)-2].G]) {
				sp.STail = append(sp.STail, sp.PopBack())
			}
			if len(sp.S) > 0 && !geom.IsRefl(verts[sp.Back().F], verts[i], verts[k]) {
				a = sp.Back().F
			} else {
				w++
			}
		} else {
			w++
		}
	}

	store.AddPair(i, k, subproblem.Pair{F: a, G: j}, w)

	return nil
}

// backw is Backw(i,j,k): the mirror of forw, operating on
// S.Front()/SHead. Its IsRefl calls apply the same leading-argument
// swap forw's do.
func backw(verts []geom.Vertex, cat pairs.Catalog, store *subproblem.Store, i, j, k int) error {
	if !cat.Has(j, k) {
		return nil
	}

	a := j
	sp := store.Get(j, k)
	w := sp.W

	if j-i > 1 {
		if !cat.Has(i, j) {
			return nil
		}
		w += store.Get(i, j).W + 1
	}

	if k-j > 1 {
		if len(sp.S) == 0 {
			return fmt.Errorf("dp: backw(%d,%d,%d): %w", i, j, k, subproblem.ErrInfeasible)
		}

		if !geom.IsRefl(verts[sp.Front().F], verts[j], verts[i]) {
			for len(sp.S) > 1 && !geom.IsRefl(verts[sp.S[1].F], verts[j], verts[i]) {
				sp.SHead = append(sp.SHead, sp.PopFront())
			}
			if len(sp.S) > 0 && !geom.IsRefl(verts[i], verts[k], verts[sp.Front().G]) {
				a = sp.Front().G
			} else {
				w++
			}
		} else {
			w++
		}
	}

	store.AddPair(i, k, subproblem.Pair{F: j, G: a}, w)

	return nil
}
