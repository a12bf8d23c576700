package recover

import (
	"fmt"

	"github.com/katalvlaran/convdecomp/geom"
	"github.com/katalvlaran/convdecomp/subproblem"
)

// Recover reconciles subs[(i,k)]'s descendants with the choice sA made,
// Call it as Recover(store, verts, 0, N-1).
//
// Complexity: O(N) subproblems visited, each O(N) worst-case splice/pop.
func Recover(store *subproblem.Store, verts []geom.Vertex, i, k int) error {
	if k-i < 2 {
		return nil
	}

	sA := store.Get(i, k)
	if len(sA.S) == 0 {
		return fmt.Errorf("recover: (%d,%d): %w", i, k, subproblem.ErrInfeasible)
	}

	if verts[i].Refl {
		back := sA.Back()
		j := back.G

		if err := Recover(store, verts, j, k); err != nil {
			return err
		}

		if j-i > 1 && back.F != back.G {
			sB := store.Get(i, j)
			subproblem.RestoreS(sB)
			for len(sB.S) > 0 && back.F != sB.Back().F {
				sB.PopBack()
			}
		}

		return Recover(store, verts, i, j)
	}

	front := sA.Front()
	j := front.F

	if err := Recover(store, verts, i, j); err != nil {
		return err
	}

	if k-j > 1 && front.F != front.G {
		sB := store.Get(j, k)
		subproblem.RestoreS(sB)
		for len(sB.S) > 0 && front.G != sB.Front().G {
			sB.PopFront()
		}
	}

	return Recover(store, verts, j, k)
}
