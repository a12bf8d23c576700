package collect

import (
	"fmt"

	"github.com/katalvlaran/convdecomp/geom"
	"github.com/katalvlaran/convdecomp/subproblem"
)

// Diagonal is a chosen interior chord, named by its endpoint indices
// into the rotated vertex sequence.
type Diagonal struct {
	F, G int
}

// Collect walks subs starting at (i, k) and returns the flat diagonal
// list. Call it as Collect(store, verts, 0, N-1) after
// package recover has reconciled the optimal path.
//
// Complexity: O(N) subproblems visited.
func Collect(store *subproblem.Store, verts []geom.Vertex, i, k int) ([]Diagonal, error) {
	var out []Diagonal
	if err := collect(store, verts, i, k, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func collect(store *subproblem.Store, verts []geom.Vertex, i, k int, out *[]Diagonal) error {
	if k-i < 2 {
		return nil
	}

	s := store.Get(i, k)
	if len(s.S) == 0 {
		return fmt.Errorf("collect: (%d,%d): %w", i, k, subproblem.ErrInfeasible)
	}

	var j int
	var a, b bool
	if verts[i].Refl {
		back := s.Back()
		j = back.G
		a = j == back.F
		b = true
	} else {
		front := s.Front()
		j = front.F
		b = j == front.G
		a = true
	}

	if a && j-i > 1 {
		*out = append(*out, Diagonal{F: i, G: j})
	}
	if b && k-j > 1 {
		*out = append(*out, Diagonal{F: j, G: k})
	}

	if err := collect(store, verts, i, j, out); err != nil {
		return err
	}

	return collect(store, verts, j, k, out)
}
