package recover_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/convdecomp/geom"
	recoverpkg "github.com/katalvlaran/convdecomp/recover"
	"github.com/katalvlaran/convdecomp/subproblem"
)

func vert(id int, refl bool) geom.Vertex {
	return geom.Vertex{ID: id, OrigID: id, Refl: refl}
}

// TestRecover_EmptyIntervalIsNoop covers the k-i<2 base case: nothing to
// reconcile for an edge or a single-vertex interval.
func TestRecover_EmptyIntervalIsNoop(t *testing.T) {
	store := subproblem.NewStore()
	verts := []geom.Vertex{vert(0, true), vert(1, false)}

	require.NoError(t, recoverpkg.Recover(store, verts, 0, 1))
	require.False(t, store.Has(0, 1))
}

// TestRecover_InfeasibleWhenSEmpty covers the infeasible-
// subproblem error kind: a touched interval whose S is empty.
func TestRecover_InfeasibleWhenSEmpty(t *testing.T) {
	store := subproblem.NewStore()
	verts := []geom.Vertex{vert(0, true), vert(1, false), vert(2, false)}
	store.Seed(0, 2, subproblem.SubP{W: 0}) // S left empty

	err := recoverpkg.Recover(store, verts, 0, 2)

	require.Error(t, err)
	require.True(t, errors.Is(err, subproblem.ErrInfeasible))
}

// TestRecover_ReflexBranchKeepsMatchingChild walks a small synthetic tree
// rooted at a reflex vertex and checks it terminates without error,
// exercising the back()/RestoreS path: the child (0,2) has no stashes and
// its back() already matches the parent's junction, so nothing is popped.
func TestRecover_ReflexBranchKeepsMatchingChild(t *testing.T) {
	store := subproblem.NewStore()
	verts := []geom.Vertex{
		vert(0, true), vert(1, false), vert(2, false), vert(3, false), vert(4, false),
	}

	store.Seed(0, 4, subproblem.SubP{W: 2, S: []subproblem.Pair{{F: 1, G: 2}}})
	store.Seed(0, 2, subproblem.SubP{W: 1, S: []subproblem.Pair{{F: 1, G: 1}}})
	store.Seed(2, 4, subproblem.SubP{W: 1, S: []subproblem.Pair{{F: 3, G: 3}}})

	err := recoverpkg.Recover(store, verts, 0, 4)

	require.NoError(t, err)
	require.Equal(t, []subproblem.Pair{{F: 1, G: 1}}, store.Get(0, 2).S)
}

// TestRecover_NonReflexBranchUsesFront mirrors the reflex case through
// the front()/SHead path for a non-reflex i.
func TestRecover_NonReflexBranchUsesFront(t *testing.T) {
	store := subproblem.NewStore()
	verts := []geom.Vertex{
		vert(0, false), vert(1, false), vert(2, false), vert(3, false), vert(4, true),
	}

	store.Seed(0, 4, subproblem.SubP{W: 2, S: []subproblem.Pair{{F: 2, G: 3}}})
	store.Seed(0, 2, subproblem.SubP{W: 1, S: []subproblem.Pair{{F: 1, G: 1}}})
	store.Seed(2, 4, subproblem.SubP{W: 1, S: []subproblem.Pair{{F: 3, G: 3}}})

	err := recoverpkg.Recover(store, verts, 0, 4)

	require.NoError(t, err)
	require.Equal(t, []subproblem.Pair{{F: 3, G: 3}}, store.Get(2, 4).S)
}
