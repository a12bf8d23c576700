package subproblem_test

import (
	"testing"

	"github.com/katalvlaran/convdecomp/subproblem"
	"github.com/stretchr/testify/require"
)

// TestAddPair_FirstCallAlwaysWins checks that touching a fresh interval
// always accepts its first candidate, regardless of weight.
func TestAddPair_FirstCallAlwaysWins(t *testing.T) {
	st := subproblem.NewStore()
	st.AddPair(0, 5, subproblem.Pair{F: 2, G: 2}, 3)

	s := st.Get(0, 5)
	require.Equal(t, 3, s.W)
	require.Equal(t, []subproblem.Pair{{F: 2, G: 2}}, s.S)
}

// TestAddPair_RejectsWorse ensures a strictly worse weight is rejected.
func TestAddPair_RejectsWorse(t *testing.T) {
	st := subproblem.NewStore()
	st.AddPair(0, 5, subproblem.Pair{F: 2, G: 2}, 1)
	st.AddPair(0, 5, subproblem.Pair{F: 3, G: 3}, 2)

	s := st.Get(0, 5)
	require.Equal(t, 1, s.W)
	require.Equal(t, []subproblem.Pair{{F: 2, G: 2}}, s.S)
}

// TestAddPair_StrictlyBetterDiscardsS checks that a strictly better
// weight clears S and STail before inserting the new pair.
func TestAddPair_StrictlyBetterDiscardsS(t *testing.T) {
	st := subproblem.NewStore()
	st.AddPair(0, 5, subproblem.Pair{F: 2, G: 2}, 3)
	s := st.Get(0, 5)
	s.STail = []subproblem.Pair{{F: 9, G: 9}}

	st.AddPair(0, 5, subproblem.Pair{F: 4, G: 4}, 1)
	s = st.Get(0, 5)
	require.Equal(t, 1, s.W)
	require.Equal(t, []subproblem.Pair{{F: 4, G: 4}}, s.S)
	require.Empty(t, s.STail)
}

// TestAddPair_EqualWeightDominationPop checks that an equal-weight pair
// pops dominated front entries before inserting.
func TestAddPair_EqualWeightDominationPop(t *testing.T) {
	st := subproblem.NewStore()
	st.AddPair(0, 10, subproblem.Pair{F: 3, G: 3}, 2)
	st.AddPair(0, 10, subproblem.Pair{F: 5, G: 7}, 2)

	s := st.Get(0, 10)
	// p.F (5) > S[0].F (3) and S[0].G (3) < p.G (7), so the old front
	// is NOT popped (domination requires S[0].G >= p.G); both remain,
	// new pair at the front.
	require.Equal(t, []subproblem.Pair{{F: 5, G: 7}, {F: 3, G: 3}}, s.S)

	st.AddPair(0, 10, subproblem.Pair{F: 6, G: 6}, 2)
	s = st.Get(0, 10)
	// Now p.F (6) > S[0].F (5) and S[0].G (7) >= p.G (6): front pops.
	require.Equal(t, []subproblem.Pair{{F: 6, G: 6}, {F: 3, G: 3}}, s.S)
}

// TestAddPair_ClearsSHeadUnconditionally verifies SHead is always wiped
// on acceptance, even when the weight is merely equal.
func TestAddPair_ClearsSHeadUnconditionally(t *testing.T) {
	st := subproblem.NewStore()
	st.AddPair(0, 5, subproblem.Pair{F: 2, G: 2}, 2)
	s := st.Get(0, 5)
	s.SHead = []subproblem.Pair{{F: 1, G: 1}}

	st.AddPair(0, 5, subproblem.Pair{F: 3, G: 3}, 2)
	s = st.Get(0, 5)
	require.Empty(t, s.SHead)
}

// TestRestoreS_SplicesHeadAndReversedTail checks the recovery-pass splice.
func TestRestoreS_SplicesHeadAndReversedTail(t *testing.T) {
	s := &subproblem.SubP{
		S:     []subproblem.Pair{{F: 5, G: 5}},
		SHead: []subproblem.Pair{{F: 1, G: 1}, {F: 2, G: 2}},
		STail: []subproblem.Pair{{F: 8, G: 8}, {F: 9, G: 9}},
	}
	subproblem.RestoreS(s)

	require.Equal(t, []subproblem.Pair{
		{F: 1, G: 1}, {F: 2, G: 2}, {F: 5, G: 5}, {F: 9, G: 9}, {F: 8, G: 8},
	}, s.S)
	require.Empty(t, s.SHead)
	require.Empty(t, s.STail)
}
