package subproblem

import "errors"

// ErrInfeasible is returned when a subproblem's S is unexpectedly empty
// where the DP, recovery, or collection pass requires it to be
// populated. This indicates a bug, a non-simple input, or
// a visibility-oracle inconsistency; it is never recovered internally.
var ErrInfeasible = errors.New("subproblem: S is empty")

// Pair is a junction pair: an ordered tuple (F, G) whose meaning depends
// on which end of a SubP's S it occupies. F is the
// child-side junction, G is this level's junction; F == G signals a
// freshly introduced junction with no child obligation.
type Pair struct {
	F, G int
}

// Key identifies a subproblem by its ordered interval endpoints.
type Key struct {
	I, K int
}

// SubP is the DP state for interval (I, K): the minimum diagonal count W
// and the junction sequence S, plus the SHead/STail save-stashes the
// recovery pass (package recover) and the DP driver (package dp) use to
// undo speculative peeling.
type SubP struct {
	W     int
	S     []Pair
	SHead []Pair
	STail []Pair
}

// Front returns the first element of S. Callers must ensure S is
// non-empty.
func (s *SubP) Front() Pair { return s.S[0] }

// Back returns the last element of S. Callers must ensure S is
// non-empty.
func (s *SubP) Back() Pair { return s.S[len(s.S)-1] }

// PopBack removes and returns the last element of S.
func (s *SubP) PopBack() Pair {
	p := s.S[len(s.S)-1]
	s.S = s.S[:len(s.S)-1]

	return p
}

// PopFront removes and returns the first element of S.
func (s *SubP) PopFront() Pair {
	p := s.S[0]
	s.S = s.S[1:]

	return p
}
