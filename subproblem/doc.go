// Package subproblem holds the DP state store, SubP: for
// every candidate interval (i, k), the minimum diagonal count w and the
// junction sequence S describing how each boundary reflex vertex of that
// sub-polygon currently pairs with an interior vertex.
//
// What:
//
//   - SubP{W, S, SHead, STail} holds one subproblem's weight and junction chain.
//   - Store wraps map[Key]*SubP keyed by interval, never by pointer
//     identity, so subproblems can freely reference each other by key
//     without an ownership cycle.
//   - AddPair implements the exact promotion/domination rule, including
//     the deliberate S_head/S_tail clearing asymmetry that must be
//     reproduced verbatim for correctness.
//   - RestoreS implements the recovery-pass splice.
//
// The S/SHead/STail slices are plain, ordered []Pair used as deques via
// explicit front/back helpers, favoring index arithmetic over container
// abstractions.
// Package dp manipulates a SubP's S/SHead/STail fields directly during
// the peel-and-test steps of Forw/Backw; Store.AddPair and the RestoreS
// function are the only operations that mutate them on the
// "official" accept/restore path.
package subproblem
