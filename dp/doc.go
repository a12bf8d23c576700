// Package dp is the dynamic-programming driver: it fills
// subproblem.Store by increasing chain length via the Forw/Backw
// relaxations, using pairs.Catalog to restrict candidate splits to
// chords the visibility oracle actually confirmed.
//
// Algorithm & complexity:
//
//	For each chain length l = 3..N-1:
//	  Forward pass:  for reflex i with (i, i+l) cataloged, relax every
//	                 split j in (i, i+l) (or only reflex j plus k-1 when
//	                 the far endpoint is convex).
//	  Backward pass: mirror, for reflex k with (k-l, k) cataloged.
//
//	Time:   O(N^3) — O(N) chain lengths x O(N) endpoints x O(N) splits.
//	Memory: O(N^2) subproblems in the worst case, each holding O(N) junctions.
//
// Forw and Backw are each a small relaxation with an early-return guard
// clause when the required catalog chord is missing, one function per
// branch rather than one large combined routine.
package dp
