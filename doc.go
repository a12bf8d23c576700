// Package decomp splits a simple, counter-clockwise polygon into a
// near-minimal set of convex pieces.
//
// 🚀 What is convdecomp?
//
//	A pure-Go convex decomposition engine that brings together:
//
//	  • geom        — signed area, 2D normal, the asymmetric reflex predicate
//	  • preprocess  — collinear/duplicate-vertex simplification & restoration
//	  • visibility  — visibility polygon from a reflex vertex
//	  • pairs       — the catalog of candidate interior chords
//	  • subproblem  — the (i,k)-keyed DP state store (SubP, AddPair, RestoreS)
//	  • dp          — the forward/backward DP driver
//	  • recover     — post-DP junction-sequence reconciliation
//	  • collect     — diagonal extraction from the recovered subproblems
//	  • assemble    — the stack-based piece assembler
//
// ✨ Why choose convdecomp?
//
//   - Deterministic — no randomness, stable tie-breaks (see dp and assemble)
//   - Near-minimal  — minimizes diagonal count via dynamic programming
//   - Pure Go       — the one third-party runtime dependency is
//     gonum.org/v1/gonum/spatial/r2, used for 2D vector arithmetic
//     (the tests also use github.com/stretchr/testify)
//
// Under the hood, everything is organized under one subpackage per concern
// (see the list above); the top-level decomp package is the public façade:
//
//	eng, err := decomp.NewEngine(poly, decomp.DefaultOptions())
//	pieces, err := eng.Decompose()
//
// See DESIGN.md for the full design rationale.
package decomp
