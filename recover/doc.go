// Package recover implements the Recover pass: after the DP
// driver fills subproblem.Store, each subproblem's S may have been
// populated in the context of many different parent candidates. Recover
// walks the optimal path top-down and, for every child subproblem it
// actually uses, restores that child's SHead/STail stashes and trims its
// S back to the junction the parent committed to — so every subproblem
// on the optimal path ends up consistent with its parent's choice before
// package collect reads diagonals out of it.
package recover
