// Package collect implements Collect: it walks the
// recovered subproblem tree and emits the final diagonal list, using the
// a/b flags to suppress diagonals that were inherited unchanged from a
// child subproblem rather than freshly introduced at this level.
package collect
