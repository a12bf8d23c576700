// Package assemble implements the piece assembler: given the final sorted
// diagonal list, walk the polygon's vertex ring once and emit the
// convex pieces the diagonals cut it into.
//
// Sort order is (F ascending, G descending); the G-descending tie-break
// makes nested diagonals open outer-first and close inner-first, which
// keeps the open-diagonal stack well-formed during the single O(N) ring
// walk. A stable sort is not required, so sort.Slice's default
// instability is used rather than sort.SliceStable.
package assemble
