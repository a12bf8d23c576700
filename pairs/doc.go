// Package pairs builds the catalog of candidate interior chords: for
// every reflex vertex, the visibility oracle's real-vertex hits become
// unordered (min,max) pairs. The catalog is the ONLY set of chords the
// DP driver will ever consider.
package pairs
