// Package visibility implements the visibility-polygon oracle
// treats as an external collaborator: GetVisPoly(poly, vertex_index)
// returns the vertices of poly visible from poly[vertex_index].
//
// What:
//
//   - GetVisPoly walks the remaining vertices of a simple polygon and
//     keeps those reachable from the query vertex by a chord that neither
//     crosses a polygon edge nor exits the polygon.
//
// Why:
//
//   - The DP driver (package dp) only ever needs the catalog of
//     real-vertex-to-real-vertex visibility pairs (package pairs); this
//     package never synthesizes steiner points, but keeps the NoUse
//     sentinel in VisiblePoint so a future, sharper oracle (e.g. a rotational
//     sweep emitting boundary-crossing points) can be swapped in without an
//     API break.
//
// Complexity:
//
//   - GetVisPoly: O(N^2) per query vertex (segment-intersection test
//     against every other edge, for every candidate); O(N^3) total when
//     called once per reflex vertex — the same order as the DP fill itself.
package visibility
