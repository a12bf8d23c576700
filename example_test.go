package decomp_test

import (
	"fmt"

	decomp "github.com/katalvlaran/convdecomp"
)

////////////////////////////////////////////////////////////////////////////////
// Example: convex polygon
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Decompose_convex demonstrates decomposing a polygon that is
// already convex: Decompose returns the whole ring as a single piece, in
// boundary order starting from vertex 0.
func ExampleEngine_Decompose_convex() {
	square := []decomp.Vertex{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
	}

	e, err := decomp.NewEngine(square, decomp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pieces, err := e.Decompose()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("pieces:", len(pieces))
	fmt.Println(pieces[0])

	// Output:
	// pieces: 1
	// [0 1 2 3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: reflex polygon
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Decompose_reflex demonstrates an L-shaped polygon with one
// reflex vertex (id 3). Decompose splits it along one diagonal into two
// convex pieces; the exact split is an implementation detail, so this
// example only prints whether every vertex is covered by some piece.
func ExampleEngine_Decompose_reflex() {
	lShape := []decomp.Vertex{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 2, Y: 0},
		{ID: 2, X: 2, Y: 1},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 1, Y: 2},
		{ID: 5, X: 0, Y: 2},
	}

	e, err := decomp.NewEngine(lShape, decomp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pieces, err := e.Decompose()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seen := make(map[int]bool)
	for _, p := range pieces {
		for _, id := range p {
			seen[id] = true
		}
	}

	fmt.Println("every vertex covered:", len(seen) == len(lShape))
	// Output:
	// every vertex covered: true
}
