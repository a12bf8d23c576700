package decomp

import (
	"github.com/katalvlaran/convdecomp/assemble"
	"github.com/katalvlaran/convdecomp/collect"
	"github.com/katalvlaran/convdecomp/dp"
	"github.com/katalvlaran/convdecomp/geom"
	"github.com/katalvlaran/convdecomp/pairs"
	"github.com/katalvlaran/convdecomp/preprocess"
	recoverpkg "github.com/katalvlaran/convdecomp/recover"
)

// Engine holds the state of one decomposition run: the simplified,
// rotated working polygon plus enough bookkeeping to remap DP results
// back to the caller's original vertex ids. Construct one per input
// polygon; Decompose may only be called once.
type Engine struct {
	simplified []geom.Vertex       // preprocessed, pre-rotation; OrigID is caller-visible
	saved      preprocess.SavedPoints
	rotated    []geom.Vertex       // simplified, rotated so a reflex vertex (if any) sits at 0
	offset     int                 // simplified-position of rotated[0]
	hasReflex  bool
	done       bool
}

// NewEngine validates poly's preconditions, runs the
// simplification pass, and rotates a reflex vertex (if one exists) to
// index 0 in preparation for the DP.
func NewEngine(poly []Vertex, opts Options) (*Engine, error) {
	verts, err := validate(poly)
	if err != nil {
		return nil, err
	}

	simplified, saved := preprocess.Simplify(verts, opts.SimplifyOpts)
	scaled := geom.ScaleGuard(simplified)

	n := len(scaled)
	for i := range scaled {
		prev := scaled[(i-1+n)%n]
		next := scaled[(i+1)%n]
		// next, cur, prev — not prev, cur, next: IsRefl's b/c roles are
		// asymmetric, and this is the order that reports true for an
		// actual reflex corner of a counter-clockwise ring.
		scaled[i].Refl = geom.IsRefl(next, scaled[i], prev)
	}

	rIdx := -1
	for i, v := range scaled {
		if v.Refl {
			rIdx = i
			break
		}
	}

	if rIdx < 0 {
		return &Engine{simplified: simplified, saved: saved, hasReflex: false}, nil
	}

	rotated := make([]geom.Vertex, n)
	for i := range rotated {
		rotated[i] = scaled[(rIdx+i)%n]
	}

	return &Engine{
		simplified: simplified,
		saved:      saved,
		rotated:    rotated,
		offset:     rIdx,
		hasReflex:  true,
	}, nil
}

// Decompose runs the DP, recovery, and collection passes (unless the
// polygon had no reflex vertex, in which case it short-circuits per
// no reflex vertex exists) and returns one id-list per convex piece, in no guaranteed
// order. Ids are the caller's original vertex ids.
func (e *Engine) Decompose() ([][]int, error) {
	if e.done {
		return nil, ErrAlreadyDecomposed
	}
	e.done = true

	if !e.hasReflex {
		piece := make([]int, len(e.simplified))
		for i := range piece {
			piece[i] = i
		}

		return [][]int{preprocess.SimpleRestore(piece, e.saved, e.simplified)}, nil
	}

	n := len(e.rotated)
	cat := pairs.Build(e.rotated)

	store, err := dp.Run(e.rotated, cat)
	if err != nil {
		return nil, err
	}

	if err := recoverpkg.Recover(store, e.rotated, 0, n-1); err != nil {
		return nil, err
	}

	diags, err := collect.Collect(store, e.rotated, 0, n-1)
	if err != nil {
		return nil, err
	}

	rawPieces := assemble.Pieces(n, diags)

	out := make([][]int, len(rawPieces))
	for pi, raw := range rawPieces {
		mapped := make([]int, len(raw))
		for j, rp := range raw {
			mapped[j] = (e.offset + rp) % n
		}
		out[pi] = preprocess.SimpleRestore(mapped, e.saved, e.simplified)
	}

	return out, nil
}
