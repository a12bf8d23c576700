package decomp

import "github.com/katalvlaran/convdecomp/preprocess"

// Options configures an Engine: a plain struct with a DefaultOptions
// constructor; zero-value Options is not meant to be used directly.
type Options struct {
	// SimplifyOpts tunes the collinear/near-duplicate vertex removal
	// pass that runs before the DP. Tolerance defaults to
	// geom.NearTolerance via preprocess.DefaultSimplifyOptions.
	SimplifyOpts preprocess.SimplifyOptions
}

// DefaultOptions returns the conservative default Options: simplification
// tolerance matches geom.NearTolerance.
func DefaultOptions() Options {
	return Options{
		SimplifyOpts: preprocess.DefaultSimplifyOptions(),
	}
}
