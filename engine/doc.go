// Package engine is the orchestration facade the CLI calls into: resolve
// options, compute the degeneracy ordering once, pick the matching
// Problem, run the requested algorithm variant, and validate the answer
// before handing it back.
//
// One entry point, BuildGraph-style: Run(ctx, g, opts) does option
// resolution, ordering, dispatch, and validation in one documented place,
// rather than spreading that sequencing across the CLI commands.
package engine
