package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cliquemine/degeneracy"
	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/internal/apperr"
	"github.com/katalvlaran/cliquemine/refine"
	"github.com/katalvlaran/cliquemine/solvers"
	"github.com/katalvlaran/cliquemine/validate"
)

// Options configures a single Run call: which problem to mine, which
// algorithm variant to run it with, and that problem's parameter (K for
// kplex/kdef, Alpha for quasi/pseudo).
type Options struct {
	Program string // kplex, kdef, quasi, pseudo
	Algo    string // v1, v2, twohop (alias v3), naive
	K       int32
	Alpha   float64
}

// Result is a mining answer together with the request that produced it,
// for CLI diagnostic printing.
type Result struct {
	solvers.Result
	Program string
	Algo    string
}

// Run resolves opts into a refine.Problem, computes the degeneracy
// ordering once, dispatches to the requested algorithm variant, and
// validates the returned vertex set before returning it. ctx is forwarded
// to the RefinementDriver, which checks it once per outer iteration.
func Run(ctx context.Context, g *graph.CSRGraph, opts Options) (Result, error) {
	problem, err := buildProblem(opts)
	if err != nil {
		return Result{}, err
	}

	normalizedAlgo, err := normalizeAlgo(opts.Program, opts.Algo)
	if err != nil {
		return Result{}, err
	}

	ordering := degeneracy.Ordering(g)
	rank := degeneracy.Rank(ordering)
	degeneracy.SortNeighboursByReverseRank(g, rank)

	var solved solvers.Result
	switch normalizedAlgo {
	case "v1", "naive":
		solved = problem.Solve(g)
	case "v2":
		solved = refine.NewDriver(g.Size()).Run(ctx, g, rank, problem, false)
	case "twohop":
		solved = refine.NewDriver(g.Size()).Run(ctx, g, rank, problem, true)
	}

	if err := validateResult(opts, g, solved.Members); err != nil {
		return Result{}, apperr.Wrap(apperr.CodeValidationError, "engine produced an invalid solution", err)
	}

	return Result{Result: solved, Program: opts.Program, Algo: normalizedAlgo}, nil
}

func buildProblem(opts Options) (refine.Problem, error) {
	switch opts.Program {
	case "kplex":
		if opts.K < 1 {
			return nil, apperr.New(apperr.CodeInvalidInput, "kplex requires k >= 1")
		}
		return refine.KPlexProblem{K: opts.K}, nil
	case "kdef":
		if opts.K < 1 {
			return nil, apperr.New(apperr.CodeInvalidInput, "kdef requires k >= 1")
		}
		return refine.KDefProblem{K: opts.K}, nil
	case "quasi":
		if opts.Alpha <= 0 || opts.Alpha >= 1 {
			return nil, apperr.New(apperr.CodeInvalidInput, "quasi requires alpha in (0, 1)")
		}
		return refine.QuasiProblem{Alpha: opts.Alpha}, nil
	case "pseudo":
		if opts.Alpha <= 0 || opts.Alpha >= 1 {
			return nil, apperr.New(apperr.CodeInvalidInput, "pseudo requires alpha in (0, 1)")
		}
		return refine.PseudoProblem{Alpha: opts.Alpha}, nil
	default:
		return nil, apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("unknown program %q", opts.Program))
	}
}

// normalizeAlgo validates and canonicalises the -a flag: "v3" is an alias
// for "twohop", and "naive" is only meaningful for kdef/quasi/pseudo since
// kplex has no separate one-shot greedy solver distinct from its peeling
// NaiveSolver.
func normalizeAlgo(program, algo string) (string, error) {
	switch algo {
	case "v1", "v2":
		return algo, nil
	case "twohop", "v3":
		return "twohop", nil
	case "naive":
		if program == "kplex" {
			return "", apperr.New(apperr.CodeInvalidInput, "kplex has no separate naive variant; use v1")
		}
		return "naive", nil
	default:
		return "", apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("unknown algo %q", algo))
	}
}

func validateResult(opts Options, g *graph.CSRGraph, members []graph.VertexID) error {
	switch opts.Program {
	case "kplex":
		return validate.KPlex(g, members, opts.K)
	case "kdef":
		return validate.KDefective(g, members, opts.K)
	case "quasi":
		return validate.QuasiClique(g, members, opts.Alpha)
	case "pseudo":
		return validate.PseudoClique(g, members, opts.Alpha)
	default:
		return apperr.New(apperr.CodeInvalidInput, fmt.Sprintf("unknown program %q", opts.Program))
	}
}
