// Package validate checks a mining engine's returned vertex set against
// the membership condition of the problem it claims to solve.
//
// These are the last line of defence the CLI runs before printing a
// solution: deterministic, side-effect free functions, returning a
// sentinel error rather than panicking, since a validator rejection is a
// fatal-but-expected user-visible outcome, not a programmer error.
package validate
