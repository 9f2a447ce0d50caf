// Package dpllsat implements a SAT solver for CNF Boolean satisfiability
// problems using the Davis-Putnam-Logemann-Loveland (DPLL) algorithm: unit
// propagation over an occurrence-indexed clause database, chronological
// backtracking driven by an explicit resolution stack, and pluggable
// decision heuristics.
//
// Solve is the package-level convenience entry point built on
// IterativeSolver, the canonical search. RecursiveSolver offers the same
// search expressed recursively instead. Either produces a satisfying
// Valuation or an unsatisfiable one. Given a formula and a candidate
// assignment, Check replays the same reduction primitives the solver uses
// to verify the assignment.
//
// The package does not implement conflict-driven clause learning, restarts,
// clause forgetting, the pure-literal rule, or proof production; it searches
// a single decision level at a time and backtracks chronologically.
package dpllsat
