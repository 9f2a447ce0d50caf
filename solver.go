package dpllsat

import (
	"context"
	"errors"
)

// ErrCancelled is returned by IterativeSolver.Solve when the supplied
// context is done before the search concludes. The result is unknown, not
// unsatisfiable: cancellation is an implementation extension layered on top
// of the core algorithm and must never be confused with a proof of
// unsatisfiability. It only fires if the caller's context actually carries
// a deadline or is cancelled — passing context.Background() disables the
// check entirely, which is the default every convenience function in this
// package uses.
var ErrCancelled = errors.New("dpllsat: search cancelled before a result was reached")

// IterativeSolver runs the canonical iterative DPLL search over a Formula:
// full unit propagation, then either backjump (on conflict), declare SAT
// (no active variables left), or decide (push a new level and try a
// literal). It mirrors the shape of IterativeDpllSolver, generalized from a
// fixed two-watched-literal engine to the occurrence-indexed Formula and
// ResolutionStack this package builds on.
type IterativeSolver struct {
	formula    *Formula
	selector   LiteralSelector
	resolution *ResolutionStack
	valuation  *Valuation
	listeners  ListenerDispatcher

	conflict *Clause
}

// NewIterativeSolver builds a solver over f, deciding with selector.
// Additional listeners may be registered with AddListener before calling
// Solve; if selector also implements Listener (CachingPolaritySelector does)
// callers must register it explicitly — the solver does not do this for
// them, since not every caller wants phase-saving observed.
func NewIterativeSolver(f *Formula, selector LiteralSelector) *IterativeSolver {
	return &IterativeSolver{
		formula:    f,
		selector:   selector,
		resolution: NewResolutionStack(),
		valuation:  NewValuation(),
	}
}

// AddListener registers a Listener to observe this solve. Order of
// registration is the order of notification.
func (s *IterativeSolver) AddListener(l Listener) {
	s.listeners.Add(l)
}

// Solve runs the search to completion and returns the resulting Valuation.
// ctx is checked for cancellation once per outer loop iteration (i.e. once
// per propagate-or-decide step, not per literal); pass context.Background()
// to disable the check. If ctx is done before a result is reached, Solve
// returns (nil, ErrCancelled) and leaves the Formula in whatever partial
// state the search had reached — the caller must discard it.
func (s *IterativeSolver) Solve(ctx context.Context) (*Valuation, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	s.listeners.Init()
	defer s.listeners.Cleanup()

	for _, c := range s.formula.Clauses() {
		if c.IsUnsatisfiable() {
			s.conflict = c
			break
		}
	}

	s.fullUnitPropagate()

	for {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		if s.conflict != nil {
			if s.resolution.CurrentLevel() == 1 {
				s.valuation.SetUnsatisfiable()
				return s.valuation, nil
			}
			s.applyBackjump()
			s.fullUnitPropagate()
			continue
		}

		if !s.formula.HasVariables() {
			return s.valuation, nil
		}

		s.applyDecide()
		s.fullUnitPropagate()
	}
}

// fullUnitPropagate repeatedly finds and asserts unit literals until either
// none remain or a conflict is recorded.
func (s *IterativeSolver) fullUnitPropagate() {
	for s.conflict == nil {
		clause, lit := s.formula.FindUnitClause()
		if lit.IsZero() {
			return
		}
		s.assertLiteral(lit, clause, false)
	}
}

// assertLiteral performs one literal assertion: remove every clause the
// literal satisfies, reduce every clause containing its negation (stopping
// at the first empty clause produced, which becomes the conflict — the
// remaining opposite occurrences are deliberately left unprocessed, see
// removeOppositeLiteralFromClauses), retire the variable, record the
// literal on the resolution stack, and notify listeners.
func (s *IterativeSolver) assertLiteral(lit Literal, fromClause *Clause, isDecision bool) {
	s.removeClausesWithLiteral(lit)
	s.removeOppositeLiteralFromClauses(lit)

	if lit.Var.used {
		s.formula.RemoveVariable(lit.Var)
	}

	s.resolution.PushLiteral(lit)
	s.valuation.Push(lit)

	if !isDecision {
		s.listeners.OnPropagate(lit, fromClause)
	}
	s.listeners.OnAssert(lit)

	if s.conflict != nil {
		s.formula.log.Debugf("conflict on clause %d, remaining formula:\n%s", s.conflict.ID(), s.formula.DebugDump())
		s.listeners.OnConflict(s.conflict)
	}
}

// removeClausesWithLiteral removes every active clause containing lit,
// recording each removal on the current resolution level.
func (s *IterativeSolver) removeClausesWithLiteral(lit Literal) {
	for {
		clause := lit.Var.FirstOccurrence(lit.Sign)
		if clause == nil {
			return
		}
		s.resolution.AddClause(clause)
		s.formula.RemoveClause(clause)
	}
}

// removeOppositeLiteralFromClauses removes ¬lit from every active clause
// that contains it. As soon as a clause is left empty it is recorded as the
// conflict and the loop stops: clauses further down the opposite-occurrence
// list are left untouched. This asymmetry is deliberate, matching the
// legacy solver's "stop the step at the first conflict" behavior rather
// than looping to completion; the history recorded for whatever was
// processed is still sufficient for an exact replay on backtrack.
func (s *IterativeSolver) removeOppositeLiteralFromClauses(lit Literal) {
	neg := lit.Negate()
	for {
		clause := lit.Var.FirstOccurrence(neg.Sign)
		if clause == nil {
			return
		}
		s.resolution.AddLiteral(clause, neg)
		s.formula.RemoveLiteralFromClause(clause, neg)
		if clause.IsUnsatisfiable() {
			s.conflict = clause
			return
		}
	}
}

// applyDecide pushes a new resolution level, picks a literal via the
// selector, and asserts it as a decision.
func (s *IterativeSolver) applyDecide() {
	s.resolution.NextLevel()
	lit := s.selector.SelectLiteral(s.formula)
	s.listeners.OnDecide(lit)
	s.assertLiteral(lit, nil, true)
}

// applyBackjump undoes the current level (replaying its history, popping
// it), then asserts the negation of the decision literal that level made —
// the one alternative DPLL has not yet tried — at the level now current.
// It panics if called at level 1: the caller must check CurrentLevel first
// (Solve does, via the UNSAT check).
func (s *IterativeSolver) applyBackjump() {
	decision := s.resolution.LastDecisionLiteral()

	s.resolution.Replay(s.formula)
	for range s.resolution.CurrentLiterals() {
		s.valuation.Pop()
	}
	s.resolution.PopLevel()
	s.listeners.OnBacktrack(decision)

	s.conflict = nil
	s.assertLiteral(decision.Negate(), nil, false)
}
