package dpllsat

// RecursiveSolver is the alternative DPLL formulation: instead of an
// explicit ResolutionStack, each decision is one level of Go
// call-stack recursion, carrying a local History it replays itself before
// trying the decision's opposite literal. It is not the canonical
// implementation (IterativeSolver is), but it exercises the same Formula
// primitives and is useful as a second, independently-argued implementation
// of the same semantics — and for tests that want to compare the two.
type RecursiveSolver struct {
	formula   *Formula
	selector  LiteralSelector
	listeners ListenerDispatcher
	valuation *Valuation
}

// NewRecursiveSolver builds a RecursiveSolver over f, deciding with
// selector.
func NewRecursiveSolver(f *Formula, selector LiteralSelector) *RecursiveSolver {
	return &RecursiveSolver{
		formula:   f,
		selector:  selector,
		valuation: NewValuation(),
	}
}

// AddListener registers a Listener to observe this solve.
func (s *RecursiveSolver) AddListener(l Listener) {
	s.listeners.Add(l)
}

// Solve runs the recursive search to completion. Unlike IterativeSolver, it
// takes no context: recursion depth is bounded by the variable count, and a
// deadline hook here would have to be threaded through every call frame,
// which isn't worth it for what is already the non-canonical
// implementation.
func (s *RecursiveSolver) Solve() *Valuation {
	s.listeners.Init()
	defer s.listeners.Cleanup()

	for _, c := range s.formula.Clauses() {
		if c.IsUnsatisfiable() {
			s.valuation.SetUnsatisfiable()
			return s.valuation
		}
	}

	if !s.dpll() {
		s.valuation.SetUnsatisfiable()
	}
	return s.valuation
}

// dpll implements one level of recursive DPLL. It propagates everything
// forced; on conflict it undoes its own propagations and reports failure.
// With no conflict, an empty formula means success (the accumulated
// valuation is the answer — nothing is undone on this path). Otherwise it
// decides a literal, recurses, and on failure undoes the decision and
// tries the negation before finally undoing its own propagations too.
func (s *RecursiveSolver) dpll() bool {
	var local History
	propagated, conflict := s.propagate(&local)
	if conflict != nil {
		local.Replay(s.formula)
		s.popValuation(propagated)
		return false
	}

	if !s.formula.HasVariables() {
		return true
	}

	lit := s.selector.SelectLiteral(s.formula)
	s.listeners.OnDecide(lit)

	var declHist History
	declConflict := s.assertIntoHistory(&declHist, lit, nil, true)
	if declConflict == nil && s.dpll() {
		return true
	}
	declHist.Replay(s.formula)
	s.popValuation(1)
	s.listeners.OnBacktrack(lit)

	var retryHist History
	retryConflict := s.assertIntoHistory(&retryHist, lit.Negate(), nil, false)
	if retryConflict == nil && s.dpll() {
		return true
	}
	retryHist.Replay(s.formula)
	s.popValuation(1)

	local.Replay(s.formula)
	s.popValuation(propagated)
	return false
}

// propagate repeatedly asserts unit literals into h until none remain or a
// conflict clause is produced. It returns how many literals it pushed onto
// the valuation (so the caller can undo exactly that many) and the
// conflict clause, if any.
func (s *RecursiveSolver) propagate(h *History) (pushed int, conflict *Clause) {
	for {
		clause, lit := s.formula.FindUnitClause()
		if lit.IsZero() {
			return pushed, nil
		}
		conflict = s.assertIntoHistory(h, lit, clause, false)
		pushed++
		if conflict != nil {
			return pushed, conflict
		}
	}
}

// assertIntoHistory is assertLiteral's logic (see solver.go) rebuilt
// against a caller-supplied History instead of a ResolutionStack level,
// since the recursive formulation keeps one History per call frame rather
// than per decision level in a shared stack.
func (s *RecursiveSolver) assertIntoHistory(h *History, lit Literal, fromClause *Clause, isDecision bool) *Clause {
	var conflict *Clause

	for {
		clause := lit.Var.FirstOccurrence(lit.Sign)
		if clause == nil {
			break
		}
		h.AddClause(clause)
		s.formula.RemoveClause(clause)
	}

	neg := lit.Negate()
	for {
		clause := lit.Var.FirstOccurrence(neg.Sign)
		if clause == nil {
			break
		}
		h.AddLiteral(clause, neg)
		s.formula.RemoveLiteralFromClause(clause, neg)
		if clause.IsUnsatisfiable() {
			conflict = clause
			break
		}
	}

	if lit.Var.used {
		s.formula.RemoveVariable(lit.Var)
	}

	s.valuation.Push(lit)
	if !isDecision {
		s.listeners.OnPropagate(lit, fromClause)
	}
	s.listeners.OnAssert(lit)
	if conflict != nil {
		s.listeners.OnConflict(conflict)
	}
	return conflict
}

func (s *RecursiveSolver) popValuation(n int) {
	for i := 0; i < n; i++ {
		s.valuation.Pop()
	}
}
