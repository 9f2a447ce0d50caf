package dpllsat

// Solve is the package-level convenience entry point: given a CNF problem
// as a slice of clauses of signed integers (DIMACS literal convention), it
// builds a Formula, runs the canonical iterative solver with the
// most-used/most-used-polarity heuristic, and returns the assignment in
// source order alongside solve statistics. Unmentioned variables (ones the
// valuation never asserted, because the formula was satisfiable without
// deciding them) are reported as positive by convention.
func Solve(problem [][]int) (assignment []int, stats map[string]interface{}, sat bool) {
	f := NewFormula(nil)

	varOrder := make([]int, 0)
	seen := make(map[int]bool)
	for id, clause := range problem {
		raw := make([]RawLiteral, 0, len(clause))
		for _, n := range clause {
			rl := NewRawLiteral(n)
			if !seen[rl.ID] {
				seen[rl.ID] = true
				varOrder = append(varOrder, rl.ID)
			}
			raw = append(raw, rl)
		}
		if len(raw) == 0 {
			continue
		}
		if _, err := f.CreateClause(id+1, raw); err != nil {
			continue // tautology: dropped per load-time contract
		}
	}

	selector := ComposedSelector{
		Variables: MostUsedVariableSelector{},
		Polarity:  MostUsedPolaritySelector{},
	}
	solver := NewIterativeSolver(f, selector)
	statsListener := &StatisticsListener{}
	solver.AddListener(statsListener)

	valuation, err := solver.Solve(nil)
	stats = map[string]interface{}{
		"decisions":    statsListener.Decisions,
		"propagations": statsListener.Propagations,
		"conflicts":    statsListener.Conflicts,
		"backtracks":   statsListener.Backtracks,
	}
	if err != nil || !valuation.Satisfiable() {
		return nil, stats, false
	}

	signs := make(map[int]Sign, len(varOrder))
	for _, lit := range valuation.Literals() {
		signs[lit.ID()] = lit.Sign
	}

	soln := make([]int, len(varOrder))
	for i, id := range varOrder {
		sign, ok := signs[id]
		if !ok {
			sign = Positive
		}
		if sign == Negative {
			soln[i] = -id
		} else {
			soln[i] = id
		}
	}
	return soln, stats, true
}
