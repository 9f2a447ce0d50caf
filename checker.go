package dpllsat

// Check verifies that assignment — one RawLiteral per variable it
// constrains, typically the output of a solve — satisfies f. It reduces f
// destructively (same literal-removal primitives the solver uses, but with
// no History: there is nothing to undo) and reports valid if no clause
// becomes empty along the way and every active clause is eventually
// removed by being satisfied. Callers that still need f afterward must
// pass a copy.
func Check(f *Formula, assignment []RawLiteral) bool {
	for _, raw := range assignment {
		v, ok := f.byID[raw.ID]
		if !ok || !v.used {
			continue
		}
		lit := Literal{Var: v, Sign: raw.Sign}

		removeClausesSatisfiedBy(f, lit)
		if !removeOppositeLiteralNoHistory(f, lit) {
			return false
		}
		if v.used {
			f.RemoveVariable(v)
		}
	}
	return !f.HasClauses()
}

// removeClausesSatisfiedBy removes every active clause containing lit: the
// assignment makes each of them true.
func removeClausesSatisfiedBy(f *Formula, lit Literal) {
	for {
		clause := lit.Var.FirstOccurrence(lit.Sign)
		if clause == nil {
			return
		}
		f.RemoveClause(clause)
	}
}

// removeOppositeLiteralNoHistory removes ¬lit from every active clause
// containing it. It returns false the instant a clause is left empty: an
// unsatisfied clause means assignment does not satisfy f, and the checker
// stops immediately rather than finishing the reduction.
func removeOppositeLiteralNoHistory(f *Formula, lit Literal) bool {
	neg := lit.Negate()
	for {
		clause := lit.Var.FirstOccurrence(neg.Sign)
		if clause == nil {
			return true
		}
		f.RemoveLiteralFromClause(clause, neg)
		if clause.IsUnsatisfiable() {
			return false
		}
	}
}
