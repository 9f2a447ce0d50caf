package dpllsat

import (
	"errors"

	"github.com/kr/pretty"
)

// ErrEmptyClause is returned by CreateClause when given no literals: the
// empty clause would be unconditionally unsatisfiable at load time, so the
// clause is rejected rather than created.
var ErrEmptyClause = errors.New("dpllsat: clause has no literals")

// ErrTautology is returned by CreateClause when a variable appears with
// both polarities in the same clause: the clause is trivially true and is
// rejected rather than created.
var ErrTautology = errors.New("dpllsat: clause is a tautology")

// Formula owns the active and unused sets of Clauses and Variables and
// keeps the occurrence bipartite graph between them consistent. It is the
// sole component allowed to mutate that graph; everything else (selectors,
// listeners, the solution checker) only reads it.
type Formula struct {
	clauses   []*Clause
	clauseIdx map[int]int // clause id -> index in clauses

	unusedClauses   []*Clause
	unusedClauseIdx map[int]int

	variables   []*Variable
	variableIdx map[int]int // variable id -> index in variables

	unusedVariables   []*Variable
	unusedVariableIdx map[int]int

	byID map[int]*Variable // all known variables, active or unused

	log Logger
}

// NewFormula creates an empty formula.
func NewFormula(log Logger) *Formula {
	if log == nil {
		log = NopLogger{}
	}
	f := &Formula{
		clauseIdx:         make(map[int]int),
		unusedClauseIdx:   make(map[int]int),
		variableIdx:       make(map[int]int),
		unusedVariableIdx: make(map[int]int),
		byID:              make(map[int]*Variable),
		log:               log,
	}
	log.Debugf("formula created")
	return f
}

func (f *Formula) findOrCreateVariable(id int) *Variable {
	if v, ok := f.byID[id]; ok {
		return v
	}
	v := newVariable(id)
	f.byID[id] = v
	f.variableIdx[id] = len(f.variables)
	f.variables = append(f.variables, v)
	f.log.Debugf("variable x%d added", id)
	return v
}

// CreateClause builds a clause with the given id from a sequence of raw
// literals, creating any variable that does not exist yet and linking both
// directions of the occurrence graph. Duplicate same-sign literals are
// dropped silently; a variable occurring with both signs makes the clause a
// tautology and it is rejected (ErrTautology); an empty literal sequence is
// rejected (ErrEmptyClause).
func (f *Formula) CreateClause(id int, raw []RawLiteral) (*Clause, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyClause
	}

	seen := make(map[int]Sign, len(raw))
	unique := make([]RawLiteral, 0, len(raw))
	for _, rl := range raw {
		if sign, ok := seen[rl.ID]; ok {
			if sign != rl.Sign {
				return nil, ErrTautology
			}
			continue // duplicate same-sign literal, drop silently
		}
		seen[rl.ID] = rl.Sign
		unique = append(unique, rl)
	}

	// Variables are created only once the clause is known to be accepted, so
	// a rejected tautology leaves no variable behind.
	lits := make([]Literal, 0, len(unique))
	for _, rl := range unique {
		v := f.findOrCreateVariable(rl.ID)
		lits = append(lits, Literal{Var: v, Sign: rl.Sign})
	}

	clause := newClause(id, lits)
	f.clauseIdx[id] = len(f.clauses)
	f.clauses = append(f.clauses, clause)

	for _, l := range lits {
		l.Var.addOccurrence(clause, l.Sign)
	}
	f.log.Debugf("clause %d added", id)
	return clause, nil
}

// FindUnitLiteral scans active clauses and returns the sole literal of the
// first clause of cardinality 1 found. If none exists, it returns the zero
// Literal (Literal.IsZero() reports true). Tie-breaking is
// implementation-defined but deterministic within one run: this scans
// f.clauses in order.
func (f *Formula) FindUnitLiteral() Literal {
	_, lit := f.FindUnitClause()
	return lit
}

// FindUnitClause is like FindUnitLiteral but also returns the unary clause
// the literal came from (nil if there is none), so callers that need to
// report which clause triggered a propagation don't have to re-scan.
func (f *Formula) FindUnitClause() (*Clause, Literal) {
	for _, c := range f.clauses {
		if c.IsUnary() {
			lit := c.FirstLiteral()
			f.log.Debugf("unit literal %s found in clause %d", lit, c.id)
			return c, lit
		}
	}
	return nil, noLiteral
}

// unlinkVariable removes clause's link from the variable side of literal
// lit, and if the variable is left with no occurrence anywhere, also moves
// it to the unused pool.
func (f *Formula) unlinkVariable(clause *Clause, lit Literal) {
	v := lit.Var
	v.removeOccurrence(clause, lit.Sign)
	if !v.HasOccurrence(Positive) && !v.HasOccurrence(Negative) {
		f.log.Infof("variable x%d is not used anymore", v.id)
		f.RemoveVariable(v)
	}
}

// RemoveClause unlinks every literal of clause from its variable's
// occurrence list (removing any variable left with no occurrence anywhere)
// and moves clause to the unused set. The clause's literal list is
// preserved so a later AddClause can restore it exactly.
func (f *Formula) RemoveClause(clause *Clause) {
	idx, ok := f.clauseIdx[clause.id]
	if !ok {
		panic("dpllsat: removing a clause that is not active")
	}
	for _, lit := range clause.lits {
		f.unlinkVariable(clause, lit)
	}

	last := len(f.clauses) - 1
	f.clauses[idx] = f.clauses[last]
	f.clauseIdx[f.clauses[idx].id] = idx
	f.clauses = f.clauses[:last]
	delete(f.clauseIdx, clause.id)

	clause.used = false
	f.unusedClauseIdx[clause.id] = len(f.unusedClauses)
	f.unusedClauses = append(f.unusedClauses, clause)
	f.log.Infof("clause %d removed", clause.id)
}

// RemoveLiteralFromClause removes lit from clause's literal list and
// unlinks the corresponding occurrence. If the clause becomes empty it
// stays in the active set — it is now the empty clause, the conflict
// signal. If lit's variable becomes fully unused, it is removed too.
func (f *Formula) RemoveLiteralFromClause(clause *Clause, lit Literal) {
	if _, ok := f.clauseIdx[clause.id]; !ok {
		panic("dpllsat: removing a literal from a clause that is not active")
	}
	clause.removeLiteral(lit)
	f.unlinkVariable(clause, lit)
	f.log.Infof("literal %s removed from clause %d", lit, clause.id)
}

// AddClause is the inverse of RemoveClause, used exclusively by History
// replay: it restores clause to the active set and relinks every one of
// its (already-restored) literals, reviving any variable that was parked
// in the unused pool.
func (f *Formula) AddClause(clause *Clause) {
	idx, ok := f.unusedClauseIdx[clause.id]
	if !ok {
		panic("dpllsat: restoring a clause that is not unused")
	}
	last := len(f.unusedClauses) - 1
	f.unusedClauses[idx] = f.unusedClauses[last]
	f.unusedClauseIdx[f.unusedClauses[idx].id] = idx
	f.unusedClauses = f.unusedClauses[:last]
	delete(f.unusedClauseIdx, clause.id)

	clause.used = true
	f.clauseIdx[clause.id] = len(f.clauses)
	f.clauses = append(f.clauses, clause)

	for _, lit := range clause.lits {
		if !lit.Var.used {
			f.AddVariable(lit.Var)
		}
		lit.Var.addOccurrence(clause, lit.Sign)
	}
	f.log.Infof("clause %d added (restored)", clause.id)
}

// AddLiteralToClause is the inverse of RemoveLiteralFromClause, used
// exclusively by History replay: it reinserts lit into clause and relinks
// the occurrence, reviving the variable from the unused pool if necessary.
func (f *Formula) AddLiteralToClause(clause *Clause, lit Literal) {
	if !lit.Var.used {
		f.AddVariable(lit.Var)
	}
	clause.addLiteral(lit)
	lit.Var.addOccurrence(clause, lit.Sign)
	f.log.Debugf("literal %s added to clause %d (restored)", lit, clause.id)
}

// RemoveVariable moves v from the active to the unused pool.
func (f *Formula) RemoveVariable(v *Variable) {
	idx, ok := f.variableIdx[v.id]
	if !ok {
		panic("dpllsat: removing a variable that is not active")
	}
	last := len(f.variables) - 1
	f.variables[idx] = f.variables[last]
	f.variableIdx[f.variables[idx].id] = idx
	f.variables = f.variables[:last]
	delete(f.variableIdx, v.id)

	v.used = false
	f.unusedVariableIdx[v.id] = len(f.unusedVariables)
	f.unusedVariables = append(f.unusedVariables, v)
	f.log.Infof("variable x%d removed", v.id)
}

// AddVariable moves v from the unused to the active pool.
func (f *Formula) AddVariable(v *Variable) {
	idx, ok := f.unusedVariableIdx[v.id]
	if !ok {
		panic("dpllsat: restoring a variable that is not unused")
	}
	last := len(f.unusedVariables) - 1
	f.unusedVariables[idx] = f.unusedVariables[last]
	f.unusedVariableIdx[f.unusedVariables[idx].id] = idx
	f.unusedVariables = f.unusedVariables[:last]
	delete(f.unusedVariableIdx, v.id)

	v.used = true
	f.variableIdx[v.id] = len(f.variables)
	f.variables = append(f.variables, v)
	f.log.Infof("variable x%d added", v.id)
}

// HasClauses reports whether the formula has any active clause.
func (f *Formula) HasClauses() bool {
	return len(f.clauses) > 0
}

// HasVariables reports whether the formula has any active variable.
func (f *Formula) HasVariables() bool {
	return len(f.variables) > 0
}

// Variables returns the active variables. Iteration order is the order in
// which they became active (or were last swap-compacted); callers must not
// rely on a specific order beyond "deterministic within one run," and must
// not mutate the returned slice.
func (f *Formula) Variables() []*Variable {
	return f.variables
}

// Clauses returns the active clauses, subject to the same ordering caveat
// as Variables.
func (f *Formula) Clauses() []*Clause {
	return f.clauses
}

// DebugDump renders every active clause's literals as a multi-line,
// deeply-recursive dump, the same kind of state snapshot reached for when
// a conflict needs staring at. Only ever called from a Debugf call site so
// the formatting cost is paid when the caller actually wants it.
func (f *Formula) DebugDump() string {
	rows := make([][]int, len(f.clauses))
	for i, c := range f.clauses {
		lits := c.Literals()
		row := make([]int, len(lits))
		for j, l := range lits {
			row[j] = l.Int()
		}
		rows[i] = row
	}
	return pretty.Sprint(rows)
}
