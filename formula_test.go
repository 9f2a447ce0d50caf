package dpllsat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func lits(ns ...int) []RawLiteral {
	out := make([]RawLiteral, len(ns))
	for i, n := range ns {
		out[i] = NewRawLiteral(n)
	}
	return out
}

func TestCreateClauseRejectsEmpty(t *testing.T) {
	f := NewFormula(nil)
	if _, err := f.CreateClause(1, nil); err != ErrEmptyClause {
		t.Fatalf("CreateClause(empty) = %v, want ErrEmptyClause", err)
	}
}

func TestCreateClauseRejectsTautology(t *testing.T) {
	f := NewFormula(nil)
	if _, err := f.CreateClause(1, lits(1, -1, 2)); err != ErrTautology {
		t.Fatalf("CreateClause(tautology) = %v, want ErrTautology", err)
	}
	if f.HasClauses() {
		t.Fatal("a rejected tautological clause must not be added")
	}
}

func TestCreateClauseDropsDuplicateLiterals(t *testing.T) {
	f := NewFormula(nil)
	c, err := f.CreateClause(1, lits(1, 2, 1, 2))
	if err != nil {
		t.Fatalf("CreateClause: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("clause has %d literals, want 2 after deduplication", c.Len())
	}
}

func TestFindUnitLiteral(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(1, 2))
	mustCreateClause(t, f, 2, lits(3))

	lit := f.FindUnitLiteral()
	if lit.IsZero() || lit.ID() != 3 {
		t.Fatalf("FindUnitLiteral() = %v, want the literal on variable 3", lit)
	}
}

func TestFindUnitLiteralNoneFound(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(1, 2))
	if lit := f.FindUnitLiteral(); !lit.IsZero() {
		t.Fatalf("FindUnitLiteral() = %v, want the zero literal", lit)
	}
}

func TestRemoveClauseUnlinksVariables(t *testing.T) {
	f := NewFormula(nil)
	c := mustCreateClause(t, f, 1, lits(1, 2))
	v1 := f.byID[1]
	v2 := f.byID[2]

	f.RemoveClause(c)

	if f.HasClauses() {
		t.Fatal("formula must have no active clauses after removing the only one")
	}
	if f.HasVariables() {
		t.Fatal("both variables should have become fully unused and been removed too")
	}
	if v1.used || v2.used {
		t.Fatal("variables left with no occurrence must be marked unused")
	}
}

func TestRemoveClauseLeavesSharedVariableActive(t *testing.T) {
	f := NewFormula(nil)
	c1 := mustCreateClause(t, f, 1, lits(1, 2))
	mustCreateClause(t, f, 2, lits(1, 3))

	f.RemoveClause(c1)

	v1 := f.byID[1]
	if !v1.used {
		t.Fatal("variable 1 still occurs in clause 2 and must remain active")
	}
	if v1.CountAllOccurrences() != 1 {
		t.Fatalf("variable 1 has %d occurrences, want 1", v1.CountAllOccurrences())
	}
}

func TestRemoveLiteralFromClauseConflict(t *testing.T) {
	f := NewFormula(nil)
	c := mustCreateClause(t, f, 1, lits(1))
	lit := c.FirstLiteral()

	f.RemoveLiteralFromClause(c, lit)

	if !c.IsUnsatisfiable() {
		t.Fatal("removing the sole literal of a unary clause must leave it unsatisfiable")
	}
	if _, ok := f.clauseIdx[c.id]; !ok {
		t.Fatal("a clause that becomes empty must stay in the active set")
	}
}

func TestReplayIdempotence(t *testing.T) {
	// Replaying a full history of one literal's assertion must restore the
	// formula to an equivalent state (same clause ids and literal sets, up
	// to iteration order).
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(1, 2))
	mustCreateClause(t, f, 2, lits(-1, 3))

	before := snapshotFormula(f)

	v1 := f.byID[1]

	var h History
	// clause 1 contains +x1: satisfied, removed.
	c1 := v1.FirstOccurrence(Positive)
	h.AddClause(c1)
	f.RemoveClause(c1)
	// clause 2 contains -x1: reduced.
	c2 := v1.FirstOccurrence(Negative)
	h.AddLiteral(c2, Literal{Var: v1, Sign: Negative})
	f.RemoveLiteralFromClause(c2, Literal{Var: v1, Sign: Negative})
	if v1.used {
		f.RemoveVariable(v1)
	}

	h.Replay(f)

	after := snapshotFormula(f)
	if diff := cmp.Diff(before, after, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("replay did not restore the formula (-before +after):\n%s", diff)
	}
}

// clauseSnapshot and formulaSnapshot describe a Formula's externally
// visible shape, up to iteration order, for comparing before and after a
// replay.
type clauseSnapshot struct {
	ID   int
	Lits map[int]Sign
}

type formulaSnapshot struct {
	ClauseIDs   map[int]bool
	VariableIDs map[int]bool
	Clauses     map[int]clauseSnapshot
}

func snapshotFormula(f *Formula) formulaSnapshot {
	snap := formulaSnapshot{
		ClauseIDs:   make(map[int]bool),
		VariableIDs: make(map[int]bool),
		Clauses:     make(map[int]clauseSnapshot),
	}
	for _, c := range f.Clauses() {
		snap.ClauseIDs[c.ID()] = true
		litMap := make(map[int]Sign, c.Len())
		for _, l := range c.Literals() {
			litMap[l.ID()] = l.Sign
		}
		snap.Clauses[c.ID()] = clauseSnapshot{ID: c.ID(), Lits: litMap}
	}
	for _, v := range f.Variables() {
		snap.VariableIDs[v.ID()] = true
	}
	return snap
}

func mustCreateClause(t *testing.T, f *Formula, id int, raw []RawLiteral) *Clause {
	t.Helper()
	c, err := f.CreateClause(id, raw)
	if err != nil {
		t.Fatalf("CreateClause(%d, %v): %v", id, raw, err)
	}
	return c
}
