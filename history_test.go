package dpllsat

import "testing"

func TestHistoryReplayUndoesInLIFOOrder(t *testing.T) {
	f := NewFormula(nil)
	c1 := mustCreateClause(t, f, 1, lits(1, 2))
	c2 := mustCreateClause(t, f, 2, lits(3, 4))

	var h History
	h.AddClause(c1)
	f.RemoveClause(c1)
	h.AddClause(c2)
	f.RemoveClause(c2)

	if f.HasClauses() {
		t.Fatal("both clauses should be removed before replay")
	}
	if h.Len() != 2 {
		t.Fatalf("History.Len() = %d, want 2", h.Len())
	}

	h.Replay(f)

	if h.Len() != 0 {
		t.Fatal("Replay must leave the history empty")
	}
	if len(f.Clauses()) != 2 {
		t.Fatalf("len(f.Clauses()) = %d, want 2 after replay", len(f.Clauses()))
	}
}

func TestHistoryReplayRestoresRemovedLiteral(t *testing.T) {
	f := NewFormula(nil)
	c := mustCreateClause(t, f, 1, lits(1, 2))
	lit := Literal{Var: f.byID[2], Sign: Positive}

	var h History
	h.AddLiteral(c, lit)
	f.RemoveLiteralFromClause(c, lit)

	if c.Len() != 1 {
		t.Fatalf("clause has %d literals after removal, want 1", c.Len())
	}

	h.Replay(f)

	if c.Len() != 2 {
		t.Fatalf("clause has %d literals after replay, want 2", c.Len())
	}
}
