package dpllsat

import "testing"

func TestFirstVariableSelector(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(5, 6))

	v := FirstVariableSelector{}.SelectVariable(f)
	if v == nil {
		t.Fatal("SelectVariable returned nil on a non-empty formula")
	}
}

func TestFirstVariableSelectorEmptyFormula(t *testing.T) {
	f := NewFormula(nil)
	if v := (FirstVariableSelector{}).SelectVariable(f); v != nil {
		t.Fatalf("SelectVariable() = %v, want nil on an empty formula", v)
	}
}

func TestMostAndLeastUsedVariableSelector(t *testing.T) {
	f := NewFormula(nil)
	// x1 occurs in three clauses, x2 in one.
	mustCreateClause(t, f, 1, lits(1, 2))
	mustCreateClause(t, f, 2, lits(1, 3))
	mustCreateClause(t, f, 3, lits(1, 3))

	most := MostUsedVariableSelector{}.SelectVariable(f)
	if most.ID() != 1 {
		t.Fatalf("MostUsedVariableSelector chose x%d, want x1", most.ID())
	}

	least := LeastUsedVariableSelector{}.SelectVariable(f)
	if least.ID() != 2 {
		t.Fatalf("LeastUsedVariableSelector chose x%d, want x2", least.ID())
	}
}

func TestPositiveFirstPolaritySelector(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(1, -2))
	mustCreateClause(t, f, 2, lits(-2, 3))

	v1 := f.byID[1]
	if got := (PositiveFirstPolaritySelector{}).SelectSign(v1); got != Positive {
		t.Fatalf("SelectSign(x1) = %v, want Positive", got)
	}

	v2 := f.byID[2]
	if got := (PositiveFirstPolaritySelector{}).SelectSign(v2); got != Negative {
		t.Fatalf("SelectSign(x2) = %v, want Negative (no positive occurrence)", got)
	}
}

func TestMostUsedPolaritySelector(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(-1, 2))
	mustCreateClause(t, f, 2, lits(-1, 3))
	mustCreateClause(t, f, 3, lits(1, 4))

	v1 := f.byID[1]
	if got := (MostUsedPolaritySelector{}).SelectSign(v1); got != Negative {
		t.Fatalf("SelectSign(x1) = %v, want Negative (2 negative vs 1 positive)", got)
	}
}

func TestCachingPolaritySelector(t *testing.T) {
	v := newVariable(1)
	c := NewCachingPolaritySelector(PositiveFirstPolaritySelector{})

	if got := c.SelectSign(v); got != Positive {
		t.Fatalf("SelectSign before any OnAssert = %v, want fallback Positive", got)
	}

	c.OnAssert(Literal{Var: v, Sign: Negative})
	if got := c.SelectSign(v); got != Negative {
		t.Fatalf("SelectSign after OnAssert(-x1) = %v, want cached Negative", got)
	}
}

func TestComposedSelector(t *testing.T) {
	f := NewFormula(nil)
	mustCreateClause(t, f, 1, lits(1, 2))

	composed := ComposedSelector{
		Variables: FirstVariableSelector{},
		Polarity:  PositiveFirstPolaritySelector{},
	}
	lit := composed.SelectLiteral(f)
	if lit.IsZero() {
		t.Fatal("ComposedSelector returned the zero literal on a non-empty formula")
	}
}

func TestComposedSelectorEmptyFormula(t *testing.T) {
	f := NewFormula(nil)
	composed := ComposedSelector{
		Variables: FirstVariableSelector{},
		Polarity:  PositiveFirstPolaritySelector{},
	}
	if lit := composed.SelectLiteral(f); !lit.IsZero() {
		t.Fatalf("SelectLiteral() = %v, want the zero literal on an empty formula", lit)
	}
}
