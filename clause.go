package dpllsat

// Clause is identified by a positive id, unique across the owning Formula,
// and holds an ordered list of Literals. Within one clause a given Variable
// appears at most once (duplicates are dropped and tautologies rejected at
// load time, per the Formula.CreateClause contract).
type Clause struct {
	id   int
	lits []Literal

	// litIndex maps a variable id to its position in lits, for O(1) removal.
	litIndex map[int]int

	used bool
}

func newClause(id int, lits []Literal) *Clause {
	c := &Clause{
		id:       id,
		lits:     lits,
		litIndex: make(map[int]int, len(lits)),
		used:     true,
	}
	for i, l := range lits {
		c.litIndex[l.ID()] = i
	}
	return c
}

// ID returns the clause's identifier.
func (c *Clause) ID() int {
	return c.id
}

// Literals returns the clause's current literal list. Callers must not
// mutate the returned slice.
func (c *Clause) Literals() []Literal {
	return c.lits
}

// Len returns the number of literals currently in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// IsUnary reports whether the clause has exactly one literal.
func (c *Clause) IsUnary() bool {
	return len(c.lits) == 1
}

// IsUnsatisfiable reports whether the clause's literal list is empty — the
// conflict signal.
func (c *Clause) IsUnsatisfiable() bool {
	return len(c.lits) == 0
}

// FirstLiteral returns the clause's first literal. It panics if the clause
// is empty; callers must check Len (or IsUnary, for the unit-clause case)
// first.
func (c *Clause) FirstLiteral() Literal {
	return c.lits[0]
}

// addLiteral appends l to the clause, keeping litIndex consistent. Used by
// Formula.AddLiteralToClause during history replay.
func (c *Clause) addLiteral(l Literal) {
	c.litIndex[l.ID()] = len(c.lits)
	c.lits = append(c.lits, l)
}

// removeLiteral removes the literal bound to l's variable (matched by
// variable id, independent of sign) in O(1) by swapping with the last
// element.
func (c *Clause) removeLiteral(l Literal) {
	pos, ok := c.litIndex[l.ID()]
	if !ok {
		panic("dpllsat: removing a literal not present in the clause")
	}
	last := len(c.lits) - 1
	c.lits[pos] = c.lits[last]
	c.litIndex[c.lits[pos].ID()] = pos
	c.lits = c.lits[:last]
	delete(c.litIndex, l.ID())
}
