package dpllsat

// historyStep is the inverse of one Formula mutation. It has exactly two
// shapes, encoded as a small tagged-union interface rather than a class
// hierarchy.
type historyStep interface {
	undo(f *Formula)
}

// removeClauseStep undoes a Formula.RemoveClause by re-activating the
// clause with all of its original literals.
type removeClauseStep struct {
	clause *Clause
}

func (s removeClauseStep) undo(f *Formula) {
	f.AddClause(s.clause)
}

// removeLiteralStep undoes a Formula.RemoveLiteralFromClause by
// re-inserting the removed literal into the clause and re-linking the
// occurrence.
type removeLiteralStep struct {
	clause  *Clause
	literal Literal
}

func (s removeLiteralStep) undo(f *Formula) {
	f.AddLiteralToClause(s.clause, s.literal)
}

// History is a LIFO of historySteps: the inverse, in order, of every
// mutation applied to a Formula since the history was last replayed.
type History struct {
	steps []historyStep
}

// AddClause records that clause was removed from the formula, pushing a
// RemoveClause-undo step.
func (h *History) AddClause(clause *Clause) {
	h.steps = append(h.steps, removeClauseStep{clause: clause})
}

// AddLiteral records that literal was removed from clause, pushing a
// RemoveLiteralFromClause-undo step.
func (h *History) AddLiteral(clause *Clause, literal Literal) {
	h.steps = append(h.steps, removeLiteralStep{clause: clause, literal: literal})
}

// Replay pops every step in LIFO order and applies its inverse to f. After
// Replay, the history is empty.
func (h *History) Replay(f *Formula) {
	for i := len(h.steps) - 1; i >= 0; i-- {
		h.steps[i].undo(f)
	}
	h.steps = h.steps[:0]
}

// Len reports how many steps are currently recorded.
func (h *History) Len() int {
	return len(h.steps)
}
