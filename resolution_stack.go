package dpllsat

// resolutionStackLevel pairs an ordered sequence of asserted literals (the
// first is the level's decision literal; the rest are propagations made
// within that level) with the LIFO of HistorySteps needed to undo every
// Formula mutation made at this level.
type resolutionStackLevel struct {
	literals []Literal
	history  History
}

func (lvl *resolutionStackLevel) pushLiteral(lit Literal) {
	lvl.literals = append(lvl.literals, lit)
}

func (lvl *resolutionStackLevel) firstLiteral() Literal {
	return lvl.literals[0]
}

// ResolutionStack is the per-decision-level undo log the iterative DPLL
// solver uses for backtracking: a non-empty deque of levels, where level 0
// holds the unit propagations performed before any decision.
type ResolutionStack struct {
	levels []*resolutionStackLevel
}

// NewResolutionStack returns a stack already holding level 0.
func NewResolutionStack() *ResolutionStack {
	return &ResolutionStack{levels: []*resolutionStackLevel{{}}}
}

// NextLevel pushes a new, empty level onto the stack.
func (s *ResolutionStack) NextLevel() {
	s.levels = append(s.levels, &resolutionStackLevel{})
}

// PopLevel removes the current (topmost) level. It panics if called at
// depth 1 (level 0 is never popped).
func (s *ResolutionStack) PopLevel() {
	if len(s.levels) <= 1 {
		panic("dpllsat: cannot pop the base resolution level")
	}
	s.levels = s.levels[:len(s.levels)-1]
}

// CurrentLevel returns the stack's depth (1 once initialized, growing by
// one per decision).
func (s *ResolutionStack) CurrentLevel() int {
	return len(s.levels)
}

func (s *ResolutionStack) top() *resolutionStackLevel {
	return s.levels[len(s.levels)-1]
}

// PushLiteral appends lit to the current level's literal sequence.
func (s *ResolutionStack) PushLiteral(lit Literal) {
	s.top().pushLiteral(lit)
}

// LastDecisionLiteral returns the first literal of the current (topmost)
// level — its decision literal.
func (s *ResolutionStack) LastDecisionLiteral() Literal {
	return s.top().firstLiteral()
}

// AddClause delegates to the current level's history.
func (s *ResolutionStack) AddClause(clause *Clause) {
	s.top().history.AddClause(clause)
}

// AddLiteral delegates to the current level's history.
func (s *ResolutionStack) AddLiteral(clause *Clause, literal Literal) {
	s.top().history.AddLiteral(clause, literal)
}

// Replay replays only the current (topmost) level's history against f.
func (s *ResolutionStack) Replay(f *Formula) {
	s.top().history.Replay(f)
}

// CurrentLiterals returns the asserted-literal sequence of the current
// level (decision literal first, propagations following).
func (s *ResolutionStack) CurrentLiterals() []Literal {
	return s.top().literals
}
