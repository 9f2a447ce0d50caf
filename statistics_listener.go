package dpllsat

// StatisticsListener counts decisions, propagations, conflicts, and
// backtracks over one solve.
type StatisticsListener struct {
	NoopListener

	Decisions    int64
	Propagations int64
	Conflicts    int64
	Backtracks   int64
}

func (s *StatisticsListener) OnDecide(Literal) {
	s.Decisions++
}

func (s *StatisticsListener) OnPropagate(Literal, *Clause) {
	s.Propagations++
}

func (s *StatisticsListener) OnConflict(*Clause) {
	s.Conflicts++
}

func (s *StatisticsListener) OnBacktrack(Literal) {
	s.Backtracks++
}
