package dpllsat

// Variable is identified by a positive id and caches two occurrence lists —
// one per polarity — into the Clauses of the owning Formula that currently
// contain it. The Formula is the sole authority allowed to mutate these
// lists; everything else holds non-owning references.
type Variable struct {
	id int

	positive []*Clause
	negative []*Clause

	// posIndex/negIndex map a clause id to its position in positive/negative,
	// so removal is O(1) instead of a linear scan-and-shift.
	posIndex map[int]int
	negIndex map[int]int

	used bool
}

func newVariable(id int) *Variable {
	return &Variable{
		id:       id,
		posIndex: make(map[int]int),
		negIndex: make(map[int]int),
		used:     true,
	}
}

// ID returns the variable's identifier.
func (v *Variable) ID() int {
	return v.id
}

func (v *Variable) occurrences(s Sign) []*Clause {
	if s == Positive {
		return v.positive
	}
	return v.negative
}

func (v *Variable) index(s Sign) map[int]int {
	if s == Positive {
		return v.posIndex
	}
	return v.negIndex
}

// HasOccurrence reports whether the variable appears with sign s in some
// active clause.
func (v *Variable) HasOccurrence(s Sign) bool {
	return len(v.occurrences(s)) > 0
}

// CountOccurrences returns the number of active clauses containing v with
// sign s.
func (v *Variable) CountOccurrences(s Sign) int {
	return len(v.occurrences(s))
}

// CountAllOccurrences returns the total number of active clauses containing
// v, of either sign.
func (v *Variable) CountAllOccurrences() int {
	return len(v.positive) + len(v.negative)
}

// FirstOccurrence returns the first active clause containing v with sign s,
// or nil if there is none.
func (v *Variable) FirstOccurrence(s Sign) *Clause {
	list := v.occurrences(s)
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// addOccurrence links clause c into v's s-occurrence list. Callers (Formula
// primitives) are responsible for keeping the reverse link on c consistent.
func (v *Variable) addOccurrence(c *Clause, s Sign) {
	idx := v.index(s)
	if s == Positive {
		idx[c.id] = len(v.positive)
		v.positive = append(v.positive, c)
	} else {
		idx[c.id] = len(v.negative)
		v.negative = append(v.negative, c)
	}
}

// removeOccurrence unlinks clause c from v's s-occurrence list in O(1) by
// swapping with the last element.
func (v *Variable) removeOccurrence(c *Clause, s Sign) {
	idx := v.index(s)
	pos, ok := idx[c.id]
	if !ok {
		panic("dpllsat: removing an occurrence that is not linked")
	}
	if s == Positive {
		last := len(v.positive) - 1
		v.positive[pos] = v.positive[last]
		idx[v.positive[pos].id] = pos
		v.positive = v.positive[:last]
	} else {
		last := len(v.negative) - 1
		v.negative[pos] = v.negative[last]
		idx[v.negative[pos].id] = pos
		v.negative = v.negative[:last]
	}
	delete(idx, c.id)
}
