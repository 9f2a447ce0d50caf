package dpllsat

// VariableSelector picks which active variable to decide on next. All
// provided implementations are deterministic and side-effect-free.
type VariableSelector interface {
	SelectVariable(f *Formula) *Variable
}

// PolaritySelector picks the sign to assign a chosen variable.
type PolaritySelector interface {
	SelectSign(v *Variable) Sign
}

// LiteralSelector is the decision heuristic: a function of the current
// formula to a Literal. ComposedSelector is the provided composition
// pattern (VariableSelector x PolaritySelector); a LiteralSelector need not
// be built that way, but every concrete selector below is.
type LiteralSelector interface {
	SelectLiteral(f *Formula) Literal
}

// ComposedSelector selects a variable via Variables, then a polarity for it
// via Polarity.
type ComposedSelector struct {
	Variables VariableSelector
	Polarity  PolaritySelector
}

// SelectLiteral implements LiteralSelector. It returns the zero Literal if
// the formula has no active variables.
func (c ComposedSelector) SelectLiteral(f *Formula) Literal {
	v := c.Variables.SelectVariable(f)
	if v == nil {
		return noLiteral
	}
	return Literal{Var: v, Sign: c.Polarity.SelectSign(v)}
}

// FirstVariableSelector selects the first variable in the formula's active
// iteration order.
type FirstVariableSelector struct{}

func (FirstVariableSelector) SelectVariable(f *Formula) *Variable {
	vars := f.Variables()
	if len(vars) == 0 {
		return nil
	}
	return vars[0]
}

// LeastUsedVariableSelector selects the variable minimizing the sum of its
// positive and negative occurrence counts.
type LeastUsedVariableSelector struct{}

func (LeastUsedVariableSelector) SelectVariable(f *Formula) *Variable {
	var best *Variable
	var bestCount int
	for _, v := range f.Variables() {
		c := v.CountAllOccurrences()
		if best == nil || c < bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

// MostUsedVariableSelector selects the variable maximizing the sum of its
// positive and negative occurrence counts.
type MostUsedVariableSelector struct{}

func (MostUsedVariableSelector) SelectVariable(f *Formula) *Variable {
	var best *Variable
	var bestCount int
	for _, v := range f.Variables() {
		c := v.CountAllOccurrences()
		if best == nil || c > bestCount {
			best, bestCount = v, c
		}
	}
	return best
}

// PositiveFirstPolaritySelector returns Positive unless the variable has no
// positive occurrence, in which case it returns Negative.
type PositiveFirstPolaritySelector struct{}

func (PositiveFirstPolaritySelector) SelectSign(v *Variable) Sign {
	if !v.HasOccurrence(Positive) {
		return Negative
	}
	return Positive
}

// MostUsedPolaritySelector returns the sign with at least as many
// occurrences as the other.
type MostUsedPolaritySelector struct{}

func (MostUsedPolaritySelector) SelectSign(v *Variable) Sign {
	if v.CountOccurrences(Negative) > v.CountOccurrences(Positive) {
		return Negative
	}
	return Positive
}

// CachingPolaritySelector remembers the last sign asserted per variable id
// (phase saving) and reuses it on future decisions of the same variable,
// falling back to Default when no phase has been cached yet. It implements
// Listener so it can be registered to observe OnAssert.
type CachingPolaritySelector struct {
	NoopListener

	Default PolaritySelector
	cache   map[int]Sign
}

// NewCachingPolaritySelector returns a CachingPolaritySelector that falls
// back to def when a variable has no cached phase yet.
func NewCachingPolaritySelector(def PolaritySelector) *CachingPolaritySelector {
	return &CachingPolaritySelector{Default: def, cache: make(map[int]Sign)}
}

func (c *CachingPolaritySelector) SelectSign(v *Variable) Sign {
	if sign, ok := c.cache[v.id]; ok {
		return sign
	}
	return c.Default.SelectSign(v)
}

// OnAssert implements Listener: it caches the sign of every asserted
// literal for future decisions on that variable.
func (c *CachingPolaritySelector) OnAssert(lit Literal) {
	if c.cache == nil {
		c.cache = make(map[int]Sign)
	}
	c.cache[lit.ID()] = lit.Sign
}
