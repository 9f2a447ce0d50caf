package dpllsat

import "fmt"

// Sign is the polarity of a literal.
type Sign int8

const (
	// Positive marks an unnegated literal occurrence.
	Positive Sign = 1
	// Negative marks a negated literal occurrence.
	Negative Sign = -1
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return ""
}

func (s Sign) opposite() Sign {
	return -s
}

// RawLiteral is a signed integer token as produced by a loader, with no
// binding to a Formula yet. ID is always positive; Sign carries the
// polarity.
type RawLiteral struct {
	ID   int
	Sign Sign
}

// NewRawLiteral builds a RawLiteral from a DIMACS-style signed integer (e.g.
// -3 means variable 3, negative). It panics if n is zero: the loader must
// never hand a zero token to the core, since 0 is the clause terminator.
func NewRawLiteral(n int) RawLiteral {
	if n == 0 {
		panic("dpllsat: zero is not a valid literal")
	}
	if n < 0 {
		return RawLiteral{ID: -n, Sign: Negative}
	}
	return RawLiteral{ID: n, Sign: Positive}
}

// Int renders the RawLiteral back to its signed-integer form.
func (l RawLiteral) Int() int {
	if l.Sign == Negative {
		return -l.ID
	}
	return l.ID
}

func (l RawLiteral) String() string {
	return fmt.Sprintf("%sx%d", l.Sign, l.ID)
}

// Literal is a non-owning (Variable, sign) pair. It is valid only while its
// Variable is alive in the owning Formula. SameVariable compares two
// literals by variable only; Equal also compares their signs.
type Literal struct {
	Var  *Variable
	Sign Sign
}

// noLiteral is the sentinel returned by Formula.FindUnitLiteral when no unit
// clause exists: its Var is nil.
var noLiteral = Literal{}

// IsZero reports whether l is the "no literal found" sentinel.
func (l Literal) IsZero() bool {
	return l.Var == nil
}

// Negate returns the literal's negation: same variable, flipped sign.
func (l Literal) Negate() Literal {
	return Literal{Var: l.Var, Sign: l.Sign.opposite()}
}

// IsPositive reports whether the literal is unnegated.
func (l Literal) IsPositive() bool {
	return l.Sign == Positive
}

// IsNegative reports whether the literal is negated.
func (l Literal) IsNegative() bool {
	return l.Sign == Negative
}

// ID returns the identifier of the underlying variable.
func (l Literal) ID() int {
	return l.Var.id
}

// Equal reports whether l and other refer to the same variable with the
// same sign.
func (l Literal) Equal(other Literal) bool {
	return l.Var == other.Var && l.Sign == other.Sign
}

// SameVariable reports whether l and other refer to the same variable,
// regardless of sign.
func (l Literal) SameVariable(other Literal) bool {
	return l.Var == other.Var
}

func (l Literal) String() string {
	if l.Var == nil {
		return "<none>"
	}
	return fmt.Sprintf("%sx%d", l.Sign, l.Var.id)
}

// Int renders the literal as a signed integer, e.g. for printing solutions.
func (l Literal) Int() int {
	if l.Sign == Negative {
		return -l.Var.id
	}
	return l.Var.id
}
