package claims

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2"
)

// Bound is a cost bound in a restricted rational-linear form:
//
//	COEF                 "32"
//	COEF*n               "4*n"
//	COEF*(n-OFF)         "4*(n-1)"
//
// each optionally divided by a positive integer, as in "16*(n-1)/5". The
// tiny language covers every bound family the study states while keeping
// claim files declarative. Whitespace between tokens is ignored.
type Bound struct {
	coef   int
	linear bool // a *n or *(n-OFF) factor is present
	offset int
	div    int // 0 when absent
}

// boundExpr is the parsed shape of a bound formula:
//
//	COEF ( "*" ( "n" | "(" "n" "-" OFF ")" ) )? ( "/" DIV )?
type boundExpr struct {
	Coef int       `parser:"@Int"`
	Term *termExpr `parser:"(\"*\" @@)?"`
	Div  *int      `parser:"(\"/\" @Int)?"`
}

// termExpr is the linear factor: bare n or an offset form (n-OFF).
type termExpr struct {
	Plain  bool `parser:"@\"n\""`
	Offset *int `parser:"| \"(\" \"n\" \"-\" @Int \")\""`
}

var parseBoundExpr = participle.MustBuild[boundExpr]()

// ParseBound parses a bound formula. Anything outside the form above
// (higher powers, identifiers other than n, signed numbers, trailing
// garbage) yields ErrBadFormula, as does a non-positive divisor.
func ParseBound(formula string) (*Bound, error) {
	expr, err := parseBoundExpr.ParseString("", formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadFormula, formula, err)
	}

	b := &Bound{coef: expr.Coef}
	if expr.Term != nil {
		b.linear = true
		if expr.Term.Offset != nil {
			b.offset = *expr.Term.Offset
		}
	}
	if expr.Div != nil {
		if *expr.Div <= 0 {
			return nil, fmt.Errorf("%w: %q: divisor must be positive", ErrBadFormula, formula)
		}
		b.div = *expr.Div
	}

	return b, nil
}

// Eval substitutes the point count and returns the bound value, multiplying
// before dividing so "16*(n-1)/5" at n=6 is exactly 16. A nil bound is
// unbounded: Eval returns +Inf.
func (b *Bound) Eval(n int) float64 {
	if b == nil {
		return math.Inf(1)
	}

	v := float64(b.coef)
	if b.linear {
		v *= float64(n - b.offset)
	}
	if b.div > 0 {
		v /= float64(b.div)
	}

	return v
}

// String reconstructs the canonical formula text; the zero offset prints as
// bare n. A nil bound prints empty.
func (b *Bound) String() string {
	if b == nil {
		return ""
	}

	s := strconv.Itoa(b.coef)
	if b.linear {
		if b.offset > 0 {
			s += fmt.Sprintf("*(n-%d)", b.offset)
		} else {
			s += "*n"
		}
	}
	if b.div > 0 {
		s += "/" + strconv.Itoa(b.div)
	}

	return s
}
