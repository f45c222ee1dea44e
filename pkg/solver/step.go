package solver

import (
	"strings"
)

// Operator symbols carried by a Step. The small character codes match the
// printed operator; power steps use a dedicated range that also encodes
// how many square roots wrap the power (see powSymbol).
const (
	symAdd  = '+'
	symSub  = '-'
	symMul  = '*'
	symDiv  = '/'
	symSqrt = 's'
	symFact = '!'

	// (x! + y!) / y! and (x! - y!) / y!, the factorial neighbours.
	symFactSucc = symFact + 1
	symFactPred = symFact - 1

	// powBase+p encodes a power wrapped in p square roots; the negated
	// code marks the reciprocal variant. Disjoint from every character
	// symbol above.
	powBase = 0x100
)

// powSymbol encodes a power step whose printed form is prefix copies of
// "√" around first^second, negated for the reciprocal 1/(first^second).
func powSymbol(prefix int, reciprocal bool) int {
	code := powBase + prefix
	if reciprocal {
		return -code
	}
	return code
}

// Step is the parent pointer stored for every value in the graph: how the
// value was produced from at most two earlier values. Second is the zero
// value for unary steps. A leaf (repunit) step carries symbol 0 and points
// at itself; traversals stop there.
type Step[N Number[N]] struct {
	First  N
	Second N
	Symbol int
}

// IsLeaf reports whether the step is a repunit leaf.
func (s Step[N]) IsLeaf() bool { return s.Symbol == 0 }

// binary reports whether the step has a second operand.
func (s Step[N]) binary() bool {
	var zero N
	return s.Second != zero
}

// String renders the step in the transcript syntax: operands appear as
// their computed values, one operator application per step.
func (s Step[N]) String() string {
	switch sym := s.Symbol; {
	case sym == 0:
		return s.First.String()
	case sym == symSqrt:
		return "√" + s.First.String()
	case sym == symFact && !s.binary():
		return s.First.String() + "!"
	case sym == symFact:
		return s.First.String() + "! / " + s.Second.String() + "!"
	case sym == symFactSucc:
		return "(" + s.First.String() + "! + " + s.Second.String() + "!) / " + s.Second.String() + "!"
	case sym == symFactPred:
		return "(" + s.First.String() + "! - " + s.Second.String() + "!) / " + s.Second.String() + "!"
	case sym >= powBase || sym <= -powBase:
		reciprocal := sym < 0
		if reciprocal {
			sym = -sym
		}
		var b strings.Builder
		b.WriteString(strings.Repeat("√", sym-powBase))
		b.WriteString(s.First.String())
		b.WriteString("^")
		if reciprocal {
			b.WriteString("-")
		}
		b.WriteString(s.Second.String())
		return b.String()
	}
	return s.First.String() + " " + string(rune(s.Symbol)) + " " + s.Second.String()
}
