package word

import (
	"fmt"
	"strings"
)

// Term is a single symbol raised to a nonzero integer exponent.
type Term struct {
	Symbol rune
	Exp    int
}

// Word is an immutable reduced free-group word. The zero value is the
// identity (empty) word.
type Word struct {
	terms []Term
}

// Identity returns the empty word.
func Identity() Word {
	return Word{}
}

// Generator returns the one-term word sym^1.
func Generator(sym rune) Word {
	return Word{terms: []Term{{Symbol: sym, Exp: 1}}}
}

// New builds a word from the given terms, normalizing into reduced form.
func New(terms []Term) Word {
	return Word{terms: normalize(terms)}
}

// normalize merges adjacent equal symbols, drops zero exponents, and
// cascades cancellation through a stack.
func normalize(terms []Term) []Term {
	reduced := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Exp == 0 {
			continue
		}
		if n := len(reduced); n > 0 && reduced[n-1].Symbol == t.Symbol {
			reduced[n-1].Exp += t.Exp
			if reduced[n-1].Exp == 0 {
				reduced = reduced[:n-1]
			}
			continue
		}
		reduced = append(reduced, t)
	}
	return reduced
}

// Terms returns a copy of the reduced term sequence.
func (w Word) Terms() []Term {
	out := make([]Term, len(w.terms))
	copy(out, w.terms)
	return out
}

// Len returns the number of reduced terms.
func (w Word) Len() int {
	return len(w.terms)
}

// Compose concatenates w then other, applying reduction across the seam.
func (w Word) Compose(other Word) Word {
	joined := make([]Term, 0, len(w.terms)+len(other.terms))
	joined = append(joined, w.terms...)
	joined = append(joined, other.terms...)
	return Word{terms: normalize(joined)}
}

// Inverse reverses the term order and negates every exponent.
// It is involutive: w.Inverse().Inverse() equals w.
func (w Word) Inverse() Word {
	inverted := make([]Term, len(w.terms))
	for i, t := range w.terms {
		inverted[len(w.terms)-1-i] = Term{Symbol: t.Symbol, Exp: -t.Exp}
	}
	return Word{terms: inverted}
}

// IsIdentity reports whether w is the empty word.
func (w Word) IsIdentity() bool {
	return len(w.terms) == 0
}

// Equal reports whether w and other have identical reduced terms.
func (w Word) Equal(other Word) bool {
	if len(w.terms) != len(other.terms) {
		return false
	}
	for i, t := range w.terms {
		if other.terms[i] != t {
			return false
		}
	}
	return true
}

// String renders each term as "sym^exp" in sequence order; the
// empty word renders as "Id".
func (w Word) String() string {
	if len(w.terms) == 0 {
		return "Id"
	}
	var b strings.Builder
	for _, t := range w.terms {
		fmt.Fprintf(&b, "%c^%d", t.Symbol, t.Exp)
	}
	return b.String()
}
