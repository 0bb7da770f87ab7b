package slp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/permgroup/word"
)

// Sentinel errors for morphism evaluation.
var (
	// ErrUnmappedGenerator is returned when an expression references a
	// generator index the morphism has no symbol for.
	ErrUnmappedGenerator = errors.New("slp: generator has no assigned symbol")

	// ErrInvalidExpr is returned when evaluation meets a nil or foreign
	// expression node.
	ErrInvalidExpr = errors.New("slp: invalid expression node")
)

// Morphism assigns a printable symbol to each generator index. It is
// pure and total over the generators it was built for.
type Morphism struct {
	symbols map[int]rune
}

// NewMorphism builds a morphism from a generator-index→symbol table.
func NewMorphism(symbols map[int]rune) Morphism {
	cp := make(map[int]rune, len(symbols))
	for i, sym := range symbols {
		cp[i] = sym
	}
	return Morphism{symbols: cp}
}

// Evaluate folds an expression into a reduced word: Ident yields the
// empty word, Gen a singleton term, Prod concatenates left then right,
// and Inv inverts the inner word.
func (m Morphism) Evaluate(e Expr) (word.Word, error) {
	switch n := e.(type) {
	case *Ident:
		return word.Identity(), nil
	case *Gen:
		sym, ok := m.symbols[n.Index]
		if !ok {
			return word.Word{}, fmt.Errorf("%w: G_%d", ErrUnmappedGenerator, n.Index)
		}
		return word.Generator(sym), nil
	case *Prod:
		left, err := m.Evaluate(n.Left)
		if err != nil {
			return word.Word{}, err
		}
		right, err := m.Evaluate(n.Right)
		if err != nil {
			return word.Word{}, err
		}
		return left.Compose(right), nil
	case *Inv:
		inner, err := m.Evaluate(n.Inner)
		if err != nil {
			return word.Word{}, err
		}
		return inner.Inverse(), nil
	default:
		return word.Word{}, fmt.Errorf("%w: %T", ErrInvalidExpr, e)
	}
}
