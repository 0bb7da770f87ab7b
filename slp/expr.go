package slp

import "fmt"

// Expr is one node of a straight-line program. Implementations are
// *Ident, *Gen, *Prod and *Inv; sub-trees are shared, never deep-copied.
type Expr interface {
	fmt.Stringer

	// slpExpr restricts implementations to this package's variants.
	slpExpr()
}

// Ident is the identity derivation.
type Ident struct{}

// Gen references a generator by its index.
type Gen struct {
	Index int
}

// Prod is the product of two derivations; Right acts first under the
// module-wide right-to-left convention.
type Prod struct {
	Left  Expr
	Right Expr
}

// Inv is the inverse of a derivation.
type Inv struct {
	Inner Expr
}

func (*Ident) slpExpr() {}
func (*Gen) slpExpr()   {}
func (*Prod) slpExpr()  {}
func (*Inv) slpExpr()   {}

func (*Ident) String() string { return "Id" }

func (g *Gen) String() string { return fmt.Sprintf("G_%d", g.Index) }

func (p *Prod) String() string {
	return fmt.Sprintf("(%s) * (%s)", p.Left, p.Right)
}

func (v *Inv) String() string { return fmt.Sprintf("(%s)^-1", v.Inner) }
