package slp

import (
	"fmt"

	"github.com/katalvlaran/permgroup/perm"
)

// Permutation pairs a symbolic derivation with its concrete action.
// Every group operation mirrors on both halves, so the pairing invariant
// propagates automatically through library-provided operations.
type Permutation struct {
	expr Expr
	perm perm.Permutation
}

// New pairs an arbitrary expression with a permutation. The caller is
// trusted to keep the pairing invariant: the expression, evaluated under
// the true generator assignment, must equal p.
func New(expr Expr, p perm.Permutation) Permutation {
	return Permutation{expr: expr, perm: p}
}

// FromGenerator pairs generator index i with its permutation.
func FromGenerator(i int, p perm.Permutation) Permutation {
	return Permutation{expr: &Gen{Index: i}, perm: p}
}

// Wrap pairs p with the identity derivation. This is how membership
// candidates enter a sift: the residual's expression then records
// exactly the transversal inverses applied along the way.
func Wrap(p perm.Permutation) Permutation {
	return Permutation{expr: &Ident{}, perm: p}
}

// Expr returns the symbolic half.
func (s Permutation) Expr() Expr {
	return s.expr
}

// Perm returns the concrete half.
func (s Permutation) Perm() perm.Permutation {
	return s.perm
}

// Compose mirrors composition on both halves; other acts first.
func (s Permutation) Compose(other Permutation) Permutation {
	return Permutation{
		expr: &Prod{Left: s.expr, Right: other.expr},
		perm: s.perm.Compose(other.perm),
	}
}

// Inverse mirrors inversion on both halves.
func (s Permutation) Inverse() Permutation {
	return Permutation{
		expr: &Inv{Inner: s.expr},
		perm: s.perm.Inverse(),
	}
}

// Identity returns the identity element over the same domain.
func (s Permutation) Identity() Permutation {
	return Permutation{expr: &Ident{}, perm: s.perm.Identity()}
}

// IsIdentity delegates to the concrete half only: triviality is defined
// by the action, and distinct derivations may denote the same
// permutation.
func (s Permutation) IsIdentity() bool {
	return s.perm.IsIdentity()
}

// Equal compares the concrete halves only, for the same reason
// IsIdentity does.
func (s Permutation) Equal(other Permutation) bool {
	return s.perm.Equal(other.perm)
}

// Apply delegates the action to the concrete half.
func (s Permutation) Apply(p int) (int, error) {
	return s.perm.Apply(p)
}

// String renders the concrete half in cycle notation alongside the
// derivation.
func (s Permutation) String() string {
	return fmt.Sprintf("%s = %s", s.perm, s.expr)
}
