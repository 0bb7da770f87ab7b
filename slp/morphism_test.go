package slp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/slp"
	"github.com/katalvlaran/permgroup/word"
)

// TestEvaluate_Variants covers all four node kinds.
func TestEvaluate_Variants(t *testing.T) {
	m := slp.NewMorphism(map[int]rune{0: 't', 1: 'r'})

	cases := []struct {
		name string
		expr slp.Expr
		want string
	}{
		{"identity", &slp.Ident{}, "Id"},
		{"generator", &slp.Gen{Index: 1}, "r^1"},
		{"product", &slp.Prod{Left: &slp.Gen{Index: 0}, Right: &slp.Gen{Index: 1}}, "t^1r^1"},
		{"inverse", &slp.Inv{Inner: &slp.Gen{Index: 0}}, "t^-1"},
		{
			"product reduces across the seam",
			&slp.Prod{Left: &slp.Gen{Index: 1}, Right: &slp.Inv{Inner: &slp.Gen{Index: 1}}},
			"Id",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := m.Evaluate(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.String())
		})
	}
}

// TestEvaluate_InverseLaw checks evaluate(Inv(s)) == evaluate(s).Inverse().
func TestEvaluate_InverseLaw(t *testing.T) {
	m := slp.NewMorphism(map[int]rune{0: 't', 1: 'r'})
	inner := &slp.Prod{
		Left:  &slp.Gen{Index: 0},
		Right: &slp.Prod{Left: &slp.Gen{Index: 1}, Right: &slp.Gen{Index: 1}},
	}

	direct, err := m.Evaluate(&slp.Inv{Inner: inner})
	require.NoError(t, err)
	evaluated, err := m.Evaluate(inner)
	require.NoError(t, err)

	assert.True(t, direct.Equal(evaluated.Inverse()))
	assert.Equal(t, "r^-2t^-1", direct.String())
}

// TestEvaluate_UnmappedGenerator surfaces the missing-symbol error.
func TestEvaluate_UnmappedGenerator(t *testing.T) {
	m := slp.NewMorphism(map[int]rune{0: 't'})

	_, err := m.Evaluate(&slp.Prod{Left: &slp.Gen{Index: 0}, Right: &slp.Gen{Index: 7}})

	require.ErrorIs(t, err, slp.ErrUnmappedGenerator)
}

// TestEvaluate_InvalidExpr rejects nil nodes.
func TestEvaluate_InvalidExpr(t *testing.T) {
	m := slp.NewMorphism(nil)

	_, err := m.Evaluate(nil)

	require.ErrorIs(t, err, slp.ErrInvalidExpr)

	_, err = m.Evaluate(&slp.Inv{Inner: nil})
	require.ErrorIs(t, err, slp.ErrInvalidExpr)
}

// TestExprString covers the diagnostic rendering of raw nodes.
func TestExprString(t *testing.T) {
	product := &slp.Prod{Left: &slp.Gen{Index: 1}, Right: &slp.Gen{Index: 2}}

	assert.Equal(t, "Id", (&slp.Ident{}).String())
	assert.Equal(t, "G_1", (&slp.Gen{Index: 1}).String())
	assert.Equal(t, "(G_1) * (G_2)", product.String())
	assert.Equal(t, "(G_1)^-1", (&slp.Inv{Inner: &slp.Gen{Index: 1}}).String())

	var zero word.Word
	assert.Equal(t, "Id", zero.String(), "zero word should render as identity")
}
