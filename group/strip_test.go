package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/katalvlaran/permgroup/slp"
	"github.com/katalvlaran/permgroup/word"
)

// sixPointFixture builds the chain over slp elements for the generators
// t = (3 5) and r = (0 1 2 3 4 5), plus the morphism {0↦t, 1↦r}.
func sixPointFixture(t *testing.T) (*group.Group[slp.Permutation], slp.Morphism, map[rune]perm.Permutation) {
	t.Helper()
	tPerm := mustPerm(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 5, 4: 4, 5: 3})
	rPerm := mustPerm(t, map[int]int{0: 1, 1: 2, 2: 3, 3: 4, 4: 5, 5: 0})

	gens := []slp.Permutation{
		slp.FromGenerator(0, tPerm),
		slp.FromGenerator(1, rPerm),
	}
	g, err := group.New([]int{0, 1, 2, 3, 4, 5}, gens)
	require.NoError(t, err)

	morphism := slp.NewMorphism(map[int]rune{0: 't', 1: 'r'})
	bySymbol := map[rune]perm.Permutation{'t': tPerm, 'r': rPerm}
	return g, morphism, bySymbol
}

// replayWord substitutes generator permutations for symbols and composes
// in word order (rightmost term acts first).
func replayWord(t *testing.T, w word.Word, bySymbol map[rune]perm.Permutation) perm.Permutation {
	t.Helper()
	result := bySymbol['r'].Identity()
	for _, term := range w.Terms() {
		g, ok := bySymbol[term.Symbol]
		require.True(t, ok, "unknown symbol %q", term.Symbol)
		step := g
		exp := term.Exp
		if exp < 0 {
			step = g.Inverse()
			exp = -exp
		}
		for i := 0; i < exp; i++ {
			result = result.Compose(step)
		}
	}
	return result
}

// TestStrip_GeneratorsAreMembers: every generator must sift to an
// identity residual.
func TestStrip_GeneratorsAreMembers(t *testing.T) {
	g, _, _ := sixPointFixture(t)
	tPerm := mustPerm(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 5, 4: 4, 5: 3})
	rPerm := mustPerm(t, map[int]int{0: 1, 1: 2, 2: 3, 3: 4, 4: 5, 5: 0})

	for i, p := range []perm.Permutation{tPerm, rPerm} {
		res, err := g.Strip(slp.FromGenerator(i, p))
		require.NoError(t, err)
		assert.True(t, res.Member, "generator %d should be a member", i)
		assert.True(t, res.Residual.IsIdentity())
		assert.Equal(t, g.Depth(), res.Level)
	}
}

// TestStrip_SolvesScramble is the end-to-end scenario: sift the scramble
// s = (0 1)(2 5)(3 4), render the residual's inverse under the morphism,
// and replay the word to reconstruct s exactly.
func TestStrip_SolvesScramble(t *testing.T) {
	g, morphism, bySymbol := sixPointFixture(t)
	scramble := mustPerm(t, map[int]int{0: 1, 1: 0, 2: 5, 3: 4, 4: 3, 5: 2})

	res, err := g.Strip(slp.Wrap(scramble))
	require.NoError(t, err)
	require.True(t, res.Member, "scramble should be expressible in the generators")
	require.True(t, res.Residual.IsIdentity())

	residualWord, err := morphism.Evaluate(res.Residual.Expr())
	require.NoError(t, err)

	// The residual word replays to the scramble's inverse; its inverse is
	// the word reaching the scramble from the solved state.
	reaching := residualWord.Inverse()
	replayed := replayWord(t, reaching, bySymbol)
	assert.True(t, replayed.Equal(scramble),
		"replaying %s should reconstruct %s, got %s", reaching, scramble, replayed)

	// And the residual word itself solves the scrambled state.
	solved := replayWord(t, residualWord, bySymbol).Compose(scramble)
	assert.True(t, solved.IsIdentity(), "solving word should undo the scramble")
}

// TestStrip_NonMember_OutsideSupport: a candidate moving a point the
// group never touches can not be a member, and must never produce a
// false identity residual.
func TestStrip_NonMember_OutsideSupport(t *testing.T) {
	g, _, _ := sixPointFixture(t)
	// swaps 0 and 8: the image of a base point leaves the domain
	candidate := mustPerm(t, map[int]int{0: 8, 8: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 7: 7})

	res, err := g.Strip(slp.Wrap(candidate))
	require.NoError(t, err)

	assert.False(t, res.Member)
	assert.Less(t, res.Level, g.Depth(), "sifting should stop at the level whose orbit excludes the image")
	assert.False(t, res.Residual.IsIdentity())
}

// TestStrip_NonMember_InsideDomain: (0 1) stays inside the domain but
// breaks the partition the group preserves.
func TestStrip_NonMember_InsideDomain(t *testing.T) {
	g, _, _ := sixPointFixture(t)
	candidate := mustPerm(t, map[int]int{0: 1, 1: 0, 2: 2, 3: 3, 4: 4, 5: 5})

	res, err := g.Strip(slp.Wrap(candidate))
	require.NoError(t, err)

	assert.False(t, res.Member)
	assert.False(t, res.Residual.IsIdentity(), "a non-member must never sift to an identity residual")
}

// TestStrip_ResidualWordDiagnostic: for a non-member that passes some
// levels, the residual expression still evaluates to a word.
func TestStrip_ResidualWordDiagnostic(t *testing.T) {
	g, morphism, _ := sixPointFixture(t)
	candidate := mustPerm(t, map[int]int{0: 1, 1: 0, 2: 2, 3: 3, 4: 4, 5: 5})

	res, err := g.Strip(slp.Wrap(candidate))
	require.NoError(t, err)
	require.False(t, res.Member)

	_, err = morphism.Evaluate(res.Residual.Expr())
	assert.NoError(t, err, "diagnostic residual should still render")
}

// TestStrip_CandidateUndefinedOnBase propagates Apply errors instead of
// mislabeling them as NonMember.
func TestStrip_CandidateUndefinedOnBase(t *testing.T) {
	g, _, _ := sixPointFixture(t)
	narrow := mustPerm(t, map[int]int{8: 9, 9: 8})

	_, err := g.Strip(slp.Wrap(narrow))

	require.ErrorIs(t, err, perm.ErrOutOfDomain)
}

// TestStrip_DoesNotMutateChain sifts twice and expects identical results.
func TestStrip_DoesNotMutateChain(t *testing.T) {
	g, morphism, _ := sixPointFixture(t)
	scramble := mustPerm(t, map[int]int{0: 1, 1: 0, 2: 5, 3: 4, 4: 3, 5: 2})

	first, err := g.Strip(slp.Wrap(scramble))
	require.NoError(t, err)
	second, err := g.Strip(slp.Wrap(scramble))
	require.NoError(t, err)

	w1, err := morphism.Evaluate(first.Residual.Expr())
	require.NoError(t, err)
	w2, err := morphism.Evaluate(second.Residual.Expr())
	require.NoError(t, err)

	assert.Equal(t, first.Member, second.Member)
	assert.True(t, w1.Equal(w2), "sifting must be deterministic and side-effect free")
}
