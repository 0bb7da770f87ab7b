// Package slp implements straight-line programs: symbolic expression
// trees that record how a group element was derived from generators,
// without ever evaluating intermediate results.
//
// What
//
//   - Expr: a tagged variant over Ident, Gen(index), Prod(left, right)
//     and Inv(inner). Sub-trees are shared by pointer and never copied,
//     so composing elements stays O(1) regardless of history length.
//   - Permutation: a (Expr, perm.Permutation) pair that mirrors every
//     group operation on both halves, keeping the symbolic derivation
//     consistent with the concrete action.
//   - Morphism: an assignment of a printable symbol to each generator
//     index; Evaluate folds an Expr into a reduced word.Word.
//
// The pairing invariant
//
//	Evaluating the Expr half under the true generator assignment must
//	reproduce the perm half. Elements built through FromGenerator and
//	the Compose/Inverse/Identity operations keep the invariant
//	automatically; New and Wrap trust the caller.
//
// No eager simplification
//
//	Prod and Inv grow the tree on every operation. Depth is bounded by
//	the work a stabilizer-chain sift performs, and evaluation happens
//	once, on demand, so the bookkeeping adds no asymptotic cost.
//
// Errors
//
//   - ErrUnmappedGenerator when Evaluate meets a generator index the
//     morphism was not built for.
//   - ErrInvalidExpr when Evaluate meets a nil or foreign Expr node.
package slp
