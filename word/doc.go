// Package word implements reduced free-group words: ordered sequences of
// (symbol, exponent) terms denoting move sequences of a puzzle.
//
// What
//
//   - Word: an immutable sequence of terms with nonzero exponents where
//     no two adjacent terms share a symbol (the canonical reduced form).
//   - Compose concatenates with reduction; Inverse reverses the order and
//     negates every exponent.
//   - String renders "sym^exp" per term with the exponent always written
//     out, e.g. "t^1r^-2"; the empty word renders "Id".
//
// Why
//
//   - Stabilizer-chain sifting recovers a symbolic derivation of a
//     scrambled state. Evaluating that derivation under a morphism yields
//     a Word - the replayable move sequence handed back to the solver.
//
// Reduction
//
//	Normalization merges adjacent terms with equal symbols by summing
//	exponents and drops terms whose exponent reaches zero. Cancellation
//	cascades: "x^1 y^1 y^-1 x^1" reduces to "x^2".
//
// Properties
//
//   - Inverse is involutive: w.Inverse().Inverse() equals w.
//   - Compose is associative and Identity() is its neutral element.
package word
