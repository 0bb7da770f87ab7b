// Package permgroup is an in-memory engine for finite permutation
// groups: decide whether a scrambled puzzle state is reachable from a
// set of generator moves, and recover an explicit, replayable move
// sequence when it is.
//
// 🚀 What is permgroup?
//
//	A pure-Go library built around stabilizer chains (Schreier-Sims):
//		• perm:  permutation values - compose, invert, apply, cycle notation
//		• slp:   straight-line programs pairing every element with the
//		         symbolic derivation that produced it, plus morphisms
//		         rendering derivations as move words
//		• word:  reduced free-group words - the replayable move sequences
//		• group: stabilizer-chain construction, orbits, transversals, and
//		         the strip/sift membership test
//
// ✨ Why choose permgroup?
//
//   - Constructive answers - membership comes with a witness word, not
//     just a boolean
//   - Rock-solid guarantees - immutable values, deterministic chains,
//     sentinel errors throughout
//   - Pure Go - no cgo, tiny dependency surface
//   - Generic - any algebra with the group.Element capability set can be
//     sifted, with or without word tracking
//
// Quick ASCII example, the hexagon puzzle:
//
//	    0───1
//	   ╱     ╲          moves: t = (3 5), r = (0 1 2 3 4 5)
//	  5       2         scramble: s = (0 1)(2 5)(3 4)
//	   ╲     ╱
//	    4───3
//
//	strip s through the chain built from {t, r}; the residual's
//	derivation, rendered under {0↦t, 1↦r} and inverted, is a word whose
//	replay reconstructs s exactly.
//
// The cmd/permgroup binary wraps the same pipeline for YAML puzzle
// definitions: membership tests, solving words, and chain inspection.
package permgroup
