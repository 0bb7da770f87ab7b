// Package perm implements finite permutations - bijections of a finite
// set of integer-labeled points - together with the value algebra needed
// to treat them as group elements.
//
// What
//
//   - Permutation: an immutable point→image mapping over an explicit
//     domain, validated to be a true bijection at construction.
//   - Compose, Inverse, Identity, IsIdentity, Equal: the full group
//     element operation set.
//   - Apply: the action of the permutation on a single point.
//   - Cycle-notation rendering via String (e.g. "(0 1 2)(3 4)").
//
// Why
//
//   - Permutations under composition form the concrete half of puzzle
//     group computations: orbits, stabilizer chains, and membership
//     sifting all reduce to Apply and Compose calls.
//
// Composition convention
//
//	Composition acts right-to-left: a.Compose(b) maps p to a(b(p)),
//	so b acts first. The same convention is used everywhere in this
//	module (slp, group).
//
// Domains
//
//	Two permutations over different domains may be composed; the result
//	is defined over the union of both domains, with each operand fixing
//	the points it does not declare. Apply, in contrast, is strict: a
//	point outside the declared domain yields ErrOutOfDomain.
//
// Complexity (n = domain size)
//
//   - Apply:               O(1)
//   - Compose, Inverse:    O(n)
//   - IsIdentity, Equal:   O(n)
//   - String:              O(n)
//
// Errors
//
//   - ErrMalformedPermutation  if a construction input is not a bijection.
//   - ErrOutOfDomain           if Apply is given a point outside the domain.
package perm
