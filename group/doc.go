// Package group implements finite permutation groups given by
// generators, via stabilizer chains (Schreier-Sims style), and exposes
// the strip/sift membership test that also recovers an explicit
// generator word for every member.
//
// What
//
//   - Element: the generic capability set a group element must expose -
//     Compose, Inverse, Identity, IsIdentity, Equal, Apply. Both
//     perm.Permutation (bare action) and slp.Permutation (action plus
//     symbolic derivation) satisfy it.
//   - Group: an immutable stabilizer chain built eagerly at construction
//     from a domain listing and a generator list.
//   - Strip: the level-by-level sift. It returns a StripResult whose
//     Residual is the candidate with one transversal inverse applied per
//     level; membership holds iff the residual action is the identity.
//   - Order, Depth, Levels, String: chain diagnostics.
//
// How the chain is built
//
//  1. Pick a base point: the first domain point (in listing order, or in
//     WithBaseOrder preference order) moved by some current generator.
//  2. Compute the orbit of the base by breadth-first exploration under
//     the current generators, recording for each discovered point a
//     transversal element (discovering generator composed onto the
//     predecessor's transversal) that carries the base to it.
//  3. Form Schreier generators t(g·p)⁻¹ ∘ g ∘ t(p) for every orbit
//     point p and generator g; they generate the stabilizer of the base
//     and seed the next level. Identity and duplicate elements are
//     dropped.
//  4. Recurse until the generators fix every remaining point.
//
// Membership and word recovery
//
//	Strip never mutates the chain. When the candidate is built with
//	slp.Wrap, a member's residual expression is exactly the inverse of a
//	word transforming the identity into the candidate: evaluate it under
//	a morphism and invert to obtain the solving move sequence.
//
// NonMember is not an error
//
//	A candidate outside the group is an ordinary outcome: StripResult
//	reports Member=false and the level at which sifting stopped.
//	Errors are reserved for malformed inputs (see below).
//
// Complexity (n = domain size, k = generators, d = chain depth)
//
//   - Construction: O(n·k·d) orbit work, performed once, eagerly.
//   - Strip: O(d) transversal lookups, each O(1) via dense slot indices.
//
// Errors
//
//   - ErrEmptyDomain     when the domain listing is empty.
//   - ErrDuplicatePoint  when the domain listing repeats a point.
//   - ErrOptionViolation when an option is invalid (e.g. a WithBaseOrder
//     point outside the domain).
//   - ErrDomainMismatch  when a generator is undefined on, or maps
//     outside of, the declared domain.
//   - Apply errors from candidates are propagated by Strip as errors,
//     never silently treated as NonMember.
package group
