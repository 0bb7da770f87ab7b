// Package group: element capability set, tunable options, result and
// error definitions for stabilizer-chain construction and sifting.
package group

import (
	"errors"
	"fmt"
)

// Sentinel errors for chain construction and sifting.
var (
	// ErrEmptyDomain is returned when the domain listing is empty.
	ErrEmptyDomain = errors.New("group: domain is empty")

	// ErrDuplicatePoint is returned when the domain listing repeats a point.
	ErrDuplicatePoint = errors.New("group: duplicate domain point")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("group: invalid option supplied")

	// ErrDomainMismatch is returned when a generator is undefined on some
	// domain point, maps a domain point outside the domain, or moves
	// nothing inside the domain while not being the identity.
	ErrDomainMismatch = errors.New("group: generator acts outside the domain")
)

// Element is the capability set of a group element. Any algebra exposing
// these operations can be sifted through a stabilizer chain; the library
// provides perm.Permutation for bare actions and slp.Permutation when
// word recovery is needed.
//
// Compose is right-to-left: a.Compose(b) applies b first.
type Element[E any] interface {
	// Compose returns the product of the receiver with other; other acts
	// first.
	Compose(other E) E
	// Inverse returns the group inverse.
	Inverse() E
	// Identity returns the neutral element of the same algebra.
	Identity() E
	// IsIdentity reports whether the element acts trivially.
	IsIdentity() bool
	// Equal reports whether two elements have the same action.
	Equal(other E) bool
	// Apply returns the image of a domain point under the element's
	// action, or an error for points the element is not defined on.
	Apply(point int) (int, error)
}

// Option configures chain construction via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation
// when New is invoked.
type Option func(*Options)

// Options holds parameters customizing chain construction.
type Options struct {
	// baseOrder lists preferred base points, tried in order before the
	// default first-moved-point heuristic.
	baseOrder []int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the first-moved-point heuristic
// and no overrides.
func DefaultOptions() Options {
	return Options{}
}

// WithBaseOrder prefers the given points, in order, when selecting each
// level's base. Points already fixed by the current generators are
// skipped; once the list is exhausted the default heuristic resumes.
// Duplicate points are an ErrOptionViolation; membership in the domain
// is checked against the domain listing when New runs.
func WithBaseOrder(points ...int) Option {
	return func(o *Options) {
		seen := make(map[int]bool, len(points))
		for _, p := range points {
			if seen[p] {
				o.err = fmt.Errorf("%w: duplicate base point %d", ErrOptionViolation, p)
				return
			}
			seen[p] = true
		}
		o.baseOrder = points
	}
}

// StripResult is the outcome of sifting one candidate through the chain.
type StripResult[E Element[E]] struct {
	// Residual is the candidate after composing one transversal inverse
	// per passed level. For members its action is the identity and its
	// symbolic half (when sifting slp elements) is the inverse of a word
	// producing the original candidate.
	Residual E

	// Member reports whether the candidate belongs to the group.
	Member bool

	// Level is the number of levels passed: the index of the level whose
	// orbit excluded the candidate, or the chain depth when every level
	// was passed (in which case Member alone decides).
	Level int
}

// LevelInfo is a read-only snapshot of one chain level.
type LevelInfo struct {
	// Base is the level's base point.
	Base int

	// Orbit lists the points reachable from Base, in discovery order.
	Orbit []int
}
