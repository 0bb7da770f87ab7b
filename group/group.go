// Package group builds stabilizer chains over explicit domains and sifts
// candidate elements through them. See doc.go for the full contract.
package group

import (
	"fmt"
	"strings"
)

// Group is an immutable stabilizer chain for the permutation group
// generated by the elements handed to New. Built once, eagerly; safe for
// concurrent readers afterwards.
type Group[E Element[E]] struct {
	domain []int
	slot   map[int]int // point → dense index into domain
	levels []level[E]
}

// New constructs the stabilizer chain for the group generated by
// generators acting on the given domain listing. Construction is eager:
// every orbit, transversal and derived Schreier generator level is
// computed before New returns, so Strip latency is predictable.
//
// Identity generators are ignored. An empty generator list yields the
// trivial group.
func New[E Element[E]](domain []int, generators []E, opts ...Option) (*Group[E], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	g := &Group[E]{
		domain: append([]int(nil), domain...),
		slot:   make(map[int]int, len(domain)),
	}
	for i, p := range g.domain {
		if _, dup := g.slot[p]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePoint, p)
		}
		g.slot[p] = i
	}
	for _, p := range o.baseOrder {
		if _, ok := g.slot[p]; !ok {
			return nil, fmt.Errorf("%w: base point %d outside the domain", ErrOptionViolation, p)
		}
	}

	gens := make([]E, 0, len(generators))
	for _, gen := range generators {
		if !gen.IsIdentity() {
			gens = append(gens, gen)
		}
	}
	if err := g.validateGenerators(gens); err != nil {
		return nil, err
	}

	preferred := o.baseOrder
	for len(gens) > 0 {
		base, ok, err := g.findBase(preferred, gens)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Non-identity generators that fix the whole domain must be
			// moving points the domain listing does not declare.
			return nil, fmt.Errorf("%w: generators move no declared point", ErrDomainMismatch)
		}
		lvl, stabs, err := buildLevel(g.slot, base, gens)
		if err != nil {
			return nil, err
		}
		g.levels = append(g.levels, lvl)
		gens = stabs
	}
	return g, nil
}

// validateGenerators checks that every generator is defined on every
// domain point and maps it back into the domain.
func (g *Group[E]) validateGenerators(gens []E) error {
	for i, gen := range gens {
		for _, p := range g.domain {
			image, err := gen.Apply(p)
			if err != nil {
				return fmt.Errorf("%w: generator %d undefined at %d: %v", ErrDomainMismatch, i, p, err)
			}
			if _, ok := g.slot[image]; !ok {
				return fmt.Errorf("%w: generator %d maps %d to %d", ErrDomainMismatch, i, p, image)
			}
		}
	}
	return nil
}

// findBase selects the next base point: the first preferred point moved
// by some generator, falling back to the first moved point in domain
// listing order. ok is false when the generators fix every point.
func (g *Group[E]) findBase(preferred []int, gens []E) (int, bool, error) {
	for _, candidates := range [][]int{preferred, g.domain} {
		for _, p := range candidates {
			for _, gen := range gens {
				image, err := gen.Apply(p)
				if err != nil {
					return 0, false, fmt.Errorf("%w: applying generator to %d: %v", ErrDomainMismatch, p, err)
				}
				if image != p {
					return p, true, nil
				}
			}
		}
	}
	return 0, false, nil
}

// Strip sifts a candidate through the chain, never mutating it. At each
// level the candidate's image of the base point selects a transversal
// whose inverse is composed onto the candidate; a point outside the
// level's orbit stops the sift with Member=false. After the last level,
// membership holds iff the residual action is the identity. The residual
// is returned in every case - its symbolic half is diagnostic for
// non-members and a solution witness for members.
func (g *Group[E]) Strip(el E) (StripResult[E], error) {
	cand := el
	for i := range g.levels {
		lvl := &g.levels[i]
		image, err := cand.Apply(lvl.base)
		if err != nil {
			return StripResult[E]{}, fmt.Errorf("group: applying candidate to base %d: %w", lvl.base, err)
		}
		t, ok := lvl.transversal(g.slot, image)
		if !ok {
			return StripResult[E]{Residual: cand, Member: false, Level: i}, nil
		}
		cand = t.Inverse().Compose(cand)
	}
	return StripResult[E]{Residual: cand, Member: cand.IsIdentity(), Level: len(g.levels)}, nil
}

// IsMember reports whether el belongs to the group.
func (g *Group[E]) IsMember(el E) (bool, error) {
	res, err := g.Strip(el)
	if err != nil {
		return false, err
	}
	return res.Member, nil
}

// Order returns the number of elements of the group: the product of the
// orbit lengths along the chain.
func (g *Group[E]) Order() uint64 {
	order := uint64(1)
	for i := range g.levels {
		order *= uint64(len(g.levels[i].orbit))
	}
	return order
}

// Depth returns the number of chain levels.
func (g *Group[E]) Depth() int {
	return len(g.levels)
}

// Domain returns a copy of the domain listing, in construction order.
func (g *Group[E]) Domain() []int {
	return append([]int(nil), g.domain...)
}

// Levels returns read-only snapshots of the chain levels in base order.
func (g *Group[E]) Levels() []LevelInfo {
	infos := make([]LevelInfo, len(g.levels))
	for i := range g.levels {
		infos[i] = LevelInfo{
			Base:  g.levels[i].base,
			Orbit: append([]int(nil), g.levels[i].orbit...),
		}
	}
	return infos
}

// String renders the chain shape: one [base; orbit size] block per level.
func (g *Group[E]) String() string {
	var b strings.Builder
	b.WriteByte('<')
	for i := range g.levels {
		fmt.Fprintf(&b, "[%d; orbit %d]", g.levels[i].base, len(g.levels[i].orbit))
	}
	b.WriteByte('>')
	return b.String()
}
