package group

import "fmt"

// level is one link of the stabilizer chain: a base point, the orbit of
// that base under the level's generators, and a transversal element per
// orbit point carrying the base to it. Orbit membership and transversal
// lookup use dense slot indices into the domain listing.
type level[E Element[E]] struct {
	base    int
	orbit   []int  // discovery order
	present []bool // by domain slot
	trans   []E    // by domain slot, valid where present
}

// orbitBuilder encapsulates the mutable state of one level's
// breadth-first orbit exploration.
type orbitBuilder[E Element[E]] struct {
	slot  map[int]int
	gens  []E
	queue []int
	lvl   level[E]
	stabs []E
}

// buildLevel explores the orbit of base under gens and returns the
// finished level together with the Schreier generators seeding the next
// one.
func buildLevel[E Element[E]](slot map[int]int, base int, gens []E) (level[E], []E, error) {
	n := len(slot)
	b := &orbitBuilder[E]{
		slot:  slot,
		gens:  gens,
		queue: make([]int, 0, n),
		lvl: level[E]{
			base:    base,
			orbit:   make([]int, 0, n),
			present: make([]bool, n),
			trans:   make([]E, n),
		},
	}

	b.enqueue(base, gens[0].Identity())
	if err := b.loop(); err != nil {
		return level[E]{}, nil, err
	}
	return b.lvl, b.stabs, nil
}

// enqueue records point as reached by the transversal element t and
// schedules it for neighbor expansion.
func (b *orbitBuilder[E]) enqueue(point int, t E) {
	s := b.slot[point]
	b.lvl.present[s] = true
	b.lvl.trans[s] = t
	b.lvl.orbit = append(b.lvl.orbit, point)
	b.queue = append(b.queue, point)
}

// loop processes the queue until the orbit is closed under every
// generator.
func (b *orbitBuilder[E]) loop() error {
	for len(b.queue) > 0 {
		point := b.queue[0]
		b.queue = b.queue[1:]
		if err := b.expand(point); err != nil {
			return err
		}
	}
	return nil
}

// expand applies every generator to point. An unseen image joins the
// orbit with transversal g ∘ t(point); a seen image closes a Schreier
// loop and yields the stabilizer t(image)⁻¹ ∘ g ∘ t(point).
func (b *orbitBuilder[E]) expand(point int) error {
	for _, g := range b.gens {
		image, err := g.Apply(point)
		if err != nil {
			return fmt.Errorf("%w: applying generator to %d: %v", ErrDomainMismatch, point, err)
		}
		s, ok := b.slot[image]
		if !ok {
			return fmt.Errorf("%w: image %d of %d", ErrDomainMismatch, image, point)
		}

		to := b.lvl.trans[b.slot[point]]
		if !b.lvl.present[s] {
			b.enqueue(image, g.Compose(to))
			continue
		}

		stab := b.lvl.trans[s].Inverse().Compose(g).Compose(to)
		if !stab.IsIdentity() && !containsElement(b.stabs, stab) {
			b.stabs = append(b.stabs, stab)
		}
	}
	return nil
}

// transversal returns the representative carrying the base to point;
// ok is false when point is outside the orbit.
func (lvl *level[E]) transversal(slot map[int]int, point int) (E, bool) {
	var zero E
	s, ok := slot[point]
	if !ok || !lvl.present[s] {
		return zero, false
	}
	return lvl.trans[s], true
}

// containsElement reports whether elems already holds an element equal
// to el.
func containsElement[E Element[E]](elems []E, el E) bool {
	for _, e := range elems {
		if e.Equal(el) {
			return true
		}
	}
	return false
}
