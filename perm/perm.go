// Package perm provides immutable permutation values over explicit
// integer domains. See doc.go for the full contract.
package perm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for permutation construction and application.
var (
	// ErrMalformedPermutation is returned when a construction input is not
	// a bijection of its declared domain (duplicate image, image outside
	// the domain, duplicate or missing source).
	ErrMalformedPermutation = errors.New("perm: mapping is not a bijection")

	// ErrOutOfDomain is returned by Apply for a point outside the
	// declared domain.
	ErrOutOfDomain = errors.New("perm: point outside declared domain")
)

// Pair is a single (source, image) assignment used by FromPairs.
type Pair struct {
	Source int
	Image  int
}

// Permutation is an immutable bijection of a finite set of integer points.
// The zero value is the identity permutation of the empty domain.
type Permutation struct {
	images map[int]int
}

// New builds a Permutation from a total point→image mapping.
// The declared domain is the key set of images. Returns
// ErrMalformedPermutation when an image value repeats or falls outside
// the declared domain.
func New(images map[int]int) (Permutation, error) {
	seen := make(map[int]bool, len(images))
	for _, img := range images {
		if seen[img] {
			return Permutation{}, fmt.Errorf("%w: duplicate image %d", ErrMalformedPermutation, img)
		}
		seen[img] = true
		if _, ok := images[img]; !ok {
			return Permutation{}, fmt.Errorf("%w: image %d outside the domain", ErrMalformedPermutation, img)
		}
	}
	cp := make(map[int]int, len(images))
	for p, img := range images {
		cp[p] = img
	}
	return Permutation{images: cp}, nil
}

// FromPairs builds a Permutation from an explicit (source, image) list.
// Returns ErrMalformedPermutation when a source repeats, an image
// repeats, or an image falls outside the set of sources.
func FromPairs(pairs []Pair) (Permutation, error) {
	images := make(map[int]int, len(pairs))
	for _, pr := range pairs {
		if _, dup := images[pr.Source]; dup {
			return Permutation{}, fmt.Errorf("%w: duplicate source %d", ErrMalformedPermutation, pr.Source)
		}
		images[pr.Source] = pr.Image
	}
	return New(images)
}

// Identity returns the identity permutation of the given domain.
func Identity(domain []int) Permutation {
	images := make(map[int]int, len(domain))
	for _, p := range domain {
		images[p] = p
	}
	return Permutation{images: images}
}

// Apply returns the image of p, or ErrOutOfDomain when p is not in the
// declared domain.
func (pm Permutation) Apply(p int) (int, error) {
	img, ok := pm.images[p]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrOutOfDomain, p)
	}
	return img, nil
}

// actOn is the total extension of Apply: points outside the declared
// domain are fixed. Used by Compose to join differing domains.
func (pm Permutation) actOn(p int) int {
	if img, ok := pm.images[p]; ok {
		return img
	}
	return p
}

// Compose returns the permutation mapping p to pm(other(p)); other acts
// first. The result is defined over the union of both domains, each
// operand fixing the points it does not declare.
func (pm Permutation) Compose(other Permutation) Permutation {
	images := make(map[int]int, len(pm.images)+len(other.images))
	for p := range pm.images {
		images[p] = pm.actOn(other.actOn(p))
	}
	for p := range other.images {
		if _, ok := images[p]; !ok {
			images[p] = pm.actOn(other.actOn(p))
		}
	}
	return Permutation{images: images}
}

// Inverse returns the permutation with the mapping direction reversed.
func (pm Permutation) Inverse() Permutation {
	images := make(map[int]int, len(pm.images))
	for p, img := range pm.images {
		images[img] = p
	}
	return Permutation{images: images}
}

// Identity returns the identity permutation of pm's domain.
func (pm Permutation) Identity() Permutation {
	images := make(map[int]int, len(pm.images))
	for p := range pm.images {
		images[p] = p
	}
	return Permutation{images: images}
}

// IsIdentity reports whether pm fixes every point of its domain.
func (pm Permutation) IsIdentity() bool {
	for p, img := range pm.images {
		if p != img {
			return false
		}
	}
	return true
}

// Equal reports whether pm and other declare the same domain and map
// every point identically.
func (pm Permutation) Equal(other Permutation) bool {
	if len(pm.images) != len(other.images) {
		return false
	}
	for p, img := range pm.images {
		if o, ok := other.images[p]; !ok || o != img {
			return false
		}
	}
	return true
}

// Domain returns the declared domain in ascending order.
func (pm Permutation) Domain() []int {
	domain := make([]int, 0, len(pm.images))
	for p := range pm.images {
		domain = append(domain, p)
	}
	sort.Ints(domain)
	return domain
}

// String renders pm in cycle notation, omitting fixed points;
// the identity renders as "Id".
func (pm Permutation) String() string {
	var b strings.Builder
	visited := make(map[int]bool, len(pm.images))
	for _, start := range pm.Domain() {
		if visited[start] {
			continue
		}
		visited[start] = true
		cycle := []int{start}
		for img := pm.actOn(start); !visited[img]; img = pm.actOn(img) {
			visited[img] = true
			cycle = append(cycle, img)
		}
		if len(cycle) < 2 {
			continue
		}
		b.WriteByte('(')
		for i, p := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", p)
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "Id"
	}
	return b.String()
}
