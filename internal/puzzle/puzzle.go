// Package puzzle loads YAML puzzle definitions and turns them into
// stabilizer chains with word-rendering morphisms.
//
// A definition names a puzzle, lists its domain points, and gives each
// generator move a single-character symbol and a point→image map; points
// a map omits are fixed. Scrambled states use the same image-map form.
package puzzle

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/permgroup/group"
	"github.com/katalvlaran/permgroup/perm"
	"github.com/katalvlaran/permgroup/slp"
)

// ErrInvalidDefinition is returned for structurally invalid puzzle files:
// missing name, empty domain, bad symbols, or moves leaving the domain.
var ErrInvalidDefinition = errors.New("puzzle: invalid definition")

// Definition is a puzzle group description as read from YAML.
type Definition struct {
	// Name identifies the puzzle in output.
	Name string `yaml:"name"`

	// Domain lists the labeled points the moves act on.
	Domain []int `yaml:"domain"`

	// Generators are the puzzle's moves, in generator-index order.
	Generators []Generator `yaml:"generators"`
}

// Generator is one move: a printable symbol and its action. Domain
// points absent from Images are fixed by the move.
type Generator struct {
	Symbol string      `yaml:"symbol"`
	Images map[int]int `yaml:"images"`
}

// stateFile is the YAML shape of a scrambled state.
type stateFile struct {
	Images map[int]int `yaml:"images"`
}

// Load reads and validates a puzzle definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a puzzle definition document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("puzzle: decoding definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}
	if len(d.Domain) == 0 {
		return fmt.Errorf("%w: empty domain", ErrInvalidDefinition)
	}
	points := make(map[int]bool, len(d.Domain))
	for _, p := range d.Domain {
		points[p] = true
	}

	symbols := make(map[string]bool, len(d.Generators))
	for i, gen := range d.Generators {
		if utf8.RuneCountInString(gen.Symbol) != 1 {
			return fmt.Errorf("%w: generator %d needs a single-character symbol, got %q",
				ErrInvalidDefinition, i, gen.Symbol)
		}
		if symbols[gen.Symbol] {
			return fmt.Errorf("%w: symbol %q assigned twice", ErrInvalidDefinition, gen.Symbol)
		}
		symbols[gen.Symbol] = true
		for p, img := range gen.Images {
			if !points[p] || !points[img] {
				return fmt.Errorf("%w: generator %q maps %d to %d outside the domain",
					ErrInvalidDefinition, gen.Symbol, p, img)
			}
		}
	}
	return nil
}

// Build constructs the stabilizer chain over word-tracking elements and
// the morphism rendering generator indices as the definition's symbols.
func (d *Definition) Build() (*group.Group[slp.Permutation], slp.Morphism, error) {
	gens := make([]slp.Permutation, len(d.Generators))
	symbols := make(map[int]rune, len(d.Generators))
	for i, gen := range d.Generators {
		p, err := perm.New(d.complete(gen.Images))
		if err != nil {
			return nil, slp.Morphism{}, fmt.Errorf("puzzle: generator %q: %w", gen.Symbol, err)
		}
		gens[i] = slp.FromGenerator(i, p)
		sym, _ := utf8.DecodeRuneInString(gen.Symbol)
		symbols[i] = sym
	}

	g, err := group.New(d.Domain, gens)
	if err != nil {
		return nil, slp.Morphism{}, err
	}
	return g, slp.NewMorphism(symbols), nil
}

// LoadState reads a scrambled state file; omitted domain points are
// fixed, and points outside the domain are allowed (they make the state
// a non-member, not an error).
func (d *Definition) LoadState(path string) (perm.Permutation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return perm.Permutation{}, fmt.Errorf("puzzle: reading %s: %w", path, err)
	}
	return d.ParseState(data)
}

// ParseState decodes a scrambled state document.
func (d *Definition) ParseState(data []byte) (perm.Permutation, error) {
	var st stateFile
	if err := yaml.Unmarshal(data, &st); err != nil {
		return perm.Permutation{}, fmt.Errorf("puzzle: decoding state: %w", err)
	}
	return perm.New(d.complete(st.Images))
}

// complete extends images to a total map over the union of the domain
// and the map's own points, fixing everything unmentioned.
func (d *Definition) complete(images map[int]int) map[int]int {
	total := make(map[int]int, len(d.Domain)+len(images))
	for _, p := range d.Domain {
		total[p] = p
	}
	for p, img := range images {
		total[p] = img
		if _, ok := total[img]; !ok {
			total[img] = img
		}
	}
	return total
}
