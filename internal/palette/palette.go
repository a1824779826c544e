// Package palette holds the hair colour catalogue and the accent suggestion
// engine built on top of it.
//
// A Palette is immutable once constructed. It is safe to share a single
// instance between any number of goroutines.
package palette

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/hairhue/internal/colour"
)

// HairColor is a single palette entry.
type HairColor struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Hex         string   `json:"hex" yaml:"hex"`
	Family      Family   `json:"family" yaml:"family"`
	IsPremium   bool     `json:"isPremium" yaml:"isPremium"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// RGB returns the parsed colour. Entries obtained from a Palette always parse.
func (c HairColor) RGB() (colour.RGB, error) {
	return colour.ParseHex(c.Hex)
}

func (c HairColor) clone() HairColor {
	c.Tags = slices.Clone(c.Tags)
	return c
}

// Palette is an ordered, validated set of hair colours.
type Palette struct {
	colors    []HairColor
	rgb       []colour.RGB
	luminance []float64
	index     map[string]int
}

// New validates colors and builds a Palette. Order is preserved and is the
// tie-breaker wherever results are ranked.
//
// Validation fails on an empty or duplicate id, a malformed hex value or an
// unknown family. These are data-entry defects, so the first one found is
// returned rather than collected.
func New(colors []HairColor) (*Palette, error) {
	p := &Palette{
		colors:    make([]HairColor, 0, len(colors)),
		rgb:       make([]colour.RGB, 0, len(colors)),
		luminance: make([]float64, 0, len(colors)),
		index:     make(map[string]int, len(colors)),
	}

	for i, c := range colors {
		if c.ID == "" {
			return nil, fmt.Errorf("palette entry %d: empty id", i)
		}
		if _, dup := p.index[c.ID]; dup {
			return nil, fmt.Errorf("palette entry %d: duplicate id %q", i, c.ID)
		}
		if !c.Family.Valid() {
			return nil, fmt.Errorf("palette entry %q: unknown family %q", c.ID, c.Family)
		}
		rgb, err := colour.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", c.ID, err)
		}

		p.index[c.ID] = len(p.colors)
		p.colors = append(p.colors, c.clone())
		p.rgb = append(p.rgb, rgb)
		p.luminance = append(p.luminance, colour.LuminanceRGB(rgb))
	}

	return p, nil
}

// MustNew is like New but panics if the palette is invalid.
func MustNew(colors []HairColor) *Palette {
	p, err := New(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of all entries in palette order.
func (p *Palette) Colors() []HairColor {
	out := make([]HairColor, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.clone()
	}
	return out
}

// Lookup finds a colour by id.
func (p *Palette) Lookup(id string) (HairColor, bool) {
	i, ok := p.index[id]
	if !ok {
		return HairColor{}, false
	}
	return p.colors[i].clone(), true
}

// Has reports whether id is in the palette.
func (p *Palette) Has(id string) bool {
	_, ok := p.index[id]
	return ok
}

// Contrast returns the contrast ratio between two palette entries. The
// second result is false when either id is unknown.
func (p *Palette) Contrast(aID, bID string) (float64, bool) {
	a, okA := p.index[aID]
	b, okB := p.index[bID]
	if !okA || !okB {
		return 0, false
	}
	return colour.RatioFromLuminance(p.luminance[a], p.luminance[b]), true
}

// Available returns the colours a user may select. Premium entries are
// dropped unless includePremium is set; deciding who gets premium is up to
// the caller.
func (p *Palette) Available(includePremium bool) []HairColor {
	return p.filter(func(c HairColor) bool {
		return includePremium || !c.IsPremium
	})
}

// ByFamily returns the colours in family f, in palette order.
func (p *Palette) ByFamily(f Family) []HairColor {
	return p.filter(func(c HairColor) bool {
		return c.Family == f
	})
}

// All returns an iterator over the palette in order.
func (p *Palette) All() func(func(int, HairColor) bool) {
	return func(yield func(int, HairColor) bool) {
		for i, c := range p.colors {
			if !yield(i, c.clone()) {
				return
			}
		}
	}
}

func (p *Palette) filter(keep func(HairColor) bool) []HairColor {
	out := make([]HairColor, 0, len(p.colors))
	for _, c := range p.colors {
		if keep(c) {
			out = append(out, c.clone())
		}
	}
	return out
}
