// Package prompt renders a colour choice as salon-style prose for an image
// generation model.
//
// Rendering is a fixed concatenation of clauses looked up from closed tables,
// so the output for any choice is deterministic. Colour names are the only
// interpolated text.
package prompt

import (
	"strings"

	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/palette"
)

// Fallback is returned when a choice cannot be resolved against the palette.
const Fallback = "Natural hair color"

const styleClause = ". Maintain the existing hairstyle and cut shape"

// Options adjust wording only.
type Options struct {
	PreserveStyle          bool `json:"preserveStyle"`
	IncludeMaintenanceInfo bool `json:"includeMaintenanceInfo"`
	ProfessionalTerms      bool `json:"professionalTerms"`
}

// DefaultOptions preserves the style and uses salon terminology.
func DefaultOptions() Options {
	return Options{
		PreserveStyle:     true,
		ProfessionalTerms: true,
	}
}

// ToPrompt renders c. It never fails: a malformed choice or an unknown colour
// id yields Fallback.
func ToPrompt(c choice.ColorChoice, p *palette.Palette, opts Options) string {
	switch {
	case c.Type == choice.KindSingleTone && c.SingleTone != nil:
		return singleTone(c, p, opts)
	case c.Type == choice.KindAccented && c.Accented != nil:
		return accented(c, p, opts)
	}
	return Fallback
}

func singleTone(c choice.ColorChoice, p *palette.Palette, opts Options) string {
	color, ok := p.Lookup(c.SingleTone.ColorID)
	if !ok {
		return Fallback
	}

	var b strings.Builder
	name := strings.ToLower(color.Name)
	if opts.ProfessionalTerms {
		b.WriteString("Professional salon single-process hair color: ")
	} else {
		b.WriteString("Hair colored ")
	}
	b.WriteString(name)
	b.WriteString(familyClauses[color.Family])

	finish(&b, c, p, opts)
	return b.String()
}

func accented(c choice.ColorChoice, p *palette.Palette, opts Options) string {
	a := c.Accented
	base, ok := p.Lookup(a.BaseColorID)
	if !ok {
		return Fallback
	}
	accent, ok := p.Lookup(a.AccentColorID)
	if !ok {
		return Fallback
	}

	var b strings.Builder
	if opts.ProfessionalTerms {
		b.WriteString("Professional salon hair coloring: ")
		b.WriteString(strings.ToLower(base.Name))
		b.WriteString(" base color")
	} else {
		b.WriteString("Hair with ")
		b.WriteString(strings.ToLower(base.Name))
		b.WriteString(" base")
	}

	if noun, ok := techniqueNouns[a.Technique]; ok {
		b.WriteString(" with ")
		b.WriteString(strings.ToLower(accent.Name))
		b.WriteString(" ")
		b.WriteString(noun)
	}
	b.WriteString(intensityClauses[a.Intensity])
	b.WriteString(placementClauses[a.Placement])
	b.WriteString(blendClauses[a.Blend])
	b.WriteString(techniqueElaborations[a.Technique])

	finish(&b, c, p, opts)
	return b.String()
}

// finish appends the optional trailing clauses and the closing period.
func finish(b *strings.Builder, c choice.ColorChoice, p *palette.Palette, opts Options) {
	if opts.PreserveStyle {
		b.WriteString(styleClause)
	}
	if opts.IncludeMaintenanceInfo {
		b.WriteString(maintenanceClauses[choice.MaintenanceLevel(c, p)])
	}
	b.WriteByte('.')
}

// ToSimplePrompt renders a terse variant of c for contexts that need a short
// string.
func ToSimplePrompt(c choice.ColorChoice, p *palette.Palette) string {
	switch {
	case c.Type == choice.KindSingleTone && c.SingleTone != nil:
		color, ok := p.Lookup(c.SingleTone.ColorID)
		if !ok {
			return "natural hair"
		}
		return strings.ToLower(color.Name) + " hair color"

	case c.Type == choice.KindAccented && c.Accented != nil:
		base, okBase := p.Lookup(c.Accented.BaseColorID)
		accent, okAccent := p.Lookup(c.Accented.AccentColorID)
		if okBase && okAccent {
			return strings.ToLower(base.Name) + " hair with " +
				strings.ToLower(accent.Name) + " " + string(c.Accented.Technique)
		}
	}
	return "natural hair color"
}
