// Package choice models a client's hair colour selection and the rules that
// decide whether it can be submitted.
package choice

// Kind discriminates the ColorChoice union.
type Kind string

const (
	KindSingleTone Kind = "single-tone"
	KindAccented   Kind = "accented"
)

// Technique is how an accent colour is applied.
type Technique string

const (
	TechniqueHighlights Technique = "highlights"
	TechniqueLowlights  Technique = "lowlights"
	TechniqueBalayage   Technique = "balayage"
	TechniqueOmbre      Technique = "ombre"
)

// Techniques returns every technique.
func Techniques() []Technique {
	return []Technique{TechniqueHighlights, TechniqueLowlights, TechniqueBalayage, TechniqueOmbre}
}

// Valid reports whether t is a known technique.
func (t Technique) Valid() bool {
	switch t {
	case TechniqueHighlights, TechniqueLowlights, TechniqueBalayage, TechniqueOmbre:
		return true
	}
	return false
}

// Intensity is how strongly the accent shows.
type Intensity string

const (
	IntensitySubtle   Intensity = "subtle"
	IntensityStandard Intensity = "standard"
	IntensityBold     Intensity = "bold"
)

// Intensities returns every intensity.
func Intensities() []Intensity {
	return []Intensity{IntensitySubtle, IntensityStandard, IntensityBold}
}

// Valid reports whether i is a known intensity.
func (i Intensity) Valid() bool {
	switch i {
	case IntensitySubtle, IntensityStandard, IntensityBold:
		return true
	}
	return false
}

// Placement is where on the head the accent goes.
type Placement string

const (
	PlacementOverall     Placement = "overall"
	PlacementFaceFraming Placement = "face-framing"
	PlacementMidEnds     Placement = "mid-ends"
	PlacementTips        Placement = "tips"
)

// Placements returns every placement.
func Placements() []Placement {
	return []Placement{PlacementOverall, PlacementFaceFraming, PlacementMidEnds, PlacementTips}
}

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	switch p {
	case PlacementOverall, PlacementFaceFraming, PlacementMidEnds, PlacementTips:
		return true
	}
	return false
}

// Blend is how the accent transitions into the base.
type Blend string

const (
	BlendSoft    Blend = "soft"
	BlendDefined Blend = "defined"
)

// Blends returns every blend.
func Blends() []Blend {
	return []Blend{BlendSoft, BlendDefined}
}

// Valid reports whether b is a known blend.
func (b Blend) Valid() bool {
	return b == BlendSoft || b == BlendDefined
}

// SingleTone is one colour applied to all hair.
type SingleTone struct {
	ColorID string `json:"colorId"`
}

// Accented is a base colour with a secondary accent colour.
type Accented struct {
	BaseColorID   string    `json:"baseColorId"`
	AccentColorID string    `json:"accentColorId"`
	Technique     Technique `json:"technique"`
	Intensity     Intensity `json:"intensity"`
	Placement     Placement `json:"placement"`
	Blend         Blend     `json:"blend"`
}

// ColorChoice is the tagged union the UI submits. Exactly one of SingleTone
// and Accented is set, matching Type.
type ColorChoice struct {
	Type       Kind        `json:"type"`
	SingleTone *SingleTone `json:"singleTone,omitempty"`
	Accented   *Accented   `json:"accented,omitempty"`
}

// NewSingleTone builds a single-tone choice.
func NewSingleTone(colorID string) ColorChoice {
	return ColorChoice{
		Type:       KindSingleTone,
		SingleTone: &SingleTone{ColorID: colorID},
	}
}

// NewAccented builds an accented choice.
func NewAccented(a Accented) ColorChoice {
	return ColorChoice{
		Type:     KindAccented,
		Accented: &a,
	}
}

// WellFormed reports whether the union is consistent: Type names the one
// populated branch and every accented enum holds a known value. Colour ids
// are not checked here.
func (c ColorChoice) WellFormed() bool {
	switch c.Type {
	case KindSingleTone:
		return c.SingleTone != nil && c.Accented == nil
	case KindAccented:
		a := c.Accented
		return a != nil && c.SingleTone == nil &&
			a.Technique.Valid() && a.Intensity.Valid() &&
			a.Placement.Valid() && a.Blend.Valid()
	}
	return false
}

// Clone returns a deep copy, so a preset can be handed out without sharing
// its branch pointers.
func (c ColorChoice) Clone() ColorChoice {
	out := ColorChoice{Type: c.Type}
	if c.SingleTone != nil {
		st := *c.SingleTone
		out.SingleTone = &st
	}
	if c.Accented != nil {
		a := *c.Accented
		out.Accented = &a
	}
	return out
}

// ColorIDs returns the palette ids the choice refers to.
func (c ColorChoice) ColorIDs() []string {
	switch {
	case c.Type == KindSingleTone && c.SingleTone != nil:
		return []string{c.SingleTone.ColorID}
	case c.Type == KindAccented && c.Accented != nil:
		return []string{c.Accented.BaseColorID, c.Accented.AccentColorID}
	}
	return nil
}
