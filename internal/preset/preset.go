// Package preset holds the curated colour choices offered as one-click
// shortcuts.
package preset

import (
	"github.com/jmylchreest/hairhue/internal/choice"
)

// Preset is a named colour choice.
type Preset struct {
	ID          string             `json:"id" yaml:"id"`
	Label       string             `json:"label" yaml:"label"`
	Description string             `json:"description" yaml:"description"`
	Choice      choice.ColorChoice `json:"choice" yaml:"choice"`
}

// Clone returns a copy that shares nothing with p.
func (p Preset) Clone() Preset {
	p.Choice = p.Choice.Clone()
	return p
}

func single(id, label, description, colorID string) Preset {
	return Preset{ID: id, Label: label, Description: description, Choice: choice.NewSingleTone(colorID)}
}

func accented(id, label, description string, a choice.Accented) Preset {
	return Preset{ID: id, Label: label, Description: description, Choice: choice.NewAccented(a)}
}

var catalog = []Preset{
	single("classic-brunette", "Classic Brunette", "Timeless medium brown", "medium-brown"),
	single("golden-goddess", "Golden Goddess", "Warm golden blonde", "golden-blonde"),
	single("midnight-black", "Midnight Black", "Deep jet black", "jet-black"),
	single("auburn-beauty", "Auburn Beauty", "Natural auburn red", "auburn"),

	accented("honey-balayage", "Honey Balayage", "Brown base with honey highlights", choice.Accented{
		BaseColorID: "medium-brown", AccentColorID: "honey-blonde",
		Technique: choice.TechniqueBalayage, Intensity: choice.IntensityStandard,
		Placement: choice.PlacementFaceFraming, Blend: choice.BlendSoft,
	}),
	accented("caramel-balayage", "Caramel Balayage", "Dark brown with caramel highlights", choice.Accented{
		BaseColorID: "dark-brown", AccentColorID: "golden-blonde",
		Technique: choice.TechniqueBalayage, Intensity: choice.IntensityStandard,
		Placement: choice.PlacementMidEnds, Blend: choice.BlendSoft,
	}),
	accented("ash-balayage", "Ash Balayage", "Cool-toned balayage", choice.Accented{
		BaseColorID: "light-brown", AccentColorID: "ash-blonde",
		Technique: choice.TechniqueBalayage, Intensity: choice.IntensitySubtle,
		Placement: choice.PlacementOverall, Blend: choice.BlendSoft,
	}),

	accented("chocolate-ombre", "Chocolate Ombré", "Dark to light brown gradient", choice.Accented{
		BaseColorID: "chocolate-brown", AccentColorID: "light-brown",
		Technique: choice.TechniqueOmbre, Intensity: choice.IntensityStandard,
		Placement: choice.PlacementMidEnds, Blend: choice.BlendDefined,
	}),
	accented("sunset-ombre", "Sunset Ombré", "Brown to golden blonde", choice.Accented{
		BaseColorID: "espresso", AccentColorID: "golden-blonde",
		Technique: choice.TechniqueOmbre, Intensity: choice.IntensityBold,
		Placement: choice.PlacementMidEnds, Blend: choice.BlendDefined,
	}),
	accented("rose-ombre", "Rose Ombré", "Brown to rose gold gradient", choice.Accented{
		BaseColorID: "dark-brown", AccentColorID: "rose-gold",
		Technique: choice.TechniqueOmbre, Intensity: choice.IntensityBold,
		Placement: choice.PlacementTips, Blend: choice.BlendDefined,
	}),

	accented("platinum-highlights", "Platinum Highlights", "Bold platinum on dark base", choice.Accented{
		BaseColorID: "dark-brown", AccentColorID: "platinum-blonde",
		Technique: choice.TechniqueHighlights, Intensity: choice.IntensityBold,
		Placement: choice.PlacementOverall, Blend: choice.BlendDefined,
	}),
	accented("copper-highlights", "Copper Highlights", "Warm copper on brown base", choice.Accented{
		BaseColorID: "chestnut", AccentColorID: "copper",
		Technique: choice.TechniqueHighlights, Intensity: choice.IntensityStandard,
		Placement: choice.PlacementFaceFraming, Blend: choice.BlendSoft,
	}),

	accented("chocolate-lowlights", "Chocolate Lowlights", "Rich depth with chocolate", choice.Accented{
		BaseColorID: "light-brown", AccentColorID: "chocolate-brown",
		Technique: choice.TechniqueLowlights, Intensity: choice.IntensitySubtle,
		Placement: choice.PlacementOverall, Blend: choice.BlendSoft,
	}),
	// Mahogany sits too close to medium brown to read as lowlights.
	accented("mahogany-lowlights", "Mahogany Lowlights", "Red undertones for warmth", choice.Accented{
		BaseColorID: "light-brown", AccentColorID: "mahogany",
		Technique: choice.TechniqueLowlights, Intensity: choice.IntensityStandard,
		Placement: choice.PlacementOverall, Blend: choice.BlendSoft,
	}),

	// Pastels and electric blue vanish against platinum, so the creative
	// looks use a darker base.
	accented("unicorn-tips", "Unicorn Tips", "Pastel rainbow tips", choice.Accented{
		BaseColorID: "medium-brown", AccentColorID: "pastel-pink",
		Technique: choice.TechniqueOmbre, Intensity: choice.IntensityBold,
		Placement: choice.PlacementTips, Blend: choice.BlendDefined,
	}),
	accented("mermaid-hair", "Mermaid Hair", "Ocean-inspired blues and greens", choice.Accented{
		BaseColorID: "charcoal-gray", AccentColorID: "electric-blue",
		Technique: choice.TechniqueBalayage, Intensity: choice.IntensityBold,
		Placement: choice.PlacementMidEnds, Blend: choice.BlendSoft,
	}),
	accented("galaxy-hair", "Galaxy Hair", "Deep space purples", choice.Accented{
		BaseColorID: "jet-black", AccentColorID: "royal-purple",
		Technique: choice.TechniqueHighlights, Intensity: choice.IntensityBold,
		Placement: choice.PlacementOverall, Blend: choice.BlendDefined,
	}),

	single("executive-brunette", "Executive Brunette", "Sophisticated workplace-appropriate brown", "espresso"),
	single("boardroom-blonde", "Boardroom Blonde", "Professional champagne blonde", "champagne-blonde"),
	single("distinguished-silver", "Distinguished Silver", "Elegant silver gray", "silver-gray"),
}

// All returns every preset in catalogue order. The slice and its choices are
// copies.
func All() []Preset {
	out := make([]Preset, len(catalog))
	for i, p := range catalog {
		out[i] = p.Clone()
	}
	return out
}

// Lookup returns a copy of the preset with the given id.
func Lookup(id string) (Preset, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Preset{}, false
}
