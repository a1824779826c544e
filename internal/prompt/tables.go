package prompt

import (
	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/palette"
)

// familyClauses flavour a single-tone prompt. Auburn has no clause.
var familyClauses = map[palette.Family]string{
	palette.FamilyBlack:    ", deep and rich with natural shine",
	palette.FamilyBrunette: ", warm and dimensional with natural depth",
	palette.FamilyBlonde:   ", luminous and bright with healthy shine",
	palette.FamilyRed:      ", vibrant and warm with rich undertones",
	palette.FamilyGray:     ", sophisticated and elegant with natural silver tones",
	palette.FamilyPlatinum: ", ultra-light and cool-toned with metallic finish",
	palette.FamilyFashion:  ", trendy and modern with artistic flair",
	palette.FamilyPastel:   ", soft and dreamy with ethereal quality",
	palette.FamilyVibrant:  ", bold and electric with maximum saturation",
}

// techniqueNouns name the accent application; the accent colour precedes
// them in the technique clause.
var techniqueNouns = map[choice.Technique]string{
	choice.TechniqueHighlights: "highlights",
	choice.TechniqueLowlights:  "lowlights",
	choice.TechniqueBalayage:   "balayage technique",
	choice.TechniqueOmbre:      "ombré gradient",
}

var intensityClauses = map[choice.Intensity]string{
	choice.IntensitySubtle:   ", applied subtly for natural dimension",
	choice.IntensityStandard: ", applied with standard salon intensity",
	choice.IntensityBold:     ", applied boldly for dramatic contrast",
}

var placementClauses = map[choice.Placement]string{
	choice.PlacementOverall:     " throughout the entire hair",
	choice.PlacementFaceFraming: " focused around the face for brightening effect",
	choice.PlacementMidEnds:     " concentrated on the mid-lengths to ends",
	choice.PlacementTips:        " applied only to the hair tips",
}

var blendClauses = map[choice.Blend]string{
	choice.BlendSoft:    " with soft, seamless blending",
	choice.BlendDefined: " with defined, intentional contrast",
}

var techniqueElaborations = map[choice.Technique]string{
	choice.TechniqueBalayage:   ". Hand-painted balayage technique with natural-looking gradients",
	choice.TechniqueOmbre:      ". Smooth ombré transition from dark to light",
	choice.TechniqueHighlights: ". Professional foil highlights with precise placement",
	choice.TechniqueLowlights:  ". Strategic lowlights for added depth and dimension",
}

var maintenanceClauses = map[choice.Maintenance]string{
	choice.MaintenanceLow:    ". Low maintenance color",
	choice.MaintenanceMedium: ". Medium maintenance color",
	choice.MaintenanceHigh:   ". High maintenance color",
}

// Standalone phrases for callers composing their own prompts.
var (
	techniquePrompts = map[choice.Technique]string{
		choice.TechniqueHighlights: "Professional foil highlights with precise sectioning",
		choice.TechniqueLowlights:  "Strategic lowlights for natural depth and dimension",
		choice.TechniqueBalayage:   "Hand-painted balayage with natural sun-kissed gradients",
		choice.TechniqueOmbre:      "Smooth ombré gradient transition with seamless blending",
	}

	intensityModifiers = map[choice.Intensity]string{
		choice.IntensitySubtle:   "delicate and natural-looking",
		choice.IntensityStandard: "professionally applied with salon quality",
		choice.IntensityBold:     "dramatic and high-contrast",
	}

	placementDescriptions = map[choice.Placement]string{
		choice.PlacementOverall:     "evenly distributed throughout all hair sections",
		choice.PlacementFaceFraming: "strategically placed around the face for brightening",
		choice.PlacementMidEnds:     "concentrated from mid-lengths to ends for modern appeal",
		choice.PlacementTips:        "applied to hair ends for subtle color interest",
	}
)

// TechniquePrompt describes technique on its own.
func TechniquePrompt(t choice.Technique) string {
	if s, ok := techniquePrompts[t]; ok {
		return s
	}
	return "Professional color application"
}

// IntensityModifier describes intensity as an adjective phrase.
func IntensityModifier(i choice.Intensity) string {
	if s, ok := intensityModifiers[i]; ok {
		return s
	}
	return "professionally applied"
}

// PlacementDescription describes where the accent sits.
func PlacementDescription(p choice.Placement) string {
	if s, ok := placementDescriptions[p]; ok {
		return s
	}
	return "professionally placed"
}
