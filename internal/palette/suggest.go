package palette

import "sort"

const (
	// MaxSuggestions caps the length of SuggestAccents results.
	MaxSuggestions = 6

	// MinSuggestionContrast is the lowest contrast worth offering as an accent.
	MinSuggestionContrast = 4.0

	// HighContrast marks a pairing suited to bold looks.
	HighContrast = 7.0
)

// Suggestion reasons.
const (
	ReasonBrunetteToBlonde = "Classic brunette-to-blonde contrast"
	ReasonDarkBasePop      = "Dramatic color pop on dark base"
	ReasonPastelBase       = "Perfect light base for pastels"
	ReasonHighContrast     = "High contrast for bold looks"
	ReasonDimension        = "Good contrast for dimension"
)

// ColorSuggestion is a ranked accent candidate for a base colour.
type ColorSuggestion struct {
	Color    HairColor `json:"color"`
	Contrast float64   `json:"contrast"`
	Reason   string    `json:"reason"`
}

type familyPair struct {
	base, accent Family
}

// pairingReasons take precedence over the contrast-based reasons. A base has
// exactly one family, so at most one entry can match a given pair.
var pairingReasons = map[familyPair]string{
	{FamilyBrunette, FamilyBlonde}: ReasonBrunetteToBlonde,
	{FamilyBlack, FamilyFashion}:   ReasonDarkBasePop,
	{FamilyBlonde, FamilyPastel}:   ReasonPastelBase,
}

// SuggestionReason explains why accent works on base at the given contrast.
func SuggestionReason(base, accent Family, contrast float64) string {
	if reason, ok := pairingReasons[familyPair{base, accent}]; ok {
		return reason
	}
	if contrast >= HighContrast {
		return ReasonHighContrast
	}
	return ReasonDimension
}

// SuggestAccents ranks the other palette colours as accents for baseID.
//
// Only candidates with contrast >= MinSuggestionContrast are kept. Results
// are sorted by contrast, highest first, with ties left in palette order, and
// truncated to MaxSuggestions. An unknown baseID yields an empty list.
func SuggestAccents(baseID string, p *Palette) []ColorSuggestion {
	bi, ok := p.index[baseID]
	if !ok {
		return []ColorSuggestion{}
	}
	base := p.colors[bi]

	suggestions := make([]ColorSuggestion, 0, len(p.colors))
	for i, c := range p.colors {
		if i == bi {
			continue
		}

		contrast, _ := p.Contrast(baseID, c.ID)
		if contrast < MinSuggestionContrast {
			continue
		}

		suggestions = append(suggestions, ColorSuggestion{
			Color:    c.clone(),
			Contrast: contrast,
			Reason:   SuggestionReason(base.Family, c.Family, contrast),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Contrast > suggestions[j].Contrast
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
