package choice

import (
	"github.com/jmylchreest/hairhue/internal/palette"
)

const (
	// MinAccentContrast is the lowest base/accent contrast that reads as
	// two colours.
	MinAccentContrast = 1.5

	// MaxLowlightContrast is the highest contrast lowlights may have.
	MaxLowlightContrast = 10.0
)

// Validation failure reasons. The too-close reason is built with
// TooCloseReason.
const (
	ReasonInvalidChoice      = "Invalid color choice"
	ReasonColorNotFound      = "Selected color not found"
	ReasonBaseNotFound       = "Base color not found"
	ReasonAccentNotFound     = "Accent color not found"
	ReasonOmbrePlacement     = "Ombré technique works best with mid-ends or tips placement"
	ReasonLowlightsTooStrong = "Lowlights should be subtle; try reducing contrast or use highlights instead"
	tooClosePrefix           = "Accent too close to base; try "
	fallbackAccentSuggestion = "a different color"
)

// ValidationResult is the outcome of Validate. Failures are values: callers
// show Reason to the user and block submission.
type ValidationResult struct {
	OK         bool   `json:"ok"`
	Reason     string `json:"reason,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func fail(reason string) ValidationResult {
	return ValidationResult{OK: false, Reason: reason}
}

// TooCloseReason is the failure reason for an accent that does not stand out
// from its base.
func TooCloseReason(suggestion string) string {
	return tooClosePrefix + suggestion
}

// Validate checks c against p. Rules apply in order and the first failure
// wins:
//
//  1. the choice is well formed
//  2. single-tone: the colour exists
//  3. accented: base, then accent, exist
//  4. accented: contrast >= MinAccentContrast, otherwise the best accent for
//     the base is suggested
//  5. accented: ombré is not placed overall
//  6. accented: lowlights stay at or below MaxLowlightContrast
//
// Validate is pure and safe for concurrent use.
func Validate(c ColorChoice, p *palette.Palette) ValidationResult {
	if !c.WellFormed() {
		return fail(ReasonInvalidChoice)
	}

	if c.Type == KindSingleTone {
		if !p.Has(c.SingleTone.ColorID) {
			return fail(ReasonColorNotFound)
		}
		return ValidationResult{OK: true}
	}

	a := c.Accented
	if !p.Has(a.BaseColorID) {
		return fail(ReasonBaseNotFound)
	}
	if !p.Has(a.AccentColorID) {
		return fail(ReasonAccentNotFound)
	}

	contrast, _ := p.Contrast(a.BaseColorID, a.AccentColorID)

	if contrast < MinAccentContrast {
		suggestion := fallbackAccentSuggestion
		if top := palette.SuggestAccents(a.BaseColorID, p); len(top) > 0 {
			suggestion = top[0].Color.Name
		}
		return ValidationResult{
			OK:         false,
			Reason:     TooCloseReason(suggestion),
			Suggestion: suggestion,
		}
	}

	if a.Technique == TechniqueOmbre && a.Placement == PlacementOverall {
		return fail(ReasonOmbrePlacement)
	}

	if a.Technique == TechniqueLowlights && contrast > MaxLowlightContrast {
		return fail(ReasonLowlightsTooStrong)
	}

	return ValidationResult{OK: true}
}
