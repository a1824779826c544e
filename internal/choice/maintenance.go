package choice

import (
	"slices"

	"github.com/jmylchreest/hairhue/internal/palette"
)

// Maintenance is how much upkeep a colour needs between salon visits.
type Maintenance string

const (
	MaintenanceLow    Maintenance = "low"
	MaintenanceMedium Maintenance = "medium"
	MaintenanceHigh   Maintenance = "high"
)

var (
	lowMaintenanceFamilies  = []palette.Family{palette.FamilyBlack, palette.FamilyBrunette, palette.FamilyGray}
	highMaintenanceFamilies = []palette.Family{palette.FamilyPlatinum, palette.FamilyVibrant, palette.FamilyPastel}
)

// MaintenanceLevel estimates upkeep for c. Unknown colours and malformed
// choices are rated medium.
func MaintenanceLevel(c ColorChoice, p *palette.Palette) Maintenance {
	switch {
	case c.Type == KindSingleTone && c.SingleTone != nil:
		color, ok := p.Lookup(c.SingleTone.ColorID)
		if !ok {
			return MaintenanceMedium
		}
		if slices.Contains(lowMaintenanceFamilies, color.Family) {
			return MaintenanceLow
		}
		if slices.Contains(highMaintenanceFamilies, color.Family) {
			return MaintenanceHigh
		}
		return MaintenanceMedium

	case c.Type == KindAccented && c.Accented != nil:
		accent, ok := p.Lookup(c.Accented.AccentColorID)
		if !ok {
			return MaintenanceMedium
		}
		if slices.Contains(highMaintenanceFamilies, accent.Family) ||
			c.Accented.Intensity == IntensityBold ||
			c.Accented.Technique == TechniqueHighlights {
			return MaintenanceHigh
		}
		return MaintenanceMedium
	}

	return MaintenanceMedium
}
