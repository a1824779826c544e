package choice

import (
	"testing"

	"github.com/jmylchreest/hairhue/internal/palette"
)

func TestMaintenanceLevel(t *testing.T) {
	p := palette.Default()

	tests := []struct {
		name   string
		choice ColorChoice
		want   Maintenance
	}{
		{"brunette single tone", NewSingleTone("medium-brown"), MaintenanceLow},
		{"gray single tone", NewSingleTone("salt-pepper"), MaintenanceLow},
		{"platinum single tone", NewSingleTone("ice-blonde"), MaintenanceHigh},
		{"red single tone", NewSingleTone("auburn"), MaintenanceMedium},
		{"unknown single tone", NewSingleTone("nope"), MaintenanceMedium},
		{"pastel accent", accented("dark-brown", "pastel-pink", TechniqueBalayage, PlacementTips), MaintenanceHigh},
		{"highlights", accented("dark-brown", "golden-blonde", TechniqueHighlights, PlacementTips), MaintenanceHigh},
		{"balayage standard", accented("dark-brown", "golden-blonde", TechniqueBalayage, PlacementTips), MaintenanceMedium},
		{"unknown accent", accented("dark-brown", "nope", TechniqueBalayage, PlacementTips), MaintenanceMedium},
		{"malformed", ColorChoice{}, MaintenanceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaintenanceLevel(tt.choice, p); got != tt.want {
				t.Errorf("MaintenanceLevel() = %s, want %s", got, tt.want)
			}
		})
	}

	bold := accented("dark-brown", "golden-blonde", TechniqueBalayage, PlacementTips)
	bold.Accented.Intensity = IntensityBold
	if got := MaintenanceLevel(bold, p); got != MaintenanceHigh {
		t.Errorf("bold accent = %s, want high", got)
	}
}
