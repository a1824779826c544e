package preset

import (
	"testing"

	"github.com/jmylchreest/hairhue/internal/choice"
	"github.com/jmylchreest/hairhue/internal/palette"
)

func TestEveryPresetValidates(t *testing.T) {
	p := palette.Default()
	for _, pr := range All() {
		t.Run(pr.ID, func(t *testing.T) {
			if res := choice.Validate(pr.Choice, p); !res.OK {
				t.Errorf("preset %s fails validation: %s", pr.ID, res.Reason)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 20 {
		t.Fatalf("len(All()) = %d, want 20", len(all))
	}

	seen := make(map[string]bool, len(all))
	for _, pr := range all {
		if seen[pr.ID] {
			t.Errorf("duplicate preset id %q", pr.ID)
		}
		seen[pr.ID] = true
		if pr.Label == "" || pr.Description == "" {
			t.Errorf("preset %q missing label or description", pr.ID)
		}
	}
}

func TestLookup(t *testing.T) {
	pr, ok := Lookup("honey-balayage")
	if !ok {
		t.Fatal("honey-balayage not found")
	}
	if pr.Choice.Type != choice.KindAccented || pr.Choice.Accented.AccentColorID != "honey-blonde" {
		t.Errorf("unexpected choice %+v", pr.Choice)
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should miss")
	}
}

func TestSelectionIsACopy(t *testing.T) {
	pr, _ := Lookup("honey-balayage")
	pr.Choice.Accented.AccentColorID = "jet-black"

	again, _ := Lookup("honey-balayage")
	if again.Choice.Accented.AccentColorID != "honey-blonde" {
		t.Error("mutating a looked-up preset changed the catalogue")
	}

	all := All()
	all[0].Choice.SingleTone.ColorID = "nope"
	if All()[0].Choice.SingleTone.ColorID != "medium-brown" {
		t.Error("mutating All() changed the catalogue")
	}
}
