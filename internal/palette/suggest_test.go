package palette

import (
	"reflect"
	"testing"
)

func TestSuggestAccentsBounds(t *testing.T) {
	p := Default()

	for _, base := range p.Colors() {
		t.Run(base.ID, func(t *testing.T) {
			got := SuggestAccents(base.ID, p)
			if len(got) > MaxSuggestions {
				t.Errorf("got %d suggestions, want at most %d", len(got), MaxSuggestions)
			}
			for i, s := range got {
				if s.Contrast < MinSuggestionContrast {
					t.Errorf("suggestion %s has contrast %v below %v", s.Color.ID, s.Contrast, MinSuggestionContrast)
				}
				if s.Color.ID == base.ID {
					t.Error("base colour suggested as its own accent")
				}
				if i > 0 && got[i-1].Contrast < s.Contrast {
					t.Errorf("suggestions not sorted: %v before %v", got[i-1].Contrast, s.Contrast)
				}
				if s.Reason == "" {
					t.Errorf("suggestion %s has no reason", s.Color.ID)
				}
			}
		})
	}
}

func TestSuggestAccentsGoldenBlonde(t *testing.T) {
	got := SuggestAccents("golden-blonde", Default())
	if len(got) == 0 {
		t.Fatal("expected suggestions for golden-blonde")
	}
	if len(got) > 6 {
		t.Errorf("got %d suggestions", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Contrast < got[i].Contrast {
			t.Errorf("not sorted descending at %d", i)
		}
	}
}

func TestSuggestAccentsDeterministic(t *testing.T) {
	p := Default()
	first := SuggestAccents("medium-brown", p)
	second := SuggestAccents("medium-brown", p)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("SuggestAccents not deterministic:\n%v\n%v", first, second)
	}
}

func TestSuggestAccentsUnknownBase(t *testing.T) {
	got := SuggestAccents("does-not-exist", Default())
	if got == nil || len(got) != 0 {
		t.Errorf("SuggestAccents(unknown) = %#v, want empty non-nil slice", got)
	}
}

func TestSuggestAccentsJetBlack(t *testing.T) {
	got := SuggestAccents("jet-black", Default())
	if len(got) != MaxSuggestions {
		t.Fatalf("got %d suggestions, want %d", len(got), MaxSuggestions)
	}
	if got[0].Color.ID != "ice-blonde" {
		t.Errorf("top suggestion = %s, want ice-blonde", got[0].Color.ID)
	}
	if got[0].Reason != ReasonHighContrast {
		t.Errorf("top reason = %q, want %q", got[0].Reason, ReasonHighContrast)
	}
}

func TestSuggestAccentsBrunetteToBlonde(t *testing.T) {
	for _, s := range SuggestAccents("dark-brown", Default()) {
		if s.Color.ID == "champagne-blonde" {
			if s.Reason != ReasonBrunetteToBlonde {
				t.Errorf("reason = %q, want %q", s.Reason, ReasonBrunetteToBlonde)
			}
			return
		}
	}
	t.Error("champagne-blonde missing from dark-brown suggestions")
}

func TestSuggestAccentsTieKeepsPaletteOrder(t *testing.T) {
	p := MustNew([]HairColor{
		{ID: "base", Name: "Base", Hex: "#000000", Family: FamilyBlack},
		{ID: "first", Name: "First", Hex: "#FFFFFF", Family: FamilyPlatinum},
		{ID: "second", Name: "Second", Hex: "#ffffff", Family: FamilyPlatinum},
	})

	got := SuggestAccents("base", p)
	if len(got) != 2 || got[0].Color.ID != "first" || got[1].Color.ID != "second" {
		t.Errorf("tie order = %v, want first then second", got)
	}
}

func TestSuggestionReason(t *testing.T) {
	tests := []struct {
		name     string
		base     Family
		accent   Family
		contrast float64
		want     string
	}{
		{"brunette to blonde", FamilyBrunette, FamilyBlonde, 4.5, ReasonBrunetteToBlonde},
		{"black to fashion", FamilyBlack, FamilyFashion, 11, ReasonDarkBasePop},
		{"blonde to pastel", FamilyBlonde, FamilyPastel, 4.1, ReasonPastelBase},
		{"pairing beats contrast", FamilyBrunette, FamilyBlonde, 12, ReasonBrunetteToBlonde},
		{"high contrast", FamilyBlack, FamilyPlatinum, 7.0, ReasonHighContrast},
		{"dimension", FamilyRed, FamilyGray, 5, ReasonDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestionReason(tt.base, tt.accent, tt.contrast); got != tt.want {
				t.Errorf("SuggestionReason() = %q, want %q", got, tt.want)
			}
		})
	}
}
