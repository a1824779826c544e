package colour

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", hex: "#5D4037", want: RGB{R: 0x5d, G: 0x40, B: 0x37}},
		{name: "without hash", hex: "daa520", want: RGB{R: 0xda, G: 0xa5, B: 0x20}},
		{name: "lowercase", hex: "#ffb6c1", want: RGB{R: 255, G: 182, B: 193}},
		{name: "shorthand rejected", hex: "#fff", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
		{name: "non hex digits", hex: "#GG0000", wantErr: true},
		{name: "too long", hex: "#0000000", wantErr: true},
		{name: "double hash", hex: "##000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if tt.wantErr {
				var invalid *InvalidColorError
				if !errors.As(err, &invalid) {
					t.Fatalf("ParseHex(%q) error = %v, want *InvalidColorError", tt.hex, err)
				}
				if invalid.Hex != tt.hex {
					t.Errorf("InvalidColorError.Hex = %q, want %q", invalid.Hex, tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "black on white", a: "#000000", b: "#FFFFFF", want: 21},
		{name: "white on black", a: "#FFFFFF", b: "#000000", want: 21},
		{name: "identical", a: "#5D4037", b: "#5D4037", want: 1},
		{name: "same colour different spelling", a: "5d4037", b: "#5D4037", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contrast(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Contrast() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Contrast(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastIdentityIsExact(t *testing.T) {
	for _, hex := range []string{"#000000", "#0A0A0A", "#DAA520", "#FFFFFF", "#7851A9"} {
		got, err := Contrast(hex, hex)
		if err != nil {
			t.Fatalf("Contrast(%s) unexpected error: %v", hex, err)
		}
		if got != 1.0 {
			t.Errorf("Contrast(%s, %s) = %v, want exactly 1", hex, hex, got)
		}
	}
}

func TestContrastSymmetric(t *testing.T) {
	hexes := []string{"#0A0A0A", "#2F1B14", "#DAA520", "#E5E4E2", "#FF69B4", "#808080"}
	for _, a := range hexes {
		for _, b := range hexes {
			ab, _ := Contrast(a, b)
			ba, _ := Contrast(b, a)
			if ab != ba {
				t.Errorf("Contrast(%s, %s) = %v but Contrast(%s, %s) = %v", a, b, ab, b, a, ba)
			}
			if ab < 1 || ab > 21+epsilon {
				t.Errorf("Contrast(%s, %s) = %v out of [1, 21]", a, b, ab)
			}
		}
	}
}

func TestContrastMonotonic(t *testing.T) {
	// Greys sorted by increasing luminance; contrast against black must
	// never decrease.
	greys := []string{"#000000", "#202020", "#404040", "#808080", "#C0C0C0", "#FFFFFF"}
	prev := 0.0
	for _, g := range greys {
		c, err := Contrast("#000000", g)
		if err != nil {
			t.Fatalf("Contrast() unexpected error: %v", err)
		}
		if c < prev {
			t.Errorf("Contrast(#000000, %s) = %v, lower than previous %v", g, c, prev)
		}
		prev = c
	}
}

func TestContrastInvalid(t *testing.T) {
	if _, err := Contrast("#000000", "nope"); err == nil {
		t.Error("expected error for malformed second argument")
	}
	if _, err := Contrast("#12345", "#000000"); err == nil {
		t.Error("expected error for malformed first argument")
	}
}

func TestTemperatureOf(t *testing.T) {
	tests := []struct {
		hex  string
		want Temperature
	}{
		{hex: "#DAA520", want: TemperatureWarm},
		{hex: "#7DF9FF", want: TemperatureCool},
		{hex: "#0F0F23", want: TemperatureNeutral},
		{hex: "#808080", want: TemperatureNeutral},
		{hex: "#3030C0", want: TemperatureCool},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := TemperatureOf(MustParseHex(tt.hex)); got != tt.want {
				t.Errorf("TemperatureOf(%s) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{R: 128, G: 128, B: 128}).Hex(); got != "#808080" {
		t.Errorf("Hex() = %s, want #808080", got)
	}
	if got := (RGB{R: 255, G: 0, B: 0}).String(); got != "rgb(255, 0, 0)" {
		t.Errorf("String() = %s, want rgb(255, 0, 0)", got)
	}
}
