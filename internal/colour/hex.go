package colour

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern is the only accepted spelling of a palette colour: six hex
// digits with an optional leading hash. Shorthand "#abc" is rejected even
// though go-colorful would accept it.
var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// InvalidColorError reports a hex string that does not describe a colour.
// Hex values come from palette data, so this indicates a data-entry defect
// rather than bad user input.
type InvalidColorError struct {
	Hex string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: expected six hex digits with optional leading #", e.Hex)
}

// ValidHex reports whether hex matches ^#?[0-9a-fA-F]{6}$.
func ValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// ParseHex converts a hex string such as "#5D4037" or "5d4037" to RGB.
func ParseHex(hex string) (RGB, error) {
	if !ValidHex(hex) {
		return RGB{}, &InvalidColorError{Hex: hex}
	}

	c, err := colorful.Hex("#" + strings.TrimPrefix(hex, "#"))
	if err != nil {
		return RGB{}, &InvalidColorError{Hex: hex}
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for compiled-in constants.
func MustParseHex(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return rgb
}

// Contrast returns the WCAG contrast ratio between two hex colours, in [1, 21].
// The result is symmetric in its arguments and exactly 1 for colours of equal
// luminance.
func Contrast(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}
	return RatioFromLuminance(LuminanceRGB(a), LuminanceRGB(b)), nil
}
