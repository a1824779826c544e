package colour

import (
	"fmt"
	"regexp"
	"strings"
)

// ANSI escape codes for truecolour terminals.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 6
)

var (
	black = RGB{}
	white = RGB{R: 255, G: 255, B: 255}

	ansiPattern = regexp.MustCompile("\033\\[[0-9;]*m")
)

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// TextColourFor returns black or white, whichever contrasts more with c.
func TextColourFor(c RGB) RGB {
	l := LuminanceRGB(c)
	if RatioFromLuminance(l, 0) >= RatioFromLuminance(l, 1) {
		return black
	}
	return white
}

// Swatch returns a solid block of c, width cells wide.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText centres text on a block of c in a readable colour. Text
// longer than width is truncated.
func SwatchWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		left := (width - len(display)) / 2
		display = strings.Repeat(" ", left) + display + strings.Repeat(" ", width-len(display)-left)
	}

	return bg(c) + fg(TextColourFor(c)) + display + ansiReset
}

// StripANSI removes escape sequences, leaving the visible text.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
