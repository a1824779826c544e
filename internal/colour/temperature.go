package colour

// Temperature classifies a colour as warm, cool or neutral.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// warmthThreshold is the |(r+g) - 2b| margin beyond which a colour stops
// being neutral.
const warmthThreshold = 50

// TemperatureOf compares the red and green channels against blue.
func TemperatureOf(rgb RGB) Temperature {
	warmth := int(rgb.R) + int(rgb.G) - 2*int(rgb.B)

	switch {
	case warmth > warmthThreshold:
		return TemperatureWarm
	case warmth < -warmthThreshold:
		return TemperatureCool
	default:
		return TemperatureNeutral
	}
}
