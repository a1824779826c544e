package palette

import (
	"slices"

	"github.com/jmylchreest/hairhue/internal/colour"
)

// familyComplements lists, per base family, the families that pair well with
// it as accents. Auburn follows red.
var familyComplements = map[Family][]Family{
	FamilyBlack:    {FamilyBlonde, FamilyFashion, FamilyVibrant},
	FamilyBrunette: {FamilyBlonde, FamilyRed, FamilyFashion},
	FamilyBlonde:   {FamilyBrunette, FamilyRed, FamilyPastel},
	FamilyRed:      {FamilyBrunette, FamilyBlonde, FamilyFashion},
	FamilyAuburn:   {FamilyBrunette, FamilyBlonde, FamilyFashion},
	FamilyGray:     {FamilyFashion, FamilyVibrant, FamilyPastel},
	FamilyPlatinum: {FamilyVibrant, FamilyPastel, FamilyFashion},
	FamilyFashion:  {FamilyBlack, FamilyBrunette, FamilyPlatinum},
	FamilyPastel:   {FamilyBlonde, FamilyPlatinum, FamilyGray},
	FamilyVibrant:  {FamilyBlack, FamilyGray, FamilyPlatinum},
}

// ComplementaryFamilies returns the families that complement f.
func ComplementaryFamilies(f Family) []Family {
	return slices.Clone(familyComplements[f])
}

// Complementary returns the palette colours whose family complements base,
// excluding base itself.
func Complementary(base HairColor, p *Palette) []HairColor {
	families := familyComplements[base.Family]
	return p.filter(func(c HairColor) bool {
		return c.ID != base.ID && slices.Contains(families, c.Family)
	})
}

// SkinTone is the undertone of a client's skin.
type SkinTone = colour.Temperature

// versatileFamilies suit every skin tone.
var versatileFamilies = []Family{FamilyBrunette, FamilyBlack, FamilyGray}

// TemperatureOf classifies a palette colour as warm, cool or neutral.
// Malformed hex values are reported as neutral.
func TemperatureOf(c HairColor) colour.Temperature {
	rgb, err := c.RGB()
	if err != nil {
		return colour.TemperatureNeutral
	}
	return colour.TemperatureOf(rgb)
}

// SuitableForSkinTone reports whether c flatters the given skin tone.
func SuitableForSkinTone(c HairColor, tone SkinTone) bool {
	if tone == colour.TemperatureNeutral {
		return true
	}
	if TemperatureOf(c) == tone {
		return true
	}
	return slices.Contains(versatileFamilies, c.Family)
}
