package palette

// Family groups hair colours for suggestion heuristics and prompt wording.
type Family string

const (
	FamilyBlack    Family = "black"
	FamilyBrunette Family = "brunette"
	FamilyBlonde   Family = "blonde"
	FamilyRed      Family = "red"
	FamilyAuburn   Family = "auburn"
	FamilyGray     Family = "gray"
	FamilyPlatinum Family = "platinum"
	FamilyFashion  Family = "fashion"
	FamilyPastel   Family = "pastel"
	FamilyVibrant  Family = "vibrant"
)

// Families returns every family in display order.
func Families() []Family {
	return []Family{
		FamilyBlack,
		FamilyBrunette,
		FamilyBlonde,
		FamilyRed,
		FamilyAuburn,
		FamilyGray,
		FamilyPlatinum,
		FamilyFashion,
		FamilyPastel,
		FamilyVibrant,
	}
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	switch f {
	case FamilyBlack, FamilyBrunette, FamilyBlonde, FamilyRed, FamilyAuburn,
		FamilyGray, FamilyPlatinum, FamilyFashion, FamilyPastel, FamilyVibrant:
		return true
	}
	return false
}

func (f Family) String() string {
	return string(f)
}
