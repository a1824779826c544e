package palette

// defaultColors is the production salon palette.
var defaultColors = []HairColor{
	// Black
	{ID: "jet-black", Name: "Jet Black", Hex: "#0A0A0A", Family: FamilyBlack, Description: "Deep, rich black with blue undertones", Tags: []string{"natural", "classic", "professional"}},
	{ID: "soft-black", Name: "Soft Black", Hex: "#1C1C1C", Family: FamilyBlack, Description: "Softer black with subtle warmth", Tags: []string{"natural", "versatile"}},
	{ID: "blue-black", Name: "Blue Black", Hex: "#0F0F23", Family: FamilyBlack, IsPremium: true, Description: "Black with cool blue undertones", Tags: []string{"dramatic", "cool-toned"}},

	// Brunette
	{ID: "dark-brown", Name: "Dark Brown", Hex: "#2F1B14", Family: FamilyBrunette, Description: "Rich, deep brown", Tags: []string{"natural", "classic", "warm"}},
	{ID: "medium-brown", Name: "Medium Brown", Hex: "#5D4037", Family: FamilyBrunette, Description: "Versatile medium brown", Tags: []string{"natural", "versatile", "warm"}},
	{ID: "light-brown", Name: "Light Brown", Hex: "#8D6E63", Family: FamilyBrunette, Description: "Soft, light brown", Tags: []string{"natural", "light", "warm"}},
	{ID: "chocolate-brown", Name: "Chocolate Brown", Hex: "#3E2723", Family: FamilyBrunette, IsPremium: true, Description: "Rich chocolate with warm undertones", Tags: []string{"luxurious", "warm", "rich"}},
	{ID: "espresso", Name: "Espresso", Hex: "#4A2C2A", Family: FamilyBrunette, IsPremium: true, Description: "Deep coffee brown", Tags: []string{"sophisticated", "rich", "warm"}},
	{ID: "chestnut", Name: "Chestnut", Hex: "#954535", Family: FamilyBrunette, IsPremium: true, Description: "Warm reddish-brown", Tags: []string{"warm", "rich", "dimensional"}},

	// Blonde
	{ID: "golden-blonde", Name: "Golden Blonde", Hex: "#DAA520", Family: FamilyBlonde, Description: "Classic golden blonde", Tags: []string{"natural", "warm", "classic"}},
	{ID: "honey-blonde", Name: "Honey Blonde", Hex: "#D4A574", Family: FamilyBlonde, IsPremium: true, Description: "Warm honey-toned blonde", Tags: []string{"warm", "natural", "luxurious"}},
	{ID: "ash-blonde", Name: "Ash Blonde", Hex: "#C4A484", Family: FamilyBlonde, IsPremium: true, Description: "Cool-toned ash blonde", Tags: []string{"cool", "modern", "sophisticated"}},
	{ID: "strawberry-blonde", Name: "Strawberry Blonde", Hex: "#C07F7F", Family: FamilyBlonde, IsPremium: true, Description: "Blonde with red undertones", Tags: []string{"unique", "warm", "dimensional"}},
	{ID: "champagne-blonde", Name: "Champagne Blonde", Hex: "#F7E7CE", Family: FamilyBlonde, IsPremium: true, Description: "Light, elegant blonde", Tags: []string{"light", "elegant", "sophisticated"}},
	{ID: "butter-blonde", Name: "Butter Blonde", Hex: "#F4E4BC", Family: FamilyBlonde, IsPremium: true, Description: "Soft, buttery blonde", Tags: []string{"soft", "warm", "natural"}},

	// Red
	{ID: "auburn", Name: "Auburn", Hex: "#A52A2A", Family: FamilyRed, Description: "Classic auburn red", Tags: []string{"natural", "warm", "classic"}},
	{ID: "copper", Name: "Copper", Hex: "#B87333", Family: FamilyRed, IsPremium: true, Description: "Bright copper red", Tags: []string{"vibrant", "warm", "bold"}},
	{ID: "mahogany", Name: "Mahogany", Hex: "#722F37", Family: FamilyRed, IsPremium: true, Description: "Deep red-brown", Tags: []string{"rich", "sophisticated", "warm"}},
	{ID: "burgundy", Name: "Burgundy", Hex: "#800020", Family: FamilyRed, IsPremium: true, Description: "Deep wine red", Tags: []string{"dramatic", "rich", "bold"}},
	{ID: "cherry-red", Name: "Cherry Red", Hex: "#DE3163", Family: FamilyRed, IsPremium: true, Description: "Vibrant cherry red", Tags: []string{"bold", "vibrant", "statement"}},

	// Gray
	{ID: "salt-pepper", Name: "Salt & Pepper", Hex: "#808080", Family: FamilyGray, Description: "Natural gray blend", Tags: []string{"natural", "mature", "distinguished"}},
	{ID: "silver-gray", Name: "Silver Gray", Hex: "#C0C0C0", Family: FamilyGray, IsPremium: true, Description: "Elegant silver gray", Tags: []string{"sophisticated", "modern", "cool"}},
	{ID: "charcoal-gray", Name: "Charcoal Gray", Hex: "#36454F", Family: FamilyGray, IsPremium: true, Description: "Deep charcoal gray", Tags: []string{"modern", "sophisticated", "cool"}},

	// Platinum
	{ID: "platinum-blonde", Name: "Platinum Blonde", Hex: "#E5E4E2", Family: FamilyPlatinum, IsPremium: true, Description: "Ultra-light platinum", Tags: []string{"dramatic", "high-maintenance", "bold"}},
	{ID: "ice-blonde", Name: "Ice Blonde", Hex: "#F8F8FF", Family: FamilyPlatinum, IsPremium: true, Description: "Cool platinum with icy undertones", Tags: []string{"cool", "dramatic", "modern"}},

	// Fashion
	{ID: "rose-gold", Name: "Rose Gold", Hex: "#E8B4B8", Family: FamilyFashion, IsPremium: true, Description: "Trendy rose gold", Tags: []string{"trendy", "feminine", "modern"}},
	{ID: "smoky-mauve", Name: "Smoky Mauve", Hex: "#915F6D", Family: FamilyFashion, IsPremium: true, Description: "Sophisticated mauve", Tags: []string{"unique", "sophisticated", "cool"}},

	// Pastel
	{ID: "pastel-pink", Name: "Pastel Pink", Hex: "#FFB6C1", Family: FamilyPastel, IsPremium: true, Description: "Soft pastel pink", Tags: []string{"playful", "feminine", "creative"}},
	{ID: "lavender", Name: "Lavender", Hex: "#E6E6FA", Family: FamilyPastel, IsPremium: true, Description: "Soft lavender purple", Tags: []string{"dreamy", "unique", "cool"}},
	{ID: "mint-green", Name: "Mint Green", Hex: "#98FB98", Family: FamilyPastel, IsPremium: true, Description: "Fresh mint green", Tags: []string{"unique", "fresh", "creative"}},

	// Vibrant
	{ID: "electric-blue", Name: "Electric Blue", Hex: "#7DF9FF", Family: FamilyVibrant, IsPremium: true, Description: "Bold electric blue", Tags: []string{"bold", "creative", "statement"}},
	{ID: "neon-green", Name: "Neon Green", Hex: "#39FF14", Family: FamilyVibrant, IsPremium: true, Description: "Bright neon green", Tags: []string{"bold", "creative", "statement"}},
	{ID: "hot-pink", Name: "Hot Pink", Hex: "#FF69B4", Family: FamilyVibrant, IsPremium: true, Description: "Vibrant hot pink", Tags: []string{"bold", "fun", "statement"}},
	{ID: "royal-purple", Name: "Royal Purple", Hex: "#7851A9", Family: FamilyVibrant, IsPremium: true, Description: "Rich royal purple", Tags: []string{"bold", "regal", "statement"}},
}

var defaultPalette = MustNew(defaultColors)

// Default returns the production palette. The same instance is returned on
// every call.
func Default() *Palette {
	return defaultPalette
}
