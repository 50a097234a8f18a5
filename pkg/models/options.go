package models

// Categories is the fixed option set for Recipe.Category. An empty value
// means "uncategorized" and is always accepted.
var Categories = []string{
	"appetizer",
	"main",
	"side",
	"soup",
	"salad",
	"dessert",
	"baking",
	"breakfast",
	"drink",
}

// Difficulties is the fixed option set for Recipe.Difficulty.
var Difficulties = []string{
	"easy",
	"medium",
	"hard",
}

// ValidCategory reports whether v is an allowed category value.
func ValidCategory(v string) bool {
	if v == "" {
		return true
	}
	for _, c := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether v is an allowed difficulty value.
func ValidDifficulty(v string) bool {
	if v == "" {
		return true
	}
	for _, d := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}
