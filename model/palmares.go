package model

// PalmaresEntry is one row of the hand-maintained league honours CSV.
type PalmaresEntry struct {
	Season   string
	Category string
	Value    string
}

// SeasonPalmares groups the palmarés rows of one season. Penalty-style
// categories are split out so the dashboard can render them separately.
type SeasonPalmares struct {
	Season string
	Honors []PalmaresEntry
	Others []PalmaresEntry
}

// otherCategories are the palmarés categories rendered in the "otros"
// block of the dashboard rather than as season honours.
var otherCategories = map[string]bool{
	"multa":     true,
	"sancion":   true,
	"farolillo": true,
}

// IsOtherCategory reports whether a palmarés category belongs in the
// "otros" block. The file is edited by hand, so matching is case and
// accent insensitive.
func IsOtherCategory(category string) bool {
	return otherCategories[NormalizeName(category)]
}
