package model

import (
	"strings"
)

type Category string

const (
	CAT_COMUNICADO Category = "comunicado"
	CAT_CRONICA    Category = "cronica"
	CAT_DATO       Category = "dato"
	CAT_CESION     Category = "cesion"
)

// Categories lists every known category, in the column order used by the
// participation CSV.
var Categories = []Category{CAT_COMUNICADO, CAT_DATO, CAT_CESION, CAT_CRONICA}

// CategorizeTitle assigns a category to a board message based on its
// title prefix. Matching is case and accent insensitive. Anything that
// does not carry a recognized prefix is a plain comunicado, including
// untitled messages.
func CategorizeTitle(title string) Category {
	if title == "" {
		return CAT_COMUNICADO
	}
	t := FoldDiacritics(strings.ToUpper(strings.TrimSpace(title)))
	switch {
	case strings.HasPrefix(t, "CRONICA -") || strings.HasPrefix(t, "CRONICAS"):
		return CAT_CRONICA
	case strings.HasPrefix(t, "DATO -") || strings.HasPrefix(t, "DATOS -"):
		return CAT_DATO
	case strings.HasPrefix(t, "CESION -"):
		return CAT_CESION
	default:
		return CAT_COMUNICADO
	}
}
