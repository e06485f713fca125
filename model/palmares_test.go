package model

import "testing"

func TestIsOtherCategory(t *testing.T) {
	tests := map[string]struct {
		category string
		want     bool
	}{
		"multa lowercase":      {"multa", true},
		"multa capitalized":    {"Multa", true},
		"sancion with accent":  {"Sanción", true},
		"farolillo":            {"Farolillo", true},
		"champion":             {"Campeón", false},
		"empty":                {"", false},
		"padded by hand edits": {" multa ", true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsOtherCategory(tc.category); got != tc.want {
				t.Errorf("category '%s' incorrect, wanted %v, got %v", tc.category, tc.want, got)
			}
		})
	}
}
