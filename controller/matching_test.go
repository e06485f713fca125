package controller

import (
	"testing"

	"github.com/jorgelillo7/biwenger-tools/model"
)

// analyticsFixture mirrors the shape of a scraped coefficients map.
func analyticsFixture() *model.AnalyticsMap {
	m := model.NewAnalyticsMap()
	for _, e := range []struct {
		key, coefficient, expectedScore string
	}{
		{"oihan sancet", "8.5", "150"},
		{"javier hernandez", "7.2", "120"},
		{"vlachodimos", "6.8", "110"},
		{"rahim", "6.0", "90"},
		{"javi rueda", "5.5", "80"},
		{"brugui", "7.1", "125"},
		{"r. rodriguez", "6.5", "100"},
		{"m. moreno", "6.2", "95"},
		{"espino", "7.8", "135"},
		{"giuliano", "7.0", "115"},
		{"c. vicente", "7.5", "130"},
		{"cristian", "5.0", "70"},
		{"jose luis morales", "8.0", "140"},
	} {
		m.Set(e.key, model.PlayerAnalytics{Coefficient: e.coefficient, ExpectedScore: e.expectedScore})
	}
	return m
}

func TestFindPlayerMatch(t *testing.T) {
	tests := map[string]struct {
		name            string
		wantCoefficient string
	}{
		"direct match":               {name: "Oihan Sancet", wantCoefficient: "8.5"},
		"direct match with accents":  {name: "Javier Hernández", wantCoefficient: "7.2"},
		"manual mapping":             {name: "Odysseas", wantCoefficient: "6.8"},
		"manual mapping alhassane":   {name: "Alhassane", wantCoefficient: "6.0"},
		"last token only":            {name: "Pacha Espino", wantCoefficient: "7.8"},
		"first token only":           {name: "Giuliano Simeone", wantCoefficient: "7.0"},
		"initial plus surname":       {name: "Carlos Vicente", wantCoefficient: "7.5"},
		"subset single token":        {name: "Morales", wantCoefficient: "8.0"},
		"subset exact single":        {name: "Cristian", wantCoefficient: "5.0"},
		"no match at all":            {name: "Jugador Ficticio", wantCoefficient: model.NotAvailable},
		"direct wins over structure": {name: "Javi Rueda", wantCoefficient: "5.5"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := findPlayerMatch(tc.name, analyticsFixture())
			if tc.wantCoefficient != got.Coefficient {
				t.Errorf("coefficient incorrect, wanted: '%s', got: '%s'", tc.wantCoefficient, got.Coefficient)
			}
		})
	}
}

func TestFindPlayerMatchNoMatchPayload(t *testing.T) {
	got := findPlayerMatch("Jugador Ficticio", analyticsFixture())
	if got.Coefficient != model.NotAvailable || got.ExpectedScore != model.NotAvailable {
		t.Errorf("expected the N/A payload, got %+v", got)
	}
}

// The subset fallback must scan keys in insertion order so that the
// same query always resolves to the same entry.
func TestFindPlayerMatchSubsetDeterministic(t *testing.T) {
	m := model.NewAnalyticsMap()
	m.Set("luis garcia lopez", model.PlayerAnalytics{Coefficient: "1", ExpectedScore: "10"})
	m.Set("luis garcia moreno", model.PlayerAnalytics{Coefficient: "2", ExpectedScore: "20"})

	for i := 0; i < 10; i++ {
		got := findPlayerMatch("Luis García", m)
		if got.Coefficient != "1" {
			t.Fatalf("subset match not deterministic, got coefficient '%s' on run %d", got.Coefficient, i)
		}
	}
}

func TestFindPlayerMatchEmptyMap(t *testing.T) {
	got := findPlayerMatch("Oihan Sancet", model.NewAnalyticsMap())
	if got.Coefficient != model.NotAvailable {
		t.Errorf("expected N/A on empty map, got '%s'", got.Coefficient)
	}
}
