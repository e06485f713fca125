package controller

import (
	"strings"

	"github.com/jorgelillo7/biwenger-tools/model"
)

// playerNameMappings resolves players the platform and the analytics
// site know by entirely different names: nicknames, surname-only
// listings, and a few deliberate disambiguations. Keys and values are
// normalized names.
var playerNameMappings = map[string]string{
	"odysseas":       "vlachodimos",
	"sancet":         "oihan sancet",
	"carlos vicente": "c. vicente",
	"javier rueda":   "javi rueda",
	"javi":           "javier",
	"brugue":         "brugui",
	"nacho":          "ignacio",
	"alhassane":      "rahim",
}

// findPlayerMatch resolves a platform player name against the analytics
// map using a cascade of strategies, most specific first. An unmatched
// name is a normal outcome and yields the N/A payload, never an error.
func findPlayerMatch(name string, coeffs *model.AnalyticsMap) model.PlayerAnalytics {
	norm := model.NormalizeName(name)

	// Strategy 1: direct lookup by normalized name.
	if p, ok := coeffs.Get(norm); ok {
		return p
	}

	// Strategy 2: manual exception table.
	if mapped, ok := playerNameMappings[norm]; ok {
		if p, ok := coeffs.Get(mapped); ok {
			return p
		}
	}

	// Strategy 3: structural decomposition for multi-token names, the
	// sites disagree on whether players are listed by surname, given
	// name, or "initial. surname".
	tokens := strings.Fields(norm)
	if len(tokens) > 1 {
		if p, ok := coeffs.Get(tokens[len(tokens)-1]); ok {
			return p
		}
		if p, ok := coeffs.Get(tokens[0]); ok {
			return p
		}
		initial := string([]rune(tokens[0])[0]) + ". " + tokens[len(tokens)-1]
		if p, ok := coeffs.Get(initial); ok {
			return p
		}
	}

	// Strategy 4: first analytics key whose token set contains every
	// token of the candidate. The map preserves insertion order, so the
	// scan is deterministic.
	for _, key := range coeffs.Keys() {
		if containsAllTokens(strings.Fields(key), tokens) {
			p, _ := coeffs.Get(key)
			return p
		}
	}

	return model.UnmatchedAnalytics()
}

func containsAllTokens(haystack, needles []string) bool {
	set := make(map[string]bool, len(haystack))
	for _, t := range haystack {
		set[t] = true
	}
	for _, n := range needles {
		if !set[n] {
			return false
		}
	}
	return true
}
