package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/testutils"
)

func TestGetAnalyticsMap(t *testing.T) {
	f := testutils.NewFakeAnalyticsServer()
	defer f.Close()

	c, err := NewAnalytics(f.URL())
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	coeffs, err := c.GetAnalyticsMap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coeffs.Len() != 4 {
		t.Fatalf("entry count incorrect, wanted 4, got %d", coeffs.Len())
	}

	// Keys are normalized: lowercased and with diacritics folded.
	tests := map[string]model.PlayerAnalytics{
		"oihan sancet":      {Coefficient: "8.5", ExpectedScore: "150"},
		"c. vicente":        {Coefficient: "7.5", ExpectedScore: "130"},
		"jose luis morales": {Coefficient: "8.0", ExpectedScore: "140"},
	}
	for key, want := range tests {
		got, ok := coeffs.Get(key)
		if !ok {
			t.Errorf("key '%s' missing from the map", key)
			continue
		}
		if got != want {
			t.Errorf("entry for '%s' incorrect, wanted %+v, got %+v", key, want, got)
		}
	}

	// The table order survives into the map.
	keys := coeffs.Keys()
	if keys[0] != "oihan sancet" || keys[3] != "jose luis morales" {
		t.Errorf("key order incorrect: %v", keys)
	}
}

func TestGetAnalyticsMapSkipsShortRows(t *testing.T) {
	page := `<html><body><table>
<tr><td>only</td><td>three</td><td>cells</td></tr>
<tr><td>1</td><td>Jugador Real</td><td>5.0</td><td></td><td></td><td></td><td>90</td></tr>
</table></body></html>`
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer s.Close()

	c, err := NewAnalytics(s.URL)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	coeffs, err := c.GetAnalyticsMap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coeffs.Len() != 1 {
		t.Errorf("entry count incorrect, wanted 1, got %d", coeffs.Len())
	}
	if _, ok := coeffs.Get("jugador real"); !ok {
		t.Errorf("full row missing from the map")
	}
}

func TestGetAnalyticsMapServerError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer s.Close()

	c, err := NewAnalytics(s.URL)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	if _, err := c.GetAnalyticsMap(context.Background()); err == nil {
		t.Errorf("expected an error on a non-200 response")
	}
}
