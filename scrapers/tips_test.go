package scrapers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/testutils"
)

func TestGetTipsMap(t *testing.T) {
	f := testutils.NewFakeTipsServer()
	defer f.Close()

	c, err := NewTips(f.URL())
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	tips, err := c.GetTipsMap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"oihan sancet":   "Comprar",
		"carlos vicente": "Vender",
		"sin consejo":    model.NotAvailable,
	}
	if diff := cmp.Diff(want, tips); diff != "" {
		t.Errorf("tips incorrect (-want +got):\n%s", diff)
	}
}

func TestGetTipsMapNoMarketData(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>sin script</body></html>"))
	}))
	defer s.Close()

	c, err := NewTips(s.URL)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	if _, err := c.GetTipsMap(context.Background()); err == nil {
		t.Errorf("expected an error when the market script is missing")
	}
}

func TestGetTipsMapMalformedData(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<script>const marketCaching=[{"name":];</script>`))
	}))
	defer s.Close()

	c, err := NewTips(s.URL)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	if _, err := c.GetTipsMap(context.Background()); err == nil {
		t.Errorf("expected an error on malformed market data")
	}
}
