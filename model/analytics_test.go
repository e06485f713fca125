package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyticsMapInsertionOrder(t *testing.T) {
	m := NewAnalyticsMap()
	m.Set("b", PlayerAnalytics{Coefficient: "1"})
	m.Set("a", PlayerAnalytics{Coefficient: "2"})
	m.Set("c", PlayerAnalytics{Coefficient: "3"})
	m.Set("a", PlayerAnalytics{Coefficient: "4"}) // update must not move the key

	want := []string{"b", "a", "c"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	if p, ok := m.Get("a"); !ok || p.Coefficient != "4" {
		t.Errorf("expected updated payload for 'a', got %+v (ok=%v)", p, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Errorf("expected miss for unknown key")
	}
	if m.Len() != 3 {
		t.Errorf("expected len 3, got %d", m.Len())
	}
}

func TestUnmatchedAnalytics(t *testing.T) {
	p := UnmatchedAnalytics()
	if p.Coefficient != NotAvailable || p.ExpectedScore != NotAvailable {
		t.Errorf("unexpected sentinel payload: %+v", p)
	}
}
