package model

// NotAvailable is the sentinel for any analytics value that could not
// be resolved. Unmatched players are a normal outcome, never an error.
const NotAvailable = "N/A"

// PlayerAnalytics is the per-player payload scraped from the analytics
// site. Both fields are kept as the site presents them.
type PlayerAnalytics struct {
	Coefficient   string
	ExpectedScore string
}

// UnmatchedAnalytics is the payload returned when no matching strategy
// finds a player in the analytics map.
func UnmatchedAnalytics() PlayerAnalytics {
	return PlayerAnalytics{Coefficient: NotAvailable, ExpectedScore: NotAvailable}
}

// AnalyticsMap maps normalized player names to their analytics payload.
// It remembers insertion order so that scans over its keys are
// deterministic, plain map iteration would make the subset-matching
// fallback depend on runtime map ordering.
type AnalyticsMap struct {
	keys []string
	data map[string]PlayerAnalytics
}

func NewAnalyticsMap() *AnalyticsMap {
	return &AnalyticsMap{data: make(map[string]PlayerAnalytics)}
}

// Set stores a payload under a normalized-name key. The key keeps the
// position of its first insertion.
func (m *AnalyticsMap) Set(key string, p PlayerAnalytics) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = p
}

func (m *AnalyticsMap) Get(key string) (PlayerAnalytics, bool) {
	p, ok := m.data[key]
	return p, ok
}

// Keys returns the map's keys in insertion order. The returned slice is
// shared, callers must not modify it.
func (m *AnalyticsMap) Keys() []string {
	return m.keys
}

func (m *AnalyticsMap) Len() int {
	return len(m.keys)
}
