package testutils

import (
	"net/http"
	"net/http/httptest"
	"strings"
)

// FakeAnalyticsServer serves a static rendering of the coefficients
// table, in the same cell layout the real site uses.
type FakeAnalyticsServer struct {
	s *httptest.Server
}

func NewFakeAnalyticsServer() *FakeAnalyticsServer {
	rows := []struct {
		name, coefficient, expectedScore string
	}{
		{"Oihan Sancet", "8.5", "150"},
		{"C. Vicente", "7.5", "130"},
		{"Giuliano", "7.0", "115"},
		{"José Luis Morales", "8.0", "140"},
	}

	var b strings.Builder
	b.WriteString("<html><body><table>\n")
	b.WriteString("<tr><th>#</th><th>Jugador</th><th>Coef</th><th>a</th><th>b</th><th>c</th><th>Puntos</th></tr>\n")
	for _, r := range rows {
		b.WriteString("<tr><td>1</td><td><p>" + r.name + "</p></td><td><p>" + r.coefficient + "</p></td>")
		b.WriteString("<td></td><td></td><td></td><td>" + r.expectedScore + "</td></tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	page := b.String()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	})

	return &FakeAnalyticsServer{s: httptest.NewServer(mux)}
}

func (f *FakeAnalyticsServer) Close() {
	f.s.Close()
}

func (f *FakeAnalyticsServer) URL() string {
	return f.s.URL
}
