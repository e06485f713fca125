package testutils

import (
	"net/http"
	"net/http/httptest"
)

const tipsPage = `<html><head>
<script>
const marketCaching=[{"name":"Oihan Sancet","tip":"Comprar"},{"name":"Carlos Vicente","tip":"Vender"},{"name":"Sin Consejo"}];
</script>
</head><body>mercado</body></html>
`

// FakeTipsServer serves a page with the tips site's inline market data.
type FakeTipsServer struct {
	s *httptest.Server
}

func NewFakeTipsServer() *FakeTipsServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(tipsPage))
	})
	return &FakeTipsServer{s: httptest.NewServer(mux)}
}

func (f *FakeTipsServer) Close() {
	f.s.Close()
}

func (f *FakeTipsServer) URL() string {
	return f.s.URL
}
