package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/go-chi/chi/v5"
)

//go:embed biwengerdata
var biwengerdata embed.FS

// FakeBiwengerServer emulates the platform API: login, account, league
// standings, squads and a paginated board. Board messages default to a
// small fixture set and can be replaced per test.
type FakeBiwengerServer struct {
	s        *httptest.Server
	messages []map[string]any

	// BoardRequests counts the board page requests served, so tests can
	// assert pagination behavior.
	BoardRequests int
}

func NewFakeBiwengerServer() *FakeBiwengerServer {
	f := &FakeBiwengerServer{
		messages: DefaultBoardMessages(),
	}

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, "login.json")
	})
	r.Get("/account", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, "account.json")
	})
	r.Get("/league/{leagueID}", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, "league.json")
	})
	r.Get("/league/{leagueID}/board", f.boardHandler)
	r.Get("/league/{leagueID}/market", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, "market.json")
	})
	r.Get("/user/{managerID}", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, fmt.Sprintf("squad_%s.json", chi.URLParam(r, "managerID")))
	})
	r.Get("/competitions/la-liga/data", func(w http.ResponseWriter, r *http.Request) {
		serveBiwengerFile(w, "players.json")
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeBiwengerServer) Close() {
	f.s.Close()
}

func (f *FakeBiwengerServer) URL() string {
	return f.s.URL
}

// SetBoardMessages replaces the board fixture. Each entry is one raw
// message object as the API would return it.
func (f *FakeBiwengerServer) SetBoardMessages(messages []map[string]any) {
	f.messages = messages
	f.BoardRequests = 0
}

func (f *FakeBiwengerServer) boardHandler(w http.ResponseWriter, r *http.Request) {
	f.BoardRequests++

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 200
	}

	page := []map[string]any{}
	if offset < len(f.messages) {
		end := offset + limit
		if end > len(f.messages) {
			end = len(f.messages)
		}
		page = f.messages[offset:end]
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"data": page}); err != nil {
		log.Printf("error encoding board page: %v", err)
	}
}

// DefaultBoardMessages is the stock board fixture: four messages from
// known authors plus one from an author outside the league directory.
func DefaultBoardMessages() []map[string]any {
	return []map[string]any{
		{
			"id":      1,
			"date":    1722254400, // 29-07-2024 12:00:00 UTC
			"author":  map[string]any{"id": 1001, "name": "Autor1"},
			"title":   "Comunicado - Arranca la liga",
			"content": "<p>Bienvenidos a una <b>nueva temporada</b>.</p>",
		},
		{
			"id":      2,
			"date":    1722340800,
			"author":  map[string]any{"id": 1002, "name": "Autor2"},
			"title":   "Dato - Ventas de la jornada",
			"content": "<p>Resumen de ventas.</p>",
		},
		{
			"id":      3,
			"date":    1722427200,
			"author":  map[string]any{"id": 1001, "name": "Autor1"},
			"title":   "Crónica - La primera jornada",
			"content": "<p>Una jornada para recordar.</p>",
		},
		{
			"id":      4,
			"date":    1722513600,
			"author":  map[string]any{"id": 4242, "name": "Forastero"},
			"title":   "",
			"content": "<p>Mensaje de un autor fuera de la liga.</p>",
		},
	}
}

func serveBiwengerFile(w http.ResponseWriter, name string) {
	b, err := biwengerdata.ReadFile(fmt.Sprintf("biwengerdata/%s", name))
	if err != nil {
		log.Printf("error reading biwengerdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
