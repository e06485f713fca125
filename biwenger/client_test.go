package biwenger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorgelillo7/biwenger-tools/model"
	"github.com/jorgelillo7/biwenger-tools/testutils"
)

const testLeagueID = "340703"

func newTestClient(t *testing.T, f *testutils.FakeBiwengerServer) Client {
	t.Helper()
	c, err := New(Config{
		Email:    "user@example.com",
		Password: "secret",
		LeagueID: testLeagueID,
		URL:      f.URL(),
		DataURL:  f.URL(),
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return c
}

func TestNewValidation(t *testing.T) {
	tests := map[string]Config{
		"missing email":    {Password: "secret", LeagueID: testLeagueID},
		"missing password": {Email: "user@example.com", LeagueID: testLeagueID},
		"missing league":   {Email: "user@example.com", Password: "secret"},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(cfg); err == nil {
				t.Errorf("expected a config error")
			}
		})
	}
}

func TestGetLeagueUsers(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()
	c := newTestClient(t, f)

	users, err := c.GetLeagueUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[int64]string{1001: "Autor1", 1002: "Autor2"}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("user directory incorrect (-want +got):\n%s", diff)
	}
}

func TestGetBoardPage(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()
	c := newTestClient(t, f)

	page, err := c.GetBoardPage(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size incorrect, wanted 2, got %d", len(page))
	}
	if page[0].ID != 3 || page[1].ID != 4 {
		t.Errorf("page slice incorrect: ids %d, %d", page[0].ID, page[1].ID)
	}
	if page[0].Title != "Crónica - La primera jornada" {
		t.Errorf("title incorrect: '%s'", page[0].Title)
	}
	if f.BoardRequests != 1 {
		t.Errorf("board request count incorrect, wanted 1, got %d", f.BoardRequests)
	}
}

func TestLoadPlayers(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()
	c := newTestClient(t, f)

	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("player count incorrect, wanted 4, got %d", len(players))
	}

	sancet := players[101]
	if sancet.Name != "Oihan Sancet" || sancet.Position != model.POS_CENTROCAMPISTA {
		t.Errorf("player decoded incorrectly: %+v", sancet)
	}
	if !sancet.AltPositions {
		t.Errorf("alternate positions flag not set: %+v", sancet)
	}
	if vicente := players[102]; vicente.AltPositions {
		t.Errorf("alternate positions flag set incorrectly: %+v", vicente)
	}
	if keeper := players[104]; keeper.Position != model.POS_PORTERO {
		t.Errorf("position mapping incorrect: %+v", keeper)
	}
}

func TestLoadPlayersJSONP(t *testing.T) {
	payload := `{"data":{"players":{"7":{"id":7,"name":"Jugador Uno","position":2,"price":100}}}}`
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript")
		fmt.Fprintf(w, "jsonp_1462(%s)\n", payload)
	}))
	defer s.Close()

	c, err := New(Config{Email: "u@e.com", Password: "p", LeagueID: testLeagueID, DataURL: s.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := players[7]; p.Name != "Jugador Uno" || p.Position != model.POS_DEFENSA {
		t.Errorf("jsonp payload decoded incorrectly: %+v", p)
	}
}

func TestGetManagerSquad(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()
	c := newTestClient(t, f)

	squad, err := c.GetManagerSquad(context.Background(), 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.SquadPlayer{
		{ID: 101, Clause: 7500000},
		{ID: 103, Clause: 4000000},
		{ID: 999, Clause: 1},
	}
	if diff := cmp.Diff(want, squad); diff != "" {
		t.Errorf("squad incorrect (-want +got):\n%s", diff)
	}
}

func TestGetMarketSales(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()
	c := newTestClient(t, f)

	sales, err := c.GetMarketSales(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("sale count incorrect, wanted 1, got %d", len(sales))
	}
	if sales[0].Player.ID != 104 || sales[0].Price != 1250000 {
		t.Errorf("sale decoded incorrectly: %+v", sales[0])
	}
}

func TestUnknownLeagueFailsLogin(t *testing.T) {
	f := testutils.NewFakeBiwengerServer()
	defer f.Close()

	c, err := New(Config{
		Email:    "user@example.com",
		Password: "secret",
		LeagueID: "999999", // not in the account fixture
		URL:      f.URL(),
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	if _, err := c.GetStandings(context.Background()); err == nil {
		t.Fatalf("expected an error for a league the account is not in")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"rate limited":   {&HTTPError{StatusCode: http.StatusTooManyRequests}, true},
		"server error":   {&HTTPError{StatusCode: http.StatusBadGateway}, true},
		"not found":      {&HTTPError{StatusCode: http.StatusNotFound}, false},
		"unauthorized":   {&HTTPError{StatusCode: http.StatusUnauthorized}, false},
		"network error":  {errors.New("connection reset"), true},
		"wrapped status": {fmt.Errorf("wrapped: %w", &HTTPError{StatusCode: http.StatusServiceUnavailable}), true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := isRetryableError(tc.err); got != tc.want {
				t.Errorf("retry decision incorrect, wanted %v, got %v", tc.want, got)
			}
		})
	}
}
