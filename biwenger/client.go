package biwenger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/time/rate"

	"github.com/jorgelillo7/biwenger-tools/model"
)

const (
	// BiwengerURL is the authenticated API used for league-scoped calls.
	BiwengerURL = "https://biwenger.as.com/api/v2"
	// BiwengerDataURL hosts the unauthenticated competition player database.
	BiwengerDataURL = "https://cf.biwenger.com/api/v2"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
)

// Client wraps the fantasy platform API. All calls are made on behalf of
// one league, with the session established lazily on first use.
type Client interface {
	// GetLeagueUsers returns the league's user directory, id -> display name.
	GetLeagueUsers(ctx context.Context) (map[int64]string, error)
	// GetBoardPage returns one page of board messages starting at offset.
	GetBoardPage(ctx context.Context, offset, limit int) ([]BoardMessage, error)
	// GetStandings returns the league standings, one entry per manager.
	GetStandings(ctx context.Context) ([]Standing, error)
	// LoadPlayers downloads the competition-wide player database.
	LoadPlayers(ctx context.Context) (map[int64]model.Player, error)
	// GetManagerSquad returns the squad slots owned by one manager.
	GetManagerSquad(ctx context.Context, managerID int64) ([]model.SquadPlayer, error)
	// GetMarketSales returns the players currently up for sale.
	GetMarketSales(ctx context.Context) ([]MarketSale, error)
}

// Config carries everything the client needs. URL and DataURL are only
// overridden by tests.
type Config struct {
	Email    string
	Password string
	LeagueID string
	URL      string
	DataURL  string
}

type client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter

	mu     sync.Mutex
	token  string
	userID int64
}

func New(cfg Config) (Client, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("biwenger credentials are required")
	}
	if cfg.LeagueID == "" {
		return nil, errors.New("biwenger league id is required")
	}
	if cfg.URL == "" {
		cfg.URL = BiwengerURL
	}
	if cfg.DataURL == "" {
		cfg.DataURL = BiwengerDataURL
	}
	c := &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		// The API is unofficial, keep roughly two requests per second at most.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
	return c, nil
}

// ensureSession logs in and resolves the league-scoped user id. The
// token is kept for the life of the client; runs are short enough that
// expiry is not a concern.
func (c *client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return nil
	}

	form := url.Values{}
	form.Set("email", c.cfg.Email)
	form.Set("password", c.cfg.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setCommonHeaders(req)

	// Auth calls are deliberately retry-free, a failed login aborts the run.
	body, err := c.doOnce(ctx, req)
	if err != nil {
		return fmt.Errorf("error logging into biwenger: %w", err)
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return fmt.Errorf("error parsing login response: %w", err)
	}
	if login.Token == "" {
		return errors.New("login succeeded but no token was returned")
	}
	c.token = login.Token

	// The account response tells us which user we are inside the league,
	// the board and squad endpoints require it as a header.
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"/account", nil)
	if err != nil {
		return fmt.Errorf("error creating account request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Authorization", "Bearer "+c.token)

	body, err = c.doOnce(ctx, req)
	if err != nil {
		return fmt.Errorf("error fetching account data: %w", err)
	}

	var account accountResponse
	if err := json.Unmarshal(body, &account); err != nil {
		return fmt.Errorf("error parsing account response: %w", err)
	}
	for _, l := range account.Data.Leagues {
		if fmt.Sprint(l.ID) == c.cfg.LeagueID {
			c.userID = l.User.ID
			break
		}
	}
	if c.userID == 0 {
		c.token = ""
		return fmt.Errorf("no user found for league %s", c.cfg.LeagueID)
	}

	return nil
}

func (c *client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Lang", "es")
	req.Header.Set("X-Version", "628")
}

// get performs an authenticated league-scoped GET and returns the body.
func (c *client) get(ctx context.Context, u string) ([]byte, error) {
	if err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-League", c.cfg.LeagueID)
	req.Header.Set("X-User", fmt.Sprint(c.userID))

	return c.fetch(ctx, req)
}

// doOnce executes a request exactly once, with rate limiting but no
// retry.
func (c *client) doOnce(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
	}
	return io.ReadAll(resp.Body)
}

// fetch executes a bodyless request with rate limiting and a short
// retry on transient failures. Permanent errors surface to the caller
// untouched.
func (c *client) fetch(ctx context.Context, req *http.Request) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			return c.doOnce(ctx, req)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(250*time.Millisecond),
		retry.MaxJitter(100*time.Millisecond),
		retry.RetryIf(isRetryableError),
	)
}

// HTTPError is a non-200 response from the platform.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	// Network errors and timeouts are worth one more try.
	return true
}

func (c *client) GetLeagueUsers(ctx context.Context) (map[int64]string, error) {
	standings, err := c.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	users := make(map[int64]string, len(standings))
	for _, s := range standings {
		if s.ID != 0 {
			users[s.ID] = s.Name
		}
	}
	return users, nil
}

func (c *client) GetStandings(ctx context.Context) ([]Standing, error) {
	u := fmt.Sprintf("%s/league/%s?fields=standings", c.cfg.URL, c.cfg.LeagueID)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error fetching league standings: %w", err)
	}

	var parsed leagueResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing league standings: %w", err)
	}
	return parsed.Data.Standings, nil
}

func (c *client) GetBoardPage(ctx context.Context, offset, limit int) ([]BoardMessage, error) {
	u := fmt.Sprintf("%s/league/%s/board?type=text&limit=%d&offset=%d", c.cfg.URL, c.cfg.LeagueID, limit, offset)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error fetching board page at offset %d: %w", offset, err)
	}

	var parsed boardResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing board page: %w", err)
	}
	return parsed.Data, nil
}

// jsonpRegex strips the jsonp_<n>(...) wrapper the data endpoint
// sometimes responds with.
var jsonpRegex = regexp.MustCompile(`(?s)^\s*jsonp_\d+\((.*)\)\s*$`)

func (c *client) LoadPlayers(ctx context.Context) (map[int64]model.Player, error) {
	u := fmt.Sprintf("%s/competitions/la-liga/data?lang=es&score=100", c.cfg.DataURL)

	// The player database is public, no session or league headers needed.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	body, err := c.fetch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error fetching player database: %w", err)
	}

	var parsed competitionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		m := jsonpRegex.FindSubmatch(body)
		if m == nil {
			return nil, fmt.Errorf("error parsing player database: %w", err)
		}
		if err := json.Unmarshal(m[1], &parsed); err != nil {
			return nil, fmt.Errorf("error parsing jsonp player database: %w", err)
		}
	}

	players := make(map[int64]model.Player, len(parsed.Data.Players))
	for _, p := range parsed.Data.Players {
		players[p.ID] = model.Player{
			ID:           p.ID,
			Name:         p.Name,
			Position:     model.ParsePosition(p.Position),
			Price:        p.Price,
			AltPositions: len(p.AltPositions) > 0,
		}
	}
	return players, nil
}

func (c *client) GetManagerSquad(ctx context.Context, managerID int64) ([]model.SquadPlayer, error) {
	u := fmt.Sprintf("%s/user/%d?fields=players(id,owner)", c.cfg.URL, managerID)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error fetching squad for manager %d: %w", managerID, err)
	}

	var parsed squadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing squad for manager %d: %w", managerID, err)
	}

	squad := make([]model.SquadPlayer, 0, len(parsed.Data.Players))
	for _, p := range parsed.Data.Players {
		squad = append(squad, model.SquadPlayer{ID: p.ID, Clause: p.Owner.Clause})
	}
	return squad, nil
}

func (c *client) GetMarketSales(ctx context.Context) ([]MarketSale, error) {
	u := fmt.Sprintf("%s/league/%s/market", c.cfg.URL, c.cfg.LeagueID)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error fetching market sales: %w", err)
	}

	var parsed marketResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing market sales: %w", err)
	}
	return parsed.Data.Sales, nil
}
