package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/jorgelillo7/biwenger-tools/model"
)

const TipsURL = "https://www.jornadaperfecta.com/mercado/"

// TipsClient fetches the tips site's market recommendations, keyed by
// normalized player name.
type TipsClient interface {
	GetTipsMap(ctx context.Context) (map[string]string, error)
}

type tipsClient struct {
	url        string
	httpClient *http.Client
}

// NewTips returns a client for the tips site. An empty url means the
// production site, tests point it at a fake server.
func NewTips(url string) (TipsClient, error) {
	if url == "" {
		url = TipsURL
	}
	return &tipsClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}, nil
}

// The tips site inlines its market data as a script constant instead of
// serving it from an endpoint.
var marketCachingRegex = regexp.MustCompile(`(?s)const marketCaching=(\[.*?\]);`)

type tipEntry struct {
	Name string `json:"name"`
	Tip  string `json:"tip"`
}

func (c *tipsClient) GetTipsMap(ctx context.Context) (map[string]string, error) {
	body, err := fetchPage(ctx, c.httpClient, c.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching tips page: %w", err)
	}

	m := marketCachingRegex.FindSubmatch(body)
	if m == nil {
		return nil, fmt.Errorf("no marketCaching script found in tips page")
	}

	var entries []tipEntry
	if err := json.Unmarshal(m[1], &entries); err != nil {
		return nil, fmt.Errorf("error parsing tips data: %w", err)
	}

	tips := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		tip := e.Tip
		if tip == "" {
			tip = model.NotAvailable
		}
		tips[model.NormalizeName(e.Name)] = tip
	}
	return tips, nil
}
