// Package scrapers holds the thin HTTP clients for the third-party
// sites the analyzer enriches its export with.
package scrapers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/jorgelillo7/biwenger-tools/model"
)

const AnalyticsURL = "https://www.analiticafantasy.com/fantasy-la-liga/coeficiente-probabilidad"

const scraperUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

// AnalyticsClient fetches the per-player coefficient table. The map it
// builds is keyed by normalized player name and read-only during a run.
type AnalyticsClient interface {
	GetAnalyticsMap(ctx context.Context) (*model.AnalyticsMap, error)
}

type analyticsClient struct {
	url        string
	httpClient *http.Client
}

// NewAnalytics returns a client for the coefficients page. An empty url
// means the production site, tests point it at a fake server.
func NewAnalytics(url string) (AnalyticsClient, error) {
	if url == "" {
		url = AnalyticsURL
	}
	return &analyticsClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}, nil
}

func (c *analyticsClient) GetAnalyticsMap(ctx context.Context) (*model.AnalyticsMap, error) {
	body, err := fetchPage(ctx, c.httpClient, c.url)
	if err != nil {
		return nil, fmt.Errorf("error fetching analytics page: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("error parsing analytics page: %w", err)
	}

	// The page presents one table row per player: the name in the second
	// cell, the coefficient in the third and the expected score in the
	// seventh. Rows without enough cells are headers or filler.
	coeffs := model.NewAnalyticsMap()
	for _, row := range findElements(doc, "tr") {
		cells := findElements(row, "td")
		if len(cells) <= 6 {
			continue
		}
		name := nodeText(cells[1])
		coefficient := nodeText(cells[2])
		expectedScore := nodeText(cells[6])
		if name == "" || coefficient == "" {
			continue
		}
		coeffs.Set(model.NormalizeName(name), model.PlayerAnalytics{
			Coefficient:   coefficient,
			ExpectedScore: expectedScore,
		})
	}

	return coeffs, nil
}

func fetchPage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("User-Agent", scraperUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// findElements returns every element named tag under root, in document
// order, without descending into matches.
func findElements(root *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// nodeText collects the trimmed text content of a node's subtree.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
