package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// RowDateFormat is the timestamp layout used in persisted message rows.
	RowDateFormat = "02-01-2006 15:04:05"

	// UnknownDate is stored in place of a timestamp the source did not provide.
	UnknownDate = "N/A"

	// UnknownAuthor is the author shown when the source id cannot be
	// resolved against the league user directory.
	UnknownAuthor = "Autor Desconocido"

	// UntitledMessage is stored for messages that came without a title.
	UntitledMessage = "Sin título"
)

// Message is one league board post, as persisted in the comunicados CSV.
// Messages are append-only: once created they are never mutated, only
// carried forward across scraper runs.
type Message struct {
	Fingerprint string
	Date        string // RowDateFormat, or UnknownDate
	Author      string
	Title       string
	Content     string // raw HTML from the board
	Category    Category
}

// SortKey reconstructs the message timestamp from the persisted row
// date. Rows with a missing or unparseable date get the zero time so
// that a most-recent-first sort pushes them to the end.
func (m *Message) SortKey() time.Time {
	t, err := time.Parse(RowDateFormat, m.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders an epoch timestamp in the persisted row layout.
// A zero timestamp means the source did not provide one.
func FormatDate(epoch int64) string {
	if epoch == 0 {
		return UnknownDate
	}
	return time.Unix(epoch, 0).Format(RowDateFormat)
}

// Fingerprint derives the stable identity of a board message from its
// timestamp and markup-stripped content. A zero timestamp contributes
// the empty string, matching rows ingested before the source exposed
// dates. The digest is only ever used as a set-membership key.
func Fingerprint(epoch int64, htmlContent string) string {
	var b strings.Builder
	if epoch != 0 {
		b.WriteString(strconv.FormatInt(epoch, 10))
	}
	b.WriteString(StripMarkup(htmlContent))
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// StripMarkup reduces an HTML fragment to its visible text: text nodes
// are trimmed and joined with single spaces. Invalid markup falls back
// to the trimmed input, html.Parse is lenient enough that this should
// not happen in practice.
func StripMarkup(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

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
	walk(root)

	return strings.Join(parts, " ")
}
