// Package notify delivers run results to the league's Telegram chat.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const TelegramURL = "https://api.telegram.org"

// Notifier sends run artifacts to a chat. Delivery failures are
// reported to the caller, who decides whether they abort anything — the
// scraper treats them as log-and-continue.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
	// SendDocument uploads a file with a caption.
	SendDocument(ctx context.Context, caption, filename string, content []byte) error
}

type telegramNotifier struct {
	url        string
	botToken   string
	chatID     string
	httpClient *http.Client
}

func NewTelegram(botToken, chatID, apiURL string) (Notifier, error) {
	if botToken == "" || chatID == "" {
		return nil, fmt.Errorf("telegram bot token and chat id are required")
	}
	if apiURL == "" {
		apiURL = TelegramURL
	}
	return &telegramNotifier{
		url:      apiURL,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}, nil
}

func (n *telegramNotifier) SendMessage(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", text)

	u := fmt.Sprintf("%s/bot%s/sendMessage", n.url, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return n.do(req)
}

func (n *telegramNotifier) SendDocument(ctx context.Context, caption, filename string, content []byte) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("chat_id", n.chatID); err != nil {
		return fmt.Errorf("error building telegram form: %w", err)
	}
	if err := mw.WriteField("caption", caption); err != nil {
		return fmt.Errorf("error building telegram form: %w", err)
	}
	fw, err := mw.CreateFormFile("document", filename)
	if err != nil {
		return fmt.Errorf("error building telegram form: %w", err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("error building telegram form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("error building telegram form: %w", err)
	}

	u := fmt.Sprintf("%s/bot%s/sendDocument", n.url, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return fmt.Errorf("error creating telegram request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return n.do(req)
}

func (n *telegramNotifier) do(req *http.Request) error {
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d from telegram: %s", resp.StatusCode, string(b))
	}
	return nil
}
