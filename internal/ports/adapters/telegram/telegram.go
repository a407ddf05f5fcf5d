// Package telegram delivers digests through the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/types"
)

const DefaultBaseURL = "https://api.telegram.org"

// DefaultAllowedHosts is the base-URL allowlist used when config names none.
var DefaultAllowedHosts = []string{"api.telegram.org"}

// fallbackText is sent when the full digest is rejected, so the user still
// gets notified.
const fallbackText = "📧 You have unread emails in your inbox!\n\nCheck your email client for details."

type Adapter struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

func New(botToken, chatID, baseURL string) *Adapter {
	return &Adapter{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  httpapi.NormalizeBaseURL(baseURL, DefaultBaseURL),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Send posts the message as plain text (no parse mode, so markup in mail
// subjects can never break delivery). If the API rejects it, a simplified
// notification is attempted before giving up.
func (a *Adapter) Send(ctx context.Context, text string) error {
	if a.botToken == "" || a.chatID == "" {
		return fmt.Errorf("%w: telegram bot token and chat id are required", types.ErrValidation)
	}

	if err := a.sendMessage(ctx, text); err != nil {
		if fallbackErr := a.sendMessage(ctx, fallbackText); fallbackErr == nil {
			return nil
		}
		return err
	}
	return nil
}

func (a *Adapter) sendMessage(ctx context.Context, text string) error {
	form := url.Values{
		"chat_id": {a.chatID},
		"text":    {text},
	}
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", a.baseURL, a.botToken)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: telegram: %v", types.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: telegram status %d: %s",
			types.ErrExternalService, resp.StatusCode,
			httpapi.Truncate(httpapi.RedactSecrets(string(rb), a.botToken), 400))
	}
	return nil
}
