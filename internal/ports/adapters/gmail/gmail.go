// Package gmail fetches unread mail through the Gmail REST API.
package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rohitk523/adk-project/internal/domain/mailsum"
	"github.com/rohitk523/adk-project/internal/ports/adapters/googleauth"
	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/types"
)

const DefaultBaseURL = "https://gmail.googleapis.com"

// DefaultAllowedHosts is the base-URL allowlist used when config names none.
var DefaultAllowedHosts = []string{"gmail.googleapis.com", "oauth2.googleapis.com"}

type Adapter struct {
	creds     googleauth.Credentials
	exchanger *googleauth.Exchanger
	baseURL   string
	client    *http.Client
}

func New(creds googleauth.Credentials, tokenURL, baseURL string) *Adapter {
	return &Adapter{
		creds:     creds,
		exchanger: googleauth.New(tokenURL),
		baseURL:   httpapi.NormalizeBaseURL(baseURL, DefaultBaseURL),
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

type messageRef struct {
	ID string `json:"id"`
}

type message struct {
	ID      string          `json:"id"`
	Payload mailsum.Payload `json:"payload"`
}

// UnreadMessages lists the most recent unread messages and fetches each one
// in full, flattening headers and body for summarization.
func (a *Adapter) UnreadMessages(ctx context.Context, max int) ([]types.EmailMessage, error) {
	if max <= 0 {
		max = 10
	}
	token, err := a.exchanger.AccessToken(ctx, a.creds)
	if err != nil {
		return nil, err
	}

	listURL := fmt.Sprintf("%s/gmail/v1/users/me/messages?q=%s&maxResults=%d",
		a.baseURL, url.QueryEscape("is:unread"), max)
	var list struct {
		Messages []messageRef `json:"messages"`
	}
	if err := a.getJSON(ctx, token, listURL, &list); err != nil {
		return nil, err
	}

	out := make([]types.EmailMessage, 0, len(list.Messages))
	for _, ref := range list.Messages {
		var msg message
		msgURL := fmt.Sprintf("%s/gmail/v1/users/me/messages/%s?format=full", a.baseURL, url.PathEscape(ref.ID))
		if err := a.getJSON(ctx, token, msgURL, &msg); err != nil {
			return nil, err
		}
		out = append(out, types.EmailMessage{
			ID:      msg.ID,
			Sender:  mailsum.HeaderValue(msg.Payload.Headers, "From", "Unknown"),
			Subject: mailsum.HeaderValue(msg.Payload.Headers, "Subject", "No Subject"),
			Date:    mailsum.HeaderValue(msg.Payload.Headers, "Date", "Unknown"),
			Body:    mailsum.Truncate(mailsum.ExtractBody(msg.Payload), mailsum.BodyPreviewLimit),
		})
	}
	return out, nil
}

func (a *Adapter) getJSON(ctx context.Context, token, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: gmail: %v", types.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: gmail status %d: %s",
			types.ErrExternalService, resp.StatusCode,
			httpapi.Truncate(httpapi.RedactSecrets(string(rb), token), 400))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode gmail response: %v", types.ErrExternalService, err)
	}
	return nil
}
