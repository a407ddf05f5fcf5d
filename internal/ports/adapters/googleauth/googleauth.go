// Package googleauth exchanges a long-lived refresh token for a short-lived
// access token at the Google OAuth2 token endpoint.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rohitk523/adk-project/internal/ports/adapters/httpapi"
	"github.com/rohitk523/adk-project/internal/types"
)

const (
	DefaultTokenURL = "https://oauth2.googleapis.com/token"

	exchangeTimeout = 30 * time.Second
)

// Credentials is the stored refresh credential for one Google account scope.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

func (c Credentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" {
		return fmt.Errorf("%w: client id, client secret and refresh token are all required", types.ErrAuth)
	}
	return nil
}

type Exchanger struct {
	tokenURL string
	client   *http.Client
}

func New(tokenURL string) *Exchanger {
	return &Exchanger{
		tokenURL: httpapi.NormalizeBaseURL(tokenURL, DefaultTokenURL),
		client:   &http.Client{Timeout: exchangeTimeout},
	}
}

// AccessToken performs the refresh-token grant and returns the access token.
func (e *Exchanger) AccessToken(ctx context.Context, creds Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}

	form := url.Values{
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
		"refresh_token": {creds.RefreshToken},
		"grant_type":    {"refresh_token"},
	}
	req, err := http.NewRequestWithContext(ctx, "POST", e.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token exchange: %v", types.ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token exchange status %d: %s",
			types.ErrAuth, resp.StatusCode,
			httpapi.Truncate(httpapi.RedactSecrets(string(rb), creds.ClientSecret, creds.RefreshToken), 400))
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", types.ErrAuth, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: token response carried no access_token", types.ErrAuth)
	}
	return tok.AccessToken, nil
}
