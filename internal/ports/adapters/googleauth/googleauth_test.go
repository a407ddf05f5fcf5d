package googleauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohitk523/adk-project/internal/types"
)

func testCreds() Credentials {
	return Credentials{ClientID: "cid", ClientSecret: "csec", RefreshToken: "rtok"}
}

func TestAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.Form.Get("grant_type") != "refresh_token" || r.Form.Get("refresh_token") != "rtok" {
			t.Errorf("unexpected form: %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-123","expires_in":3599}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).AccessToken(context.Background(), testCreds())
	if err != nil {
		t.Fatalf("access token: %v", err)
	}
	if got != "at-123" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestAccessToken_MissingCredentials(t *testing.T) {
	_, err := New("").AccessToken(context.Background(), Credentials{ClientID: "cid"})
	if !errors.Is(err, types.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAccessToken_ExchangeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","refresh_token":"rtok"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).AccessToken(context.Background(), testCreds())
	if !errors.Is(err, types.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if strings.Contains(err.Error(), "rtok") {
		t.Fatalf("error leaks refresh token: %v", err)
	}
}

func TestAccessToken_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).AccessToken(context.Background(), testCreds())
	if !errors.Is(err, types.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
