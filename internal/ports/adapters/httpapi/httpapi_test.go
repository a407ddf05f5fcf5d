package httpapi

import (
	"strings"
	"testing"
)

func TestValidateBaseURL(t *testing.T) {
	allowed := []string{"api.openai.com", "https://alt.openai.com/"}

	tests := map[string]struct {
		baseURL string
		wantErr string
	}{
		"empty uses default":    {baseURL: ""},
		"allowlisted":           {baseURL: "https://alt.openai.com"},
		"trailing slash":        {baseURL: "https://api.openai.com/"},
		"http rejected":         {baseURL: "http://api.openai.com", wantErr: "https is required"},
		"unknown host":          {baseURL: "https://evil.example.com", wantErr: "not allowlisted"},
		"userinfo rejected":     {baseURL: "https://u:p@api.openai.com", wantErr: "userinfo"},
		"query rejected":        {baseURL: "https://api.openai.com?x=1", wantErr: "query and fragment"},
		"relative rejected":     {baseURL: "/v1", wantErr: "absolute URL"},
		"port ignored in allow": {baseURL: "https://api.openai.com:443"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateBaseURL("OPENAI_BASE_URL", tt.baseURL, "https://api.openai.com", allowed)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := NormalizeBaseURL("  https://x.example// ", "https://d.example"); got != "https://x.example" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := NormalizeBaseURL("", "https://d.example"); got != "https://d.example" {
		t.Fatalf("unexpected default: %q", got)
	}
}

func TestRedactSecrets(t *testing.T) {
	key := "sk-super-secret"
	in := `status 401; Authorization: Bearer sk-super-secret; api_key=sk-super-secret; refresh_token=1//abc&grant_type=x`
	got := RedactSecrets(in, key, "1//abc")

	if strings.Contains(got, key) || strings.Contains(got, "1//abc") {
		t.Fatalf("expected secrets to be redacted, got: %q", got)
	}
	if !strings.Contains(got, "Authorization: [REDACTED]") {
		t.Fatalf("expected authorization header to be redacted, got: %q", got)
	}
	if !strings.Contains(got, "api_key=[REDACTED]") {
		t.Fatalf("expected api_key field to be redacted, got: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Truncate("hello", 2); got != "he" {
		t.Fatalf("unexpected: %q", got)
	}
}
