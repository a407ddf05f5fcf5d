package mailsum

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/rohitk523/adk-project/internal/types"
)

func enc(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestExtractBody(t *testing.T) {
	tests := map[string]struct {
		payload Payload
		want    string
	}{
		"plain part wins": {
			payload: Payload{
				MimeType: "multipart/alternative",
				Parts: []Payload{
					{MimeType: "text/html", Body: Body{Data: enc("<b>hi</b>")}},
					{MimeType: "text/plain", Body: Body{Data: enc("  hello there  ")}},
				},
			},
			want: "hello there",
		},
		"html fallback strips tags": {
			payload: Payload{
				MimeType: "multipart/alternative",
				Parts: []Payload{
					{MimeType: "text/html", Body: Body{Data: enc("<p>meeting at <b>3pm</b></p>")}},
				},
			},
			want: "meeting at 3pm",
		},
		"flat plain body": {
			payload: Payload{MimeType: "text/plain", Body: Body{Data: enc("flat body")}},
			want:    "flat body",
		},
		"nothing usable": {
			payload: Payload{MimeType: "application/octet-stream"},
			want:    "",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ExtractBody(tt.payload); got != tt.want {
				t.Fatalf("ExtractBody = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderValue(t *testing.T) {
	headers := []Header{
		{Name: "From", Value: "a@example.com"},
		{Name: "Subject", Value: "Hi"},
	}
	if got := HeaderValue(headers, "From", "Unknown"); got != "a@example.com" {
		t.Fatalf("unexpected From: %q", got)
	}
	if got := HeaderValue(headers, "Date", "Unknown"); got != "Unknown" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected: %q", got)
	}
	got := Truncate(strings.Repeat("x", 600), BodyPreviewLimit)
	if len([]rune(got)) != BodyPreviewLimit+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation with ellipsis, got %d runes", len([]rune(got)))
	}
}

func TestRender(t *testing.T) {
	t.Run("empty inbox", func(t *testing.T) {
		if got := Render(nil); !strings.Contains(got, "No unread emails") {
			t.Fatalf("unexpected empty digest: %q", got)
		}
	})

	t.Run("scrubs markup", func(t *testing.T) {
		got := Render([]types.EmailMessage{{
			Sender:  "Bob <bob@example.com>",
			Subject: "*urgent* [action]",
			Date:    "Mon, 10 Aug 2026",
			Body:    "body_text",
		}})
		if !strings.Contains(got, "1 unread emails") {
			t.Fatalf("missing count header: %q", got)
		}
		for _, forbidden := range []string{"*", "[", "]", "<", ">", "_"} {
			if strings.Contains(got, forbidden) {
				t.Fatalf("digest contains markup rune %q: %q", forbidden, got)
			}
		}
		if !strings.Contains(got, "From: Bob bob@example.com") {
			t.Fatalf("missing sender line: %q", got)
		}
	})

	t.Run("previews are bounded", func(t *testing.T) {
		got := Render([]types.EmailMessage{{Subject: "s", Body: strings.Repeat("a", 400)}})
		if !strings.Contains(got, strings.Repeat("a", 100)+"...") {
			t.Fatalf("expected 100-rune preview with ellipsis")
		}
		if strings.Contains(got, strings.Repeat("a", 101)) {
			t.Fatalf("preview exceeds limit")
		}
	})
}
