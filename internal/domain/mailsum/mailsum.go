// Package mailsum turns raw mail API payloads into a messenger-safe digest.
package mailsum

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/rohitk523/adk-project/internal/types"
)

const (
	// BodyPreviewLimit bounds how much of a message body is kept per mail.
	BodyPreviewLimit = 500
	previewLimit     = 100
)

// Payload mirrors the Gmail API message payload tree, reduced to the fields
// body extraction needs.
type Payload struct {
	MimeType string    `json:"mimeType"`
	Headers  []Header  `json:"headers"`
	Body     Body      `json:"body"`
	Parts    []Payload `json:"parts"`
}

type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Body struct {
	Data string `json:"data"`
}

var htmlTagRE = regexp.MustCompile(`<[^<]+?>`)

// HeaderValue returns the first header with the given name, or fallback.
func HeaderValue(headers []Header, name, fallback string) string {
	for _, h := range headers {
		if h.Name == name {
			return h.Value
		}
	}
	return fallback
}

// ExtractBody pulls a plain-text body out of a payload tree, preferring
// text/plain parts and falling back to tag-stripped text/html.
func ExtractBody(p Payload) string {
	if len(p.Parts) > 0 {
		for _, part := range p.Parts {
			if part.MimeType == "text/plain" && part.Body.Data != "" {
				return strings.TrimSpace(decode(part.Body.Data))
			}
		}
		for _, part := range p.Parts {
			if part.MimeType == "text/html" && part.Body.Data != "" {
				return strings.TrimSpace(htmlTagRE.ReplaceAllString(decode(part.Body.Data), ""))
			}
		}
		return ""
	}
	if p.MimeType == "text/plain" && p.Body.Data != "" {
		return strings.TrimSpace(decode(p.Body.Data))
	}
	return ""
}

func decode(data string) string {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(b)
}

// Truncate cuts s at limit runes, appending an ellipsis when cut.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

// Render builds the plain-text digest sent to the messenger. Characters the
// messenger treats as markup are scrubbed so delivery never depends on a
// parse mode.
func Render(emails []types.EmailMessage) string {
	if len(emails) == 0 {
		return "📧 No unread emails found!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📧 EMAIL SUMMARY (%d unread emails)\n\n", len(emails))
	for i, e := range emails {
		fmt.Fprintf(&b, "%d. %s\n", i+1, scrub(e.Subject))
		fmt.Fprintf(&b, "From: %s\n", scrubSender(e.Sender))
		fmt.Fprintf(&b, "Date: %s\n", e.Date)
		fmt.Fprintf(&b, "Preview: %s\n", scrub(Truncate(e.Body, previewLimit)))
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n\n")
	}
	return b.String()
}

func scrub(s string) string {
	r := strings.NewReplacer("*", "", "_", "", "[", "", "]", "")
	return r.Replace(s)
}

func scrubSender(s string) string {
	r := strings.NewReplacer("*", "", "_", "", "<", "", ">", "")
	return r.Replace(s)
}
