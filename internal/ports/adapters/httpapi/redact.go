package httpapi

import (
	"regexp"
	"strings"
)

var (
	bearerTokenRE  = regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._-]+\b`)
	authHeaderRE   = regexp.MustCompile(`(?i)(authorization\s*[:=]\s*)([^\n\r,;]+)`)
	apiKeyFieldRE  = regexp.MustCompile(`(?i)(api[_-]?key\s*[:=]\s*)([^\n\r,;]+)`)
	refreshTokenRE = regexp.MustCompile(`(?i)(refresh[_-]?token\s*[:=]\s*)([^\n\r,;&]+)`)
)

// RedactSecrets scrubs credentials from remote-service error bodies before
// they end up in error text or results.
func RedactSecrets(s string, secrets ...string) string {
	if s == "" {
		return s
	}
	out := s
	for _, sec := range secrets {
		if sec != "" {
			out = strings.ReplaceAll(out, sec, "[REDACTED]")
		}
	}
	out = bearerTokenRE.ReplaceAllString(out, "Bearer [REDACTED]")
	out = authHeaderRE.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyFieldRE.ReplaceAllString(out, "${1}[REDACTED]")
	out = refreshTokenRE.ReplaceAllString(out, "${1}[REDACTED]")
	return out
}

// Truncate bounds s to n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
