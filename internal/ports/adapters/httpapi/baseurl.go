// Package httpapi holds helpers shared by the remote HTTP adapters:
// base-URL allowlisting and secret hygiene for error text.
package httpapi

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL trims and de-slashes a configured base URL, falling back
// to def when empty.
func NormalizeBaseURL(baseURL, def string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = def
	}
	return strings.TrimRight(baseURL, "/")
}

// ValidateBaseURL rejects base URLs that are not plain absolute https URLs
// on an allowlisted host. The setting name is only used in error text.
func ValidateBaseURL(setting, baseURL, def string, allowedHosts []string) error {
	baseURL = NormalizeBaseURL(baseURL, def)

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", setting, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid %s %q: absolute URL with host is required", setting, baseURL)
	}
	if u.User != nil {
		return fmt.Errorf("invalid %s %q: userinfo is not allowed", setting, baseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("invalid %s %q: query and fragment are not allowed", setting, baseURL)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return fmt.Errorf("invalid %s %q: host is required", setting, baseURL)
	}
	if scheme != "https" {
		return fmt.Errorf("invalid %s %q: https is required", setting, baseURL)
	}

	allowed := normalizeAllowedHosts(allowedHosts)
	if _, ok := allowed[host]; !ok {
		return fmt.Errorf("invalid %s %q: host %q is not allowlisted", setting, baseURL, host)
	}
	return nil
}

func normalizeAllowedHosts(allowedHosts []string) map[string]struct{} {
	out := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		v := strings.ToLower(strings.TrimSpace(h))
		v = strings.TrimPrefix(v, "http://")
		v = strings.TrimPrefix(v, "https://")
		v = strings.Trim(v, "/")
		if v == "" {
			continue
		}
		if i := strings.Index(v, ":"); i >= 0 {
			v = v[:i]
		}
		out[v] = struct{}{}
	}
	return out
}
