package views

import (
	"html"
	"net/url"
	"path"
	"strings"
	"time"
)

// esc escapes text interpolated into markup.
func esc(s string) string { return html.EscapeString(s) }

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FormatDate renders a stored timestamp as a long-form date, e.g.
// "January 2, 2006". RFC3339 and bare dates are accepted; anything else
// is returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("January 2, 2006")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("January 2, 2006")
	}
	return s
}

// PathEscape wraps url.PathEscape for use in component code.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// QueryEscape wraps url.QueryEscape for building filter links.
func QueryEscape(s string) string {
	return url.QueryEscape(s)
}
