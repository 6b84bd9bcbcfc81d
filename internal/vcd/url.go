// Where: internal/vcd/url.go
// What: Instance URL normalization and endpoint construction.
// Why: Accept URLs however operators paste them and always call over HTTPS.
package vcd

import (
	"regexp"
	"strings"
)

var protocolPrefix = regexp.MustCompile(`^https?://`)

// NormalizeURL strips an http/https protocol prefix and outer slashes,
// leaving a bare host[:port][/path]. Any input is accepted.
func NormalizeURL(raw string) string {
	host := protocolPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	return strings.Trim(host, "/")
}

// BuildURL joins a normalized host and path segments into an HTTPS URL.
func BuildURL(host string, parts ...string) string {
	return "https://" + host + "/" + strings.Join(parts, "/")
}
