// Package linkage groups scraped contacts into companies and links each
// company to its enrichment and outreach status records.
package linkage

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var idnaProfile = idna.Lookup

// Normalize trims and lowercases s. It is applied to both sides of every
// key comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExtractDomain returns the host of a URL-like string without a leading
// "www." label. Strings that do not parse as a URL fall back to Normalize,
// so they still take part in equality comparisons. Hosts the IDNA lookup
// profile rejects (underscores, "--" in positions 3-4) are kept lowercased.
func ExtractDomain(raw string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return ""
	}
	if !hasHTTPScheme(candidate) {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return Normalize(raw)
	}
	host, err := idnaProfile.ToASCII(u.Hostname())
	if err != nil || host == "" {
		host = u.Hostname()
	}
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
