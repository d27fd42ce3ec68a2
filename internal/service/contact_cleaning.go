package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "BR"
	linkedInDomain     = "linkedin.com"
)

// ContactCleaner tidies contact fields before they leave for the CRM.
type ContactCleaner struct {
	region string
}

// NewContactCleaner builds a cleaner that parses national phone numbers in region.
func NewContactCleaner(region string) *ContactCleaner {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactCleaner{region: region}
}

// Phone returns the E.164 form of raw when it is a valid number, otherwise
// the trimmed input. Phones are never dropped.
func (c *ContactCleaner) Phone(raw string) string {
	raw = strings.TrimSpace(raw)
	if normalized := normalizePhone(raw, c.region); normalized != "" {
		return normalized
	}
	return raw
}

// Email returns raw lowercased when it is a syntactically valid address,
// otherwise the trimmed input. Values are never dropped.
func (c *ContactCleaner) Email(raw string) string {
	raw = strings.TrimSpace(raw)
	if normalized := normalizeEmail(raw); normalized != "" {
		return normalized
	}
	return raw
}

// LinkedIn returns raw as an https URL without tracking parameters when it
// points at linkedin.com, otherwise the trimmed input.
func (c *ContactCleaner) LinkedIn(raw string) string {
	raw = strings.TrimSpace(raw)
	if sanitized := sanitizeLinkedIn(raw); sanitized != "" {
		return sanitized
	}
	return raw
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(raw)
	if email == "" || !emailPattern.MatchString(email) {
		return ""
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !isDomainValid(domain) {
		return ""
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return ""
	}
	return email
}

func sanitizeLinkedIn(raw string) string {
	u, err := sanitizeURL(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(strings.Trim(u.Hostname(), "."))
	if host != linkedInDomain && !strings.HasSuffix(host, "."+linkedInDomain) {
		return ""
	}
	stripTracking(u)
	return u.String()
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	if u == nil {
		return
	}
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func normalizeString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
