package linkage

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/octobees/leads-outreach/api/internal/entity"
)

// UnknownCompany is the display name of a group whose first contact carried no company name.
const UnknownCompany = "unknown company"

// CompanyGroup is a set of scraped contacts that share a company key.
type CompanyGroup struct {
	Key         string
	DisplayName string
	DomainInput string
	Contacts    []entity.RawContact
}

// GroupKey derives the company key of a contact. A company id containing a
// dot is treated as a domain or URL; otherwise the company name is used.
// An empty result means the contact cannot be grouped.
func GroupKey(contact entity.RawContact) string {
	if raw := deref(contact.CompanyIDRaw); raw != "" && strings.Contains(raw, ".") {
		return ExtractDomain(raw)
	}
	return Normalize(deref(contact.CompanyName))
}

// Aggregator groups contacts into companies ordered by display name.
type Aggregator struct {
	locale language.Tag
}

// NewAggregator builds an aggregator that sorts with the collation rules of locale.
func NewAggregator(locale language.Tag) *Aggregator {
	return &Aggregator{locale: locale}
}

// Aggregate groups contacts by GroupKey. Contacts without a key are dropped.
// The first contact seen for a key fixes the group's display name and domain
// input; contacts keep their input order inside a group.
func (a *Aggregator) Aggregate(contacts []entity.RawContact) []CompanyGroup {
	index := make(map[string]int, len(contacts))
	groups := make([]CompanyGroup, 0)

	for _, contact := range contacts {
		key := GroupKey(contact)
		if key == "" {
			continue
		}

		pos, ok := index[key]
		if !ok {
			name := deref(contact.CompanyName)
			if strings.TrimSpace(name) == "" {
				name = UnknownCompany
			}
			groups = append(groups, CompanyGroup{
				Key:         key,
				DisplayName: name,
				DomainInput: deref(contact.CompanyIDRaw),
			})
			pos = len(groups) - 1
			index[key] = pos
		}
		groups[pos].Contacts = append(groups[pos].Contacts, contact)
	}

	// collate.Collator keeps internal buffers, so each call gets its own.
	collator := collate.New(a.locale)
	slices.SortStableFunc(groups, func(x, y CompanyGroup) int {
		return collator.CompareString(x.DisplayName, y.DisplayName)
	})
	return groups
}

// GroupKeys lists the keys of groups in order.
func GroupKeys(groups []CompanyGroup) []string {
	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	return keys
}
