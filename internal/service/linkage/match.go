package linkage

import (
	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
)

type matchPredicate struct {
	name  string
	match func(group CompanyGroup, record entity.EnrichmentRecord) bool
}

// enrichmentPredicates are tried in order against each candidate.
var enrichmentPredicates = []matchPredicate{
	{name: "domain", match: matchByDomain},
	{name: "name", match: matchByName},
}

// MatchEnrichment returns the first candidate, in iteration order, that any
// predicate links to group, along with the name of the predicate that fired.
// An earlier candidate matching by name beats a later one matching by domain;
// candidates are not ranked against each other.
func MatchEnrichment(group CompanyGroup, candidates []entity.EnrichmentRecord) (*entity.EnrichmentRecord, string) {
	for i := range candidates {
		for _, predicate := range enrichmentPredicates {
			if predicate.match(group, candidates[i]) {
				record := candidates[i]
				return &record, predicate.name
			}
		}
	}
	return nil, ""
}

func matchByDomain(group CompanyGroup, record entity.EnrichmentRecord) bool {
	want := ExtractDomain(group.DomainInput)
	if want == "" {
		return false
	}
	return ExtractDomain(deref(record.PrimaryDomain)) == want
}

func matchByName(group CompanyGroup, record entity.EnrichmentRecord) bool {
	want := Normalize(group.DisplayName)
	if want == "" {
		return false
	}
	return Normalize(deref(record.CompanyName)) == want
}

// BuildEnrichmentLookup collects the distinct domains and names the groups can
// match on, for the store's approximate pre-filter.
func BuildEnrichmentLookup(groups []CompanyGroup) dto.EnrichmentLookup {
	lookup := dto.EnrichmentLookup{Domains: []string{}, Names: []string{}}
	seenDomains := make(map[string]struct{}, len(groups))
	seenNames := make(map[string]struct{}, len(groups))

	for _, g := range groups {
		if domain := ExtractDomain(g.DomainInput); domain != "" {
			if _, dup := seenDomains[domain]; !dup {
				seenDomains[domain] = struct{}{}
				lookup.Domains = append(lookup.Domains, domain)
			}
		}
		if name := Normalize(g.DisplayName); name != "" {
			if _, dup := seenNames[name]; !dup {
				seenNames[name] = struct{}{}
				lookup.Names = append(lookup.Names, name)
			}
		}
	}
	return lookup
}
