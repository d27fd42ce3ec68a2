package linkage

import (
	"strings"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
)

// Placeholders used when a source field is missing.
const (
	NoDescription = "no description available"
	NoName        = "no name"
	NoTitle       = "no title"
	NoEmail       = "N/A"
)

// Assemble merges each group with its enrichment and status records into the
// final views, preserving group order.
func Assemble(groups []CompanyGroup, enrichments []entity.EnrichmentRecord, statuses []entity.OutreachStatus, owner string) []dto.CompanyView {
	statusByKey := IndexStatuses(statuses)
	views := make([]dto.CompanyView, 0, len(groups))
	for _, group := range groups {
		enrichment, _ := MatchEnrichment(group, enrichments)
		var status *entity.OutreachStatus
		if record, ok := statusByKey[group.Key]; ok {
			status = &record
		}
		views = append(views, BuildView(group, enrichment, status, owner))
	}
	return views
}

// BuildView applies the field-level fallbacks for a single company.
func BuildView(group CompanyGroup, enrichment *entity.EnrichmentRecord, status *entity.OutreachStatus, owner string) dto.CompanyView {
	if enrichment == nil {
		enrichment = &entity.EnrichmentRecord{}
	}

	view := dto.CompanyView{
		Key:         group.Key,
		Owner:       owner,
		Name:        firstNonEmpty(deref(enrichment.CompanyName), group.DisplayName),
		Description: firstNonEmpty(deref(enrichment.Description), NoDescription),
		Website:     optional(firstNonEmpty(deref(enrichment.Website), deref(enrichment.PrimaryDomain), group.DomainInput)),
		Location:    joinLocation(enrichment.City, enrichment.State, enrichment.Country),
		Contacts:    make([]dto.ContactView, 0, len(group.Contacts)),
	}

	if status != nil {
		view.Contacted = status.Contacted
		if deref(status.ContactedBy) != "" {
			by := *status.ContactedBy
			view.ContactedBy = &by
		}
		if status.ContactedAt != nil {
			at := *status.ContactedAt
			view.ContactedAt = &at
		}
	}

	for _, contact := range group.Contacts {
		view.Contacts = append(view.Contacts, ProjectContact(contact))
	}
	return view
}

// ProjectContact maps a scraped contact to its display shape.
func ProjectContact(contact entity.RawContact) dto.ContactView {
	return dto.ContactView{
		ID:        contact.ContactID,
		Name:      firstNonEmpty(deref(contact.LeadName), NoName),
		Title:     firstNonEmpty(deref(contact.JobTitle), NoTitle),
		Seniority: contact.SeniorityLevel,
		Email:     firstNonEmpty(deref(contact.Email), NoEmail),
		Phone:     contact.Phone,
		LinkedIn:  contact.LinkedInURL,
	}
}

func joinLocation(parts ...*string) *string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if value := deref(part); value != "" {
			present = append(present, value)
		}
	}
	return optional(strings.Join(present, ", "))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
