package dto

import "time"

// ContactFilter selects which scraped contacts are aggregated.
type ContactFilter struct {
	SourceTag   string
	PhonePrefix string
}

// EnrichmentLookup carries the candidate keys used to pre-filter enrichment rows.
type EnrichmentLookup struct {
	Domains []string
	Names   []string
}

// CompanyView is a company grouping enriched with firmographics and outreach status.
type CompanyView struct {
	Key         string        `json:"key"`
	Owner       string        `json:"owner"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Website     *string       `json:"website"`
	Location    *string       `json:"location"`
	Contacted   bool          `json:"contacted"`
	ContactedBy *string       `json:"contacted_by"`
	ContactedAt *time.Time    `json:"contacted_at"`
	Contacts    []ContactView `json:"contacts"`
}

// ContactView is the display shape of a scraped contact.
type ContactView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Seniority *string `json:"seniority"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
}
