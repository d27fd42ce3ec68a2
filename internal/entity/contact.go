package entity

// RawContact is a scraped person record as stored by the lead scrapers.
type RawContact struct {
	ContactID      string  `json:"contact_id"`
	CompanyIDRaw   *string `json:"company_id,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	LeadName       *string `json:"lead_name,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	SeniorityLevel *string `json:"seniority_level,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          string  `json:"phone"`
	LinkedInURL    *string `json:"linkedin_url,omitempty"`
}
