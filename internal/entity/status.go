package entity

import "time"

// OutreachStatus tracks whether a company has been contacted and by whom.
type OutreachStatus struct {
	CompanyKey  string     `json:"company_key"`
	Contacted   bool       `json:"contacted"`
	ContactedBy *string    `json:"contacted_by"`
	ContactedAt *time.Time `json:"contacted_at"`
}
