package entity

// EnrichmentRecord stores firmographic details collected for a company.
type EnrichmentRecord struct {
	PrimaryDomain *string `json:"primary_domain,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	Description   *string `json:"description,omitempty"`
	Website       *string `json:"website,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Country       *string `json:"country,omitempty"`
}
