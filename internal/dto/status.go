package dto

// StatusUpdateRequest marks or unmarks a company as contacted.
type StatusUpdateRequest struct {
	CompanyKey  string `json:"company_key"`
	Contacted   bool   `json:"contacted"`
	ContactedBy string `json:"contacted_by,omitempty"`
}
