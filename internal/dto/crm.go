package dto

// CRMContactRequest is a single contact selected for hand-off to the CRM.
type CRMContactRequest struct {
	Company  string `json:"company"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}

// CRMWebhookPayload is the body accepted by the CRM intake webhook. The
// Portuguese keys are part of the hub's contract and duplicate the English ones.
type CRMWebhookPayload struct {
	Company      string `json:"company"`
	Name         string `json:"name"`
	Phone        string `json:"numero_telefone"`
	CompanyAlias string `json:"empresa"`
	NameAlias    string `json:"nome pessoa"`
	PhoneAlias   string `json:"numero telefone"`
	Email        string `json:"email"`
	LinkedIn     string `json:"linkedin"`
	Source       string `json:"fonte"`
}
