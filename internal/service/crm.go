package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/octobees/leads-outreach/api/internal/dto"
)

// ErrForwardFailed is returned when the CRM webhook does not accept a contact.
var ErrForwardFailed = errors.New("crm forward failed")

// WebhookPoster delivers a JSON payload to the CRM hub.
type WebhookPoster interface {
	PostJSON(ctx context.Context, payload any, requestID string) error
}

// CRMService forwards individual contacts to the CRM webhook.
type CRMService struct {
	poster    WebhookPoster
	cleaner   *ContactCleaner
	sourceTag string
}

// NewCRMService creates a CRMService tagging every payload with sourceTag.
func NewCRMService(poster WebhookPoster, sourceTag, phoneRegion string) *CRMService {
	return &CRMService{
		poster:    poster,
		cleaner:   NewContactCleaner(phoneRegion),
		sourceTag: sourceTag,
	}
}

// BuildPayload maps a contact onto the webhook contract. The hub reads both
// the english and portuguese keys, so each value is sent under both. Only the
// english name key gets the "no name" fallback.
func (s *CRMService) BuildPayload(req dto.CRMContactRequest) dto.CRMWebhookPayload {
	company := strings.TrimSpace(req.Company)
	rawName := strings.TrimSpace(req.Name)
	name := rawName
	if name == "" {
		name = "no name"
	}
	phone := s.cleaner.Phone(req.Phone)

	return dto.CRMWebhookPayload{
		Company:      company,
		Name:         name,
		Phone:        phone,
		CompanyAlias: company,
		NameAlias:    rawName,
		PhoneAlias:   phone,
		Email:        s.cleaner.Email(req.Email),
		LinkedIn:     s.cleaner.LinkedIn(req.LinkedIn),
		Source:       s.sourceTag,
	}
}

// ForwardContact posts a single contact to the CRM. Failures are not retried.
func (s *CRMService) ForwardContact(ctx context.Context, req dto.CRMContactRequest, requestID string) error {
	payload := s.BuildPayload(req)
	if err := s.poster.PostJSON(ctx, payload, requestID); err != nil {
		zap.L().Warn("crm forward failed",
			zap.String("request_id", requestID),
			zap.String("company", payload.Company),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrForwardFailed, err)
	}
	zap.L().Info("contact forwarded to crm", zap.String("request_id", requestID), zap.String("company", payload.Company))
	return nil
}
