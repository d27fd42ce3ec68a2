package handler

import (
	"context"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
)

type stubContactsRepo struct {
	contacts    []entity.RawContact
	enrichments []entity.EnrichmentRecord
	err         error
}

func (s *stubContactsRepo) ListContacts(ctx context.Context, filter dto.ContactFilter) ([]entity.RawContact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.contacts, nil
}

func (s *stubContactsRepo) FindEnrichments(ctx context.Context, lookup dto.EnrichmentLookup) ([]entity.EnrichmentRecord, error) {
	return s.enrichments, nil
}

func (s *stubContactsRepo) Ping(ctx context.Context) error {
	return s.err
}

type stubStatusRepo struct {
	records []entity.OutreachStatus
	saved   *entity.OutreachStatus
	err     error
}

func (s *stubStatusRepo) FindByKeys(ctx context.Context, keys []string) ([]entity.OutreachStatus, error) {
	return s.records, nil
}

func (s *stubStatusRepo) Upsert(ctx context.Context, status *entity.OutreachStatus) (*entity.OutreachStatus, error) {
	if s.err != nil {
		return nil, s.err
	}
	copied := *status
	s.saved = &copied
	return &copied, nil
}

type webhookStub struct {
	payload   any
	requestID string
	err       error
}

func (s *webhookStub) PostJSON(ctx context.Context, payload any, requestID string) error {
	s.payload = payload
	s.requestID = requestID
	return s.err
}

func strPtr(s string) *string {
	return &s
}
