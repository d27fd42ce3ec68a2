package service

import (
	"context"
	"sync"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
)

type fakeContactsRepo struct {
	mu          sync.Mutex
	contacts    []entity.RawContact
	enrichments []entity.EnrichmentRecord
	listErr     error
	enrichErr   error
	lastFilter  dto.ContactFilter
	lastLookup  dto.EnrichmentLookup
	lookups     int
}

func (f *fakeContactsRepo) ListContacts(ctx context.Context, filter dto.ContactFilter) ([]entity.RawContact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.contacts, nil
}

func (f *fakeContactsRepo) FindEnrichments(ctx context.Context, lookup dto.EnrichmentLookup) ([]entity.EnrichmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLookup = lookup
	f.lookups++
	if f.enrichErr != nil {
		return nil, f.enrichErr
	}
	return f.enrichments, nil
}

func (f *fakeContactsRepo) Ping(ctx context.Context) error {
	return nil
}

type fakeStatusRepo struct {
	mu       sync.Mutex
	records  []entity.OutreachStatus
	findErr  error
	saveErr  error
	lastKeys []string
	saved    *entity.OutreachStatus
}

func (f *fakeStatusRepo) FindByKeys(ctx context.Context, keys []string) ([]entity.OutreachStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastKeys = keys
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.records, nil
}

func (f *fakeStatusRepo) Upsert(ctx context.Context, status *entity.OutreachStatus) (*entity.OutreachStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	copied := *status
	f.saved = &copied
	return &copied, nil
}

type fakePoster struct {
	payload   any
	requestID string
	err       error
}

func (f *fakePoster) PostJSON(ctx context.Context, payload any, requestID string) error {
	f.payload = payload
	f.requestID = requestID
	return f.err
}

func strPtr(s string) *string {
	return &s
}
