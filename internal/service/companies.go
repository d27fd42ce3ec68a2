package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
	"github.com/octobees/leads-outreach/api/internal/repository"
	"github.com/octobees/leads-outreach/api/internal/service/linkage"
)

// ErrAggregationFailed is returned when any store read of the company pass fails.
var ErrAggregationFailed = errors.New("company aggregation failed")

// CompaniesService builds the company dashboard from scraped contacts.
type CompaniesService struct {
	contacts   repository.ContactsRepository
	statuses   repository.StatusRepository
	aggregator *linkage.Aggregator
	filter     dto.ContactFilter
	owner      string
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(contacts repository.ContactsRepository, statuses repository.StatusRepository, aggregator *linkage.Aggregator, filter dto.ContactFilter, owner string) *CompaniesService {
	return &CompaniesService{
		contacts:   contacts,
		statuses:   statuses,
		aggregator: aggregator,
		filter:     filter,
		owner:      owner,
	}
}

// ListCompanies runs one aggregation pass: contacts are grouped into companies,
// then enrichment and status rows are fetched concurrently and merged in.
func (s *CompaniesService) ListCompanies(ctx context.Context) ([]dto.CompanyView, error) {
	contacts, err := s.contacts.ListContacts(ctx, s.filter)
	if err != nil {
		return nil, s.fail("list contacts", err)
	}

	groups := s.aggregator.Aggregate(contacts)
	if len(groups) == 0 {
		return []dto.CompanyView{}, nil
	}

	var (
		enrichments []entity.EnrichmentRecord
		statuses    []entity.OutreachStatus
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.contacts.FindEnrichments(gctx, linkage.BuildEnrichmentLookup(groups))
		if err != nil {
			return s.fail("find enrichments", err)
		}
		enrichments = records
		return nil
	})
	g.Go(func() error {
		records, err := s.statuses.FindByKeys(gctx, linkage.GroupKeys(groups))
		if err != nil {
			return s.fail("find statuses", err)
		}
		statuses = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := linkage.Assemble(groups, enrichments, statuses, s.owner)
	zap.L().Debug("companies aggregated",
		zap.Int("contacts", len(contacts)),
		zap.Int("companies", len(views)),
		zap.Int("enrichments", len(enrichments)),
		zap.Int("statuses", len(statuses)),
	)
	return views, nil
}

func (s *CompaniesService) fail(stage string, err error) error {
	zap.L().Error("company aggregation failed", zap.String("stage", stage), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrAggregationFailed, stage, err)
}
