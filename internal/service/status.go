package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
	"github.com/octobees/leads-outreach/api/internal/repository"
)

// ErrInvalidStatusUpdate marks a status write rejected before reaching the store.
var ErrInvalidStatusUpdate = errors.New("invalid status update")

// StatusService records whether a company has been contacted.
type StatusService struct {
	repo repository.StatusRepository
	now  func() time.Time
}

// NewStatusService creates a new StatusService.
func NewStatusService(repo repository.StatusRepository) *StatusService {
	return &StatusService{repo: repo, now: time.Now}
}

// SetContacted upserts the status for req.CompanyKey. Marking a company as
// contacted stamps the author and time; clearing it resets both.
func (s *StatusService) SetContacted(ctx context.Context, req dto.StatusUpdateRequest) (*entity.OutreachStatus, error) {
	key := strings.TrimSpace(req.CompanyKey)
	if key == "" {
		return nil, fmt.Errorf("%w: company_key is required", ErrInvalidStatusUpdate)
	}

	status := &entity.OutreachStatus{CompanyKey: key, Contacted: req.Contacted}
	if req.Contacted {
		status.ContactedBy = normalizeString(req.ContactedBy)
		at := s.now().UTC()
		status.ContactedAt = &at
	}

	saved, err := s.repo.Upsert(ctx, status)
	if err != nil {
		zap.L().Error("status upsert failed", zap.String("company_key", key), zap.Error(err))
		return nil, fmt.Errorf("upsert status: %w", err)
	}
	zap.L().Info("company status updated", zap.String("company_key", key), zap.Bool("contacted", saved.Contacted))
	return saved, nil
}
