package services

import (
	"context"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/repositories"
)

// ReportService defines the interface for moderation report operations
type ReportService interface {
	CreateReport(ctx context.Context, ratingID int64) error
	ListReports(ctx context.Context) ([]models.Report, error)
	DeleteReport(ctx context.Context, id int64) error
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo *repositories.ReportRepository
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo *repositories.ReportRepository) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
	}
}

// CreateReport flags a rating for moderation
func (s *reportServiceImpl) CreateReport(ctx context.Context, ratingID int64) error {
	return s.reportRepo.Create(ctx, ratingID)
}

// ListReports retrieves all open reports
func (s *reportServiceImpl) ListReports(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.GetAll(ctx)
}

// DeleteReport dismisses a report
func (s *reportServiceImpl) DeleteReport(ctx context.Context, id int64) error {
	return s.reportRepo.Delete(ctx, id)
}
