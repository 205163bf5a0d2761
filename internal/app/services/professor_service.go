package services

import (
	"context"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/repositories"
)

// ProfessorService defines the interface for professor-related operations
type ProfessorService interface {
	ListProfessors(ctx context.Context) ([]models.ProfessorItem, error)
	GetProfessor(ctx context.Context, id int64) (*models.ProfessorProfile, error)
}

// professorServiceImpl implements the ProfessorService interface
type professorServiceImpl struct {
	professorRepo *repositories.ProfessorRepository
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(professorRepo *repositories.ProfessorRepository) ProfessorService {
	return &professorServiceImpl{
		professorRepo: professorRepo,
	}
}

// ListProfessors retrieves every professor with aggregated rating totals
func (s *professorServiceImpl) ListProfessors(ctx context.Context) ([]models.ProfessorItem, error) {
	return s.professorRepo.GetAll(ctx)
}

// GetProfessor retrieves the full professor profile
func (s *professorServiceImpl) GetProfessor(ctx context.Context, id int64) (*models.ProfessorProfile, error) {
	return s.professorRepo.GetProfile(ctx, id)
}
