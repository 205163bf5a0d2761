package services

import (
	"context"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/repositories"
)

// ClassService defines the interface for class-related operations
type ClassService interface {
	GetClass(ctx context.Context, id int64) (*models.ClassDetail, error)
}

// classServiceImpl implements the ClassService interface
type classServiceImpl struct {
	classRepo *repositories.ClassRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo *repositories.ClassRepository) ClassService {
	return &classServiceImpl{
		classRepo: classRepo,
	}
}

// GetClass retrieves a class with its ratings
func (s *classServiceImpl) GetClass(ctx context.Context, id int64) (*models.ClassDetail, error) {
	return s.classRepo.GetDetail(ctx, id)
}
