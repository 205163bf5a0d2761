package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/repositories"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

// RatingService defines the interface for rating-related operations
type RatingService interface {
	RateClass(ctx context.Context, classID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error)
	RateProfessor(ctx context.Context, professorID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error)
	DeleteRating(ctx context.Context, id int64) error
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	ratingRepo *repositories.RatingRepository
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratingRepo *repositories.RatingRepository) RatingService {
	return &ratingServiceImpl{
		ratingRepo: ratingRepo,
	}
}

// validateRating validates rating input before database operations
func validateRating(comentario string, pontuacao int) error {
	if strings.TrimSpace(comentario) == "" {
		return apperrors.NewValidationError("comentario cannot be empty")
	}
	if pontuacao < models.MinPontuacao || pontuacao > models.MaxPontuacao {
		return apperrors.NewValidationError(fmt.Sprintf(
			"pontuacao must be between %d and %d", models.MinPontuacao, models.MaxPontuacao))
	}
	return nil
}

// RateClass submits a rating against a class
func (s *ratingServiceImpl) RateClass(ctx context.Context, classID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error) {
	if err := validateRating(comentario, pontuacao); err != nil {
		return nil, err
	}
	return s.ratingRepo.AddToClass(ctx, classID, userID, comentario, pontuacao)
}

// RateProfessor submits a rating directly against a professor
func (s *ratingServiceImpl) RateProfessor(ctx context.Context, professorID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error) {
	if err := validateRating(comentario, pontuacao); err != nil {
		return nil, err
	}
	return s.ratingRepo.AddToProfessor(ctx, professorID, userID, comentario, pontuacao)
}

// DeleteRating removes a rating by id
func (s *ratingServiceImpl) DeleteRating(ctx context.Context, id int64) error {
	return s.ratingRepo.Delete(ctx, id)
}
