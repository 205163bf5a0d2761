package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/pkg/apperrors"
	"github.com/emigue/backend/internal/pkg/dberrors"
)

// RatingRepository handles database operations for ratings on classes
// and on professors
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
	}
}

// AddToClass inserts a rating against a class. The RETURNING clause
// carries the generated id and the author's display name via a
// correlated subquery, so the response needs no second round trip.
func (r *RatingRepository) AddToClass(ctx context.Context, classID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error) {
	query := `
		INSERT INTO avaliacoes (pontuacao, comentario, user_id, turma_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, (SELECT nome FROM users WHERE id = user_id)
	`

	rating := models.Rating{
		UserID:     userID,
		Comentario: comentario,
		Pontuacao:  pontuacao,
	}
	err := r.db.QueryRow(ctx, query, pontuacao, comentario, userID, classID).Scan(&rating.ID, &rating.UserNome)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) || errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rating insert produced no row", apperrors.ErrInvariantViolation)
		}
		return nil, fmt.Errorf("error inserting class rating: %w", err)
	}

	return &rating, nil
}

// AddToProfessor inserts a rating directly against a professor
func (r *RatingRepository) AddToProfessor(ctx context.Context, professorID int64, userID int64, comentario string, pontuacao int) (*models.Rating, error) {
	query := `
		INSERT INTO avaliacoes_professores (pontuacao, comentario, user_id, professor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, (SELECT nome FROM users WHERE id = user_id)
	`

	rating := models.Rating{
		UserID:     userID,
		Comentario: comentario,
		Pontuacao:  pontuacao,
	}
	err := r.db.QueryRow(ctx, query, pontuacao, comentario, userID, professorID).Scan(&rating.ID, &rating.UserNome)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) || errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: rating insert produced no row", apperrors.ErrInvariantViolation)
		}
		return nil, fmt.Errorf("error inserting professor rating: %w", err)
	}

	return &rating, nil
}

// Delete removes a class rating by id. Reports referencing the rating are
// cascade-deleted by the schema, so the report listing never dangles.
func (r *RatingRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM avaliacoes
		WHERE id = $1
		RETURNING id
	`

	var deleted int64
	err := r.db.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRatingNotFound
		}
		return fmt.Errorf("error deleting rating: %w", err)
	}

	return nil
}
