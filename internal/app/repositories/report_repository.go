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

// ReportRepository handles database operations for reports (denuncias)
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// Create flags a rating for moderation
func (r *ReportRepository) Create(ctx context.Context, ratingID int64) error {
	query := `
		INSERT INTO denuncias (avaliacao_id)
		VALUES ($1)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, ratingID).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRatingNotFound
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: report insert produced no row", apperrors.ErrInvariantViolation)
		}
		return fmt.Errorf("error inserting report: %w", err)
	}

	return nil
}

// GetAll retrieves all reports with the flagged rating's comment
func (r *ReportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT d.id, a.id, a.comentario
		FROM denuncias AS d
		INNER JOIN avaliacoes AS a ON a.id = d.avaliacao_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(&report.ID, &report.AvaliacaoID, &report.Comentario); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Delete removes a report by id
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM denuncias
		WHERE id = $1
		RETURNING id
	`

	var deleted int64
	err := r.db.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("error deleting report: %w", err)
	}

	return nil
}
