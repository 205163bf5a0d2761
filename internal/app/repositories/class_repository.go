package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

// ClassRepository handles database operations for classes (turmas)
type ClassRepository struct {
	db *pgxpool.Pool
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
	}
}

// GetDetail retrieves the class page: the aggregation-view row for the
// class plus every rating against it with the author's name joined in.
func (r *ClassRepository) GetDetail(ctx context.Context, id int64) (*models.ClassDetail, error) {
	viewQuery := `
		SELECT turma_numero,
		       professor_id, professor_nome,
		       disciplina_id, disciplina_nome,
		       qtd_avaliacoes, sum_avaliacoes
		FROM turmas_avaliacoes_view
		WHERE turma_id = $1
	`

	detail := models.ClassDetail{
		ID:         id,
		Avaliacoes: []models.Rating{},
	}
	err := r.db.QueryRow(ctx, viewQuery, id).Scan(
		&detail.Numero,
		&detail.ProfessorID,
		&detail.ProfessorNome,
		&detail.DisciplinaID,
		&detail.DisciplinaNome,
		&detail.QtdAvaliacoes,
		&detail.SumAvaliacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("error retrieving class: %w", err)
	}

	ratingsQuery := `
		SELECT a.id, u.nome, a.user_id, a.pontuacao, a.comentario
		FROM avaliacoes AS a
		INNER JOIN users AS u ON a.user_id = u.id
		WHERE a.turma_id = $1
	`

	rows, err := r.db.Query(ctx, ratingsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving class ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.UserNome,
			&rating.UserID,
			&rating.Pontuacao,
			&rating.Comentario,
		); err != nil {
			return nil, err
		}
		detail.Avaliacoes = append(detail.Avaliacoes, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &detail, nil
}
