package repositories

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

// GetAll retrieves the professors listing: every view row, grouped per
// professor with accumulated rating totals and distinct course names.
func (r *ProfessorRepository) GetAll(ctx context.Context) ([]models.ProfessorItem, error) {
	query := `
		SELECT turma_id, turma_numero,
		       professor_id, professor_nome,
		       disciplina_id, disciplina_nome,
		       qtd_avaliacoes, sum_avaliacoes
		FROM turmas_avaliacoes_view
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	var flat []models.ClassAggregateRow
	for rows.Next() {
		var row models.ClassAggregateRow
		if err := rows.Scan(
			&row.TurmaID,
			&row.TurmaNumero,
			&row.ProfessorID,
			&row.ProfessorNome,
			&row.DisciplinaID,
			&row.DisciplinaNome,
			&row.QtdAvaliacoes,
			&row.SumAvaliacoes,
		); err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return GroupProfessorItems(flat), nil
}

// GetProfile retrieves the full professor detail. The profile row is
// checked first; dependent queries only run for an existing professor.
func (r *ProfessorRepository) GetProfile(ctx context.Context, id int64) (*models.ProfessorProfile, error) {
	profileQuery := `
		SELECT p.nome, p.img,
		       COUNT(a.id), COALESCE(SUM(a.pontuacao), 0)
		FROM professores AS p
		LEFT JOIN avaliacoes_professores AS a ON a.professor_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, p.nome, p.img
	`

	profile := models.ProfessorProfile{
		ID:         id,
		Turmas:     []models.ProfessorClass{},
		Avaliacoes: []models.Rating{},
	}
	var img []byte
	err := r.db.QueryRow(ctx, profileQuery, id).Scan(
		&profile.Nome,
		&img,
		&profile.QtdAvaliacoes,
		&profile.SumAvaliacoes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfessorNotFound
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	if img != nil {
		encoded := base64.StdEncoding.EncodeToString(img)
		profile.Img = &encoded
	}

	classesQuery := `
		SELECT t.id, t.numero, d.nome
		FROM turmas AS t
		INNER JOIN disciplinas AS d ON t.disciplina_id = d.id
		WHERE t.professor_id = $1
	`

	rows, err := r.db.Query(ctx, classesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor classes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var class models.ProfessorClass
		if err := rows.Scan(&class.ID, &class.Numero, &class.Nome); err != nil {
			return nil, err
		}
		profile.Turmas = append(profile.Turmas, class)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	ratingsQuery := `
		SELECT a.id, a.pontuacao, a.comentario, u.id, u.nome
		FROM avaliacoes_professores AS a
		INNER JOIN users AS u ON a.user_id = u.id
		WHERE a.professor_id = $1
	`

	rows, err = r.db.Query(ctx, ratingsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.Pontuacao,
			&rating.Comentario,
			&rating.UserID,
			&rating.UserNome,
		); err != nil {
			return nil, err
		}
		profile.Avaliacoes = append(profile.Avaliacoes, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &profile, nil
}
