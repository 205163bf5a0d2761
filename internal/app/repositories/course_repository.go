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

// CourseRepository handles database operations for courses (disciplinas)
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.CourseItem, error) {
	query := `
		SELECT id, nome
		FROM disciplinas
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.CourseItem, 0)
	for rows.Next() {
		var course models.CourseItem
		if err := rows.Scan(&course.ID, &course.Nome); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetDetail retrieves a course with its professors and their rating
// totals. The course row is looked up first so a missing course is a
// not-found, and a course with no classes still reports its real name.
func (r *CourseRepository) GetDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	detail := models.CourseDetail{ID: id}
	err := r.db.QueryRow(ctx, `SELECT nome FROM disciplinas WHERE id = $1`, id).Scan(&detail.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	query := `
		SELECT turma_id, turma_numero,
		       professor_id, professor_nome,
		       disciplina_id, disciplina_nome,
		       qtd_avaliacoes, sum_avaliacoes
		FROM turmas_avaliacoes_view
		WHERE disciplina_id = $1
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course classes: %w", err)
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

	detail.Professores = GroupCourseProfessors(flat)
	return &detail, nil
}
