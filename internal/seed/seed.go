package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/emigue/backend/internal/db"
	"github.com/emigue/backend/internal/pkg/auth"
)

// CreateDefaultData inserts the default catalog (departments, professors,
// courses, classes) and the admin account when they are missing. Every
// insert is guarded by an existence check so the seed can run on every
// startup.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := seedDepartments(ctx, tx); err != nil {
			return fmt.Errorf("seeding departamentos: %w", err)
		}
		if err := seedProfessors(ctx, tx); err != nil {
			return fmt.Errorf("seeding professores: %w", err)
		}
		if err := seedCourses(ctx, tx); err != nil {
			return fmt.Errorf("seeding disciplinas: %w", err)
		}
		if err := seedClasses(ctx, tx); err != nil {
			return fmt.Errorf("seeding turmas: %w", err)
		}
		if err := seedAdminUser(ctx, tx, lgr); err != nil {
			return fmt.Errorf("seeding admin user: %w", err)
		}
		return nil
	})
}

func seedDepartments(ctx context.Context, tx pgx.Tx) error {
	for _, nome := range []string{"CIC", "MAT", "EST"} {
		_, err := tx.Exec(ctx,
			`INSERT INTO departamentos (nome) VALUES ($1) ON CONFLICT (nome) DO NOTHING`,
			nome)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProfessors(ctx context.Context, tx pgx.Tx) error {
	for _, nome := range []string{"João Gomes", "Luan Lemos", "Rodrigo José"} {
		_, err := tx.Exec(ctx, `
			INSERT INTO professores (nome, departamento_id)
			SELECT $1, d.id FROM departamentos d
			WHERE d.nome = 'CIC'
			  AND NOT EXISTS (SELECT 1 FROM professores WHERE nome = $1)`,
			nome)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCourses(ctx context.Context, tx pgx.Tx) error {
	courses := []string{
		"Programação Competitiva",
		"Linguagens de Programação",
		"Organização e Arquitetura de Computadores",
	}
	for _, nome := range courses {
		_, err := tx.Exec(ctx, `
			INSERT INTO disciplinas (nome, departamento_id)
			SELECT $1, d.id FROM departamentos d
			WHERE d.nome = 'CIC'
			  AND NOT EXISTS (SELECT 1 FROM disciplinas WHERE nome = $1)`,
			nome)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedClasses(ctx context.Context, tx pgx.Tx) error {
	classes := []struct {
		numero     string
		professor  string
		disciplina string
	}{
		{"01", "João Gomes", "Programação Competitiva"},
		{"01", "João Gomes", "Linguagens de Programação"},
		{"01", "João Gomes", "Organização e Arquitetura de Computadores"},
		{"02", "Luan Lemos", "Programação Competitiva"},
		{"02", "Luan Lemos", "Linguagens de Programação"},
		{"02", "Rodrigo José", "Organização e Arquitetura de Computadores"},
		{"03", "Rodrigo José", "Programação Competitiva"},
	}
	for _, c := range classes {
		_, err := tx.Exec(ctx, `
			INSERT INTO turmas (numero, professor_id, disciplina_id)
			SELECT $1, p.id, d.id
			FROM professores p, disciplinas d
			WHERE p.nome = $2 AND d.nome = $3
			  AND NOT EXISTS (
				SELECT 1 FROM turmas t
				WHERE t.numero = $1 AND t.professor_id = p.id AND t.disciplina_id = d.id)`,
			c.numero, c.professor, c.disciplina)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(ctx context.Context, tx pgx.Tx, lgr zerolog.Logger) error {
	const adminEmail = "admin@email.com"

	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, adminEmail).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")
	hash, err := auth.HashPassword("admin")
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (email, nome, matricula, curso, senha, is_admin)
		VALUES ($1, $2, $3, $4, $5, true)`,
		adminEmail, "Admin Admin", "000000000", "CIC", hash)
	return err
}
