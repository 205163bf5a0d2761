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

// Unique constraint names from migrations/001_init.sql.
const (
	usersEmailConstraint     = "users_email_key"
	usersMatriculaConstraint = "users_matricula_key"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetByEmail retrieves a user with the stored password hash, for login
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, nome, matricula, curso, senha, is_admin
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Nome,
		&user.Matricula,
		&user.Curso,
		&user.PasswordHash,
		&user.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// Create registers a new user. The duplicate pre-check and the insert run
// in one transaction; the unique constraints on email and matricula stay
// the authoritative guard against concurrent duplicate registrations.
// is_admin is always false for registered users.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var emailTaken, matriculaTaken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1),
		       EXISTS(SELECT 1 FROM users WHERE matricula = $2)`,
		user.Email, user.Matricula).Scan(&emailTaken, &matriculaTaken)
	if err != nil {
		return 0, fmt.Errorf("error checking user existence: %w", err)
	}
	if emailTaken {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	if matriculaTaken {
		return 0, apperrors.ErrMatriculaAlreadyExists
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, nome, matricula, curso, senha, is_admin)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id`,
		user.Email, user.Nome, user.Matricula, user.Curso, user.PasswordHash).Scan(&id)
	if err != nil {
		return 0, mapUserUniqueViolation(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, mapUserUniqueViolation(fmt.Errorf("failed to commit registration: %w", err))
	}

	return id, nil
}

// GetByID retrieves a user's public profile
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserInfo, error) {
	query := `
		SELECT email, nome, matricula, curso
		FROM users
		WHERE id = $1
	`

	var info models.UserInfo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&info.Email,
		&info.Nome,
		&info.Matricula,
		&info.Curso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &info, nil
}

// Update replaces a user's profile fields and returns the stored profile
func (r *UserRepository) Update(ctx context.Context, id int64, info *models.UserInfo) (*models.UserInfo, error) {
	query := `
		UPDATE users
		SET email = $1, nome = $2, matricula = $3, curso = $4
		WHERE id = $5
		RETURNING email, nome, matricula, curso
	`

	var updated models.UserInfo
	err := r.db.QueryRow(ctx, query,
		info.Email, info.Nome, info.Matricula, info.Curso, id).Scan(
		&updated.Email,
		&updated.Nome,
		&updated.Matricula,
		&updated.Curso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, mapUserUniqueViolation(err)
	}

	return &updated, nil
}

// GetPasswordHash retrieves the stored password hash for a user
func (r *UserRepository) GetPasswordHash(ctx context.Context, id int64) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT senha FROM users WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("error retrieving password hash: %w", err)
	}
	return hash, nil
}

// UpdatePasswordHash stores a new password hash for a user
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	query := `
		UPDATE users
		SET senha = $1
		WHERE id = $2
		RETURNING id
	`

	var updated int64
	err := r.db.QueryRow(ctx, query, hash, id).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// Delete removes a user. The user's ratings cascade away with them.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id
	`

	var deleted int64
	err := r.db.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// mapUserUniqueViolation translates a pg unique violation on the users
// table into the matching conflict error.
func mapUserUniqueViolation(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, usersEmailConstraint):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, usersMatriculaConstraint):
		return apperrors.ErrMatriculaAlreadyExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("user already exists")
	default:
		return err
	}
}
