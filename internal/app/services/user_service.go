package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/app/repositories"
	"github.com/emigue/backend/internal/pkg/apperrors"
	"github.com/emigue/backend/internal/pkg/auth"
)

const minPasswordLength = 4

// UserService defines the interface for user account operations
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, id int64) (*models.UserInfo, error)
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.UserInfo, error)
	ChangePassword(ctx context.Context, id int64, req *dto.PasswordUpdateRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateProfileFields checks the shared profile fields of register and
// update requests
func validateProfileFields(email, nome, matricula, curso string) error {
	if !isValidEmail(email) {
		return apperrors.NewValidationError("invalid email")
	}
	if strings.TrimSpace(nome) == "" {
		return apperrors.NewValidationError("nome cannot be empty")
	}
	if strings.TrimSpace(matricula) == "" {
		return apperrors.NewValidationError("matricula cannot be empty")
	}
	if strings.TrimSpace(curso) == "" {
		return apperrors.NewValidationError("curso cannot be empty")
	}
	return nil
}

// isValidEmail checks the minimal shape of an email address
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

// Register creates a new user account with a hashed password. Registered
// accounts are never admins.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := validateProfileFields(req.Email, req.Nome, req.Matricula, req.Curso); err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"password must be at least %d characters", minPasswordLength))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        strings.TrimSpace(req.Email),
		Nome:         strings.TrimSpace(req.Nome),
		Matricula:    strings.TrimSpace(req.Matricula),
		Curso:        strings.TrimSpace(req.Curso),
		PasswordHash: hash,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(id, false)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", id).Msg("Failed to issue token on registration")
		return nil, err
	}

	s.logger.Info().Int64("userId", id).Msg("User registered")
	return &dto.AuthResponse{UserID: id, IsAdmin: false, Token: token}, nil
}

// Login authenticates a user by email and password. A missing user and a
// wrong password produce the same invalid-credentials outcome.
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to issue token on login")
		return nil, err
	}

	return &dto.AuthResponse{UserID: user.ID, IsAdmin: user.IsAdmin, Token: token}, nil
}

// GetProfile retrieves a user's public profile
func (s *userServiceImpl) GetProfile(ctx context.Context, id int64) (*models.UserInfo, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile replaces a user's profile fields
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.UserInfo, error) {
	if err := validateProfileFields(req.Email, req.Nome, req.Matricula, req.Curso); err != nil {
		return nil, err
	}

	info := &models.UserInfo{
		Email:     strings.TrimSpace(req.Email),
		Nome:      strings.TrimSpace(req.Nome),
		Matricula: strings.TrimSpace(req.Matricula),
		Curso:     strings.TrimSpace(req.Curso),
	}
	return s.userRepo.Update(ctx, id, info)
}

// ChangePassword verifies the current password against the stored hash
// and writes a new hash. The verification doubles as re-authentication; a
// mismatch leaves the stored password unchanged.
func (s *userServiceImpl) ChangePassword(ctx context.Context, id int64, req *dto.PasswordUpdateRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return apperrors.NewValidationError(fmt.Sprintf(
			"password must be at least %d characters", minPasswordLength))
	}

	storedHash, err := s.userRepo.GetPasswordHash(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(storedHash, req.CurrentPassword) {
		return apperrors.ErrPasswordMismatch
	}

	newHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, id, newHash)
}

// DeleteUser removes a user account
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
