package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emigue/backend/internal/pkg/apperrors"
)

func TestValidateRating(t *testing.T) {
	assert.NoError(t, validateRating("Ótima matéria", 5))
	assert.NoError(t, validateRating("ok", 1))

	assert.ErrorIs(t, validateRating("", 3), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateRating("   ", 3), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateRating("fine", 0), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateRating("fine", 6), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateRating("fine", -1), apperrors.ErrValidationFailed)
}

func TestValidateProfileFields(t *testing.T) {
	assert.NoError(t, validateProfileFields("ruan@email.com", "Ruan Petrus", "211010459", "CIC"))

	assert.ErrorIs(t, validateProfileFields("not-an-email", "Ruan", "211010459", "CIC"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateProfileFields("@email.com", "Ruan", "211010459", "CIC"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateProfileFields("ruan@", "Ruan", "211010459", "CIC"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateProfileFields("ruan@email.com", "  ", "211010459", "CIC"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateProfileFields("ruan@email.com", "Ruan", "", "CIC"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, validateProfileFields("ruan@email.com", "Ruan", "211010459", ""), apperrors.ErrValidationFailed)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("a@b"))
	assert.True(t, isValidEmail("ruan@email.com"))

	assert.False(t, isValidEmail(""))
	assert.False(t, isValidEmail("plain"))
	assert.False(t, isValidEmail("@email.com"))
	assert.False(t, isValidEmail("ruan@"))
	assert.False(t, isValidEmail("ru an@email.com"))
}
