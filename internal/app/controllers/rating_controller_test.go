package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

type stubRatingService struct {
	rating    *models.Rating
	rateErr   error
	deleteErr error
}

func (s *stubRatingService) RateClass(_ context.Context, _ int64, _ int64, _ string, _ int) (*models.Rating, error) {
	return s.rating, s.rateErr
}

func (s *stubRatingService) RateProfessor(_ context.Context, _ int64, _ int64, _ string, _ int) (*models.Rating, error) {
	return s.rating, s.rateErr
}

func (s *stubRatingService) DeleteRating(_ context.Context, _ int64) error {
	return s.deleteErr
}

func newRatingRouter(svc *stubRatingService) *gin.Engine {
	c := NewRatingController(svc)
	router := gin.New()
	api := router.Group("/api")
	api.POST("/turma/:id/avaliacao", c.RateClass)
	api.POST("/professor/:id/avaliacao", c.RateProfessor)
	api.DELETE("/avaliacao/:id", c.DeleteRating)
	return router
}

func TestRateClassSuccess(t *testing.T) {
	router := newRatingRouter(&stubRatingService{
		rating: &models.Rating{ID: 11, UserID: 2, UserNome: "Ruan Petrus", Comentario: "Muito divertida a matéria", Pontuacao: 3},
	})

	w := performRequest(t, router, http.MethodPost, "/api/turma/4/avaliacao",
		`{"user_id":2,"comentario":"Muito divertida a matéria","pontuacao":3}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"id":11,"user_id":2,"user_nome":"Ruan Petrus","comentario":"Muito divertida a matéria","pontuacao":3}`,
		w.Body.String())
}

func TestRateClassUnknownTarget(t *testing.T) {
	router := newRatingRouter(&stubRatingService{rateErr: apperrors.ErrInvariantViolation})

	w := performRequest(t, router, http.MethodPost, "/api/turma/999/avaliacao",
		`{"user_id":2,"comentario":"ok","pontuacao":3}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Fail to add avaliacao", resp.Error.Message)
}

func TestRateProfessorValidationError(t *testing.T) {
	router := newRatingRouter(&stubRatingService{rateErr: apperrors.ErrValidationFailed})

	w := performRequest(t, router, http.MethodPost, "/api/professor/1/avaliacao",
		`{"user_id":2,"comentario":"   ","pontuacao":3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateClassInvalidID(t *testing.T) {
	router := newRatingRouter(&stubRatingService{})

	w := performRequest(t, router, http.MethodPost, "/api/turma/abc/avaliacao",
		`{"user_id":2,"comentario":"ok","pontuacao":3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRatingSuccess(t *testing.T) {
	router := newRatingRouter(&stubRatingService{})

	w := performRequest(t, router, http.MethodDelete, "/api/avaliacao/11", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Avaliacao deleted sucessfully", decodeMessageResponse(t, w).Message)
}

func TestDeleteRatingNotFound(t *testing.T) {
	router := newRatingRouter(&stubRatingService{deleteErr: apperrors.ErrRatingNotFound})

	w := performRequest(t, router, http.MethodDelete, "/api/avaliacao/999", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Fail to delete avaliacao", resp.Error.Message)
}
