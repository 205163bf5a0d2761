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

type stubReportService struct {
	createErr error
	reports   []models.Report
	listErr   error
	deleteErr error
}

func (s *stubReportService) CreateReport(_ context.Context, _ int64) error {
	return s.createErr
}

func (s *stubReportService) ListReports(_ context.Context) ([]models.Report, error) {
	return s.reports, s.listErr
}

func (s *stubReportService) DeleteReport(_ context.Context, _ int64) error {
	return s.deleteErr
}

func newReportRouter(svc *stubReportService) *gin.Engine {
	c := NewReportController(svc)
	router := gin.New()
	api := router.Group("/api")
	api.POST("/denuncias", c.CreateReport)
	api.GET("/denuncias", c.GetReports)
	api.DELETE("/denuncia/:id", c.DeleteReport)
	return router
}

func TestCreateReportSuccess(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	w := performRequest(t, router, http.MethodPost, "/api/denuncias", `{"avaliacao_id":1}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Denuncia add sucessfully", decodeMessageResponse(t, w).Message)
}

func TestCreateReportUnknownRating(t *testing.T) {
	router := newReportRouter(&stubReportService{createErr: apperrors.ErrRatingNotFound})

	w := performRequest(t, router, http.MethodPost, "/api/denuncias", `{"avaliacao_id":999}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Fail to add denuncia", resp.Error.Message)
}

func TestGetReports(t *testing.T) {
	router := newReportRouter(&stubReportService{
		reports: []models.Report{
			{ID: 1, AvaliacaoID: 1, Comentario: "Essa matéria aí é de maluco"},
			{ID: 2, AvaliacaoID: 1, Comentario: "Essa matéria aí é de maluco"},
		},
	})

	w := performRequest(t, router, http.MethodGet, "/api/denuncias", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":1,"avaliacao_id":1,"comentario":"Essa matéria aí é de maluco"},
		  {"id":2,"avaliacao_id":1,"comentario":"Essa matéria aí é de maluco"}]`,
		w.Body.String())
}

func TestDeleteReportSuccess(t *testing.T) {
	router := newReportRouter(&stubReportService{})

	w := performRequest(t, router, http.MethodDelete, "/api/denuncia/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Denuncia deleted sucessfully", decodeMessageResponse(t, w).Message)
}

func TestDeleteReportNotFound(t *testing.T) {
	router := newReportRouter(&stubReportService{deleteErr: apperrors.ErrReportNotFound})

	w := performRequest(t, router, http.MethodDelete, "/api/denuncia/999", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Fail to delete denuncia", resp.Error.Message)
}
