package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/app/services"
	"github.com/emigue/backend/internal/middleware"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

// ReportController handles moderation report (denuncia) endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// CreateReport flags a rating for moderation
// @Summary Report a rating
// @Description Flags a class rating for moderation review
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Rating to flag"
// @Success 200 {object} dto.MessageResponse "Report created"
// @Failure 404 {object} dto.ErrorResponse "Fail to add denuncia"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /denuncias [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.reportService.CreateReport(ctx, req.AvaliacaoID); err != nil {
		if errors.Is(err, apperrors.ErrRatingNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Fail to add denuncia")))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Denuncia add sucessfully"))
}

// GetReports lists every open report
// @Summary List reports
// @Description Retrieves all reports with the flagged rating's comment
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Report "Reports retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /denuncias [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.ListReports(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// DeleteReport dismisses a report
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.MessageResponse "Report deleted"
// @Failure 400 {object} dto.ErrorResponse "Fail to delete denuncia"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /denuncia/{id} [delete]
func (c *ReportController) DeleteReport(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report ID")
		errorDetail = errorDetail.WithDetails("Report ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.reportService.DeleteReport(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrReportNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Fail to delete denuncia")))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Denuncia deleted sucessfully"))
}
