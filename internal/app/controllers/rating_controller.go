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

// RatingController handles rating submission and moderation deletion
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// RateClass submits a rating against a class
// @Summary Rate a class
// @Description Submits a scored, commented rating against a class
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Class ID"
// @Param request body dto.RatingRequest true "Rating"
// @Success 201 {object} models.Rating "Rating created"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating data or insert failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /turma/{id}/avaliacao [post]
func (c *RatingController) RateClass(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("Class ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rating, err := c.ratingService.RateClass(ctx, id, req.UserID, req.Comentario, req.Pontuacao)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, rating)
}

// RateProfessor submits a rating directly against a professor
// @Summary Rate a professor
// @Description Submits a scored, commented rating against a professor
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param request body dto.RatingRequest true "Rating"
// @Success 201 {object} models.Rating "Rating created"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating data or insert failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professor/{id}/avaliacao [post]
func (c *RatingController) RateProfessor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor ID")
		errorDetail = errorDetail.WithDetails("Professor ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rating, err := c.ratingService.RateProfessor(ctx, id, req.UserID, req.Comentario, req.Pontuacao)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, rating)
}

// DeleteRating removes a rating (moderation)
// @Summary Delete a rating
// @Description Removes a class rating by id; reports referencing it are cascade-deleted
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rating ID"
// @Success 200 {object} dto.MessageResponse "Rating deleted"
// @Failure 400 {object} dto.ErrorResponse "Fail to delete avaliacao"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /avaliacao/{id} [delete]
func (c *RatingController) DeleteRating(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating ID")
		errorDetail = errorDetail.WithDetails("Rating ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.ratingService.DeleteRating(ctx, id); err != nil {
		// A failed delete is a 400 on this endpoint, not a 404.
		if errors.Is(err, apperrors.ErrRatingNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Fail to delete avaliacao")))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Avaliacao deleted sucessfully"))
}
