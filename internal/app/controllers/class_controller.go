package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/app/services"
	"github.com/emigue/backend/internal/middleware"
)

// ClassController handles class (turma) endpoints
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// GetClassByID retrieves a class with its ratings
// @Summary Get class by ID
// @Description Retrieves a class with professor/course names, rating totals and every rating
// @Tags classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.ClassDetail "Class retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /turma/{id} [get]
func (c *ClassController) GetClassByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid class ID")
		errorDetail = errorDetail.WithDetails("Class ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.GetClass(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, class)
}
