package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/app/services"
	"github.com/emigue/backend/internal/middleware"
)

// ProfessorController handles professor-related endpoints
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetAllProfessors lists every professor
// @Summary List professors
// @Description Retrieves all professors with aggregated rating totals and the distinct courses they teach
// @Tags professors
// @Produce json
// @Success 200 {array} models.ProfessorItem "Professors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professores [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.ListProfessors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// GetProfessorByID retrieves a professor profile
// @Summary Get professor by ID
// @Description Retrieves a professor's profile, classes taught and ratings
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} models.ProfessorProfile "Professor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professor/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid professor ID")
		errorDetail = errorDetail.WithDetails("Professor ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	professor, err := c.professorService.GetProfessor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}
