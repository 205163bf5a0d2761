package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emigue/backend/internal/app/controllers"
	"github.com/emigue/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	professorController *controllers.ProfessorController,
	courseController *controllers.CourseController,
	classController *controllers.ClassController,
	ratingController *controllers.RatingController,
	userController *controllers.UserController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public catalog routes ---
	api.GET("/professores", professorController.GetAllProfessors)
	api.GET("/professor/:id", professorController.GetProfessorByID)
	api.GET("/disciplinas", courseController.GetAllCourses)
	api.GET("/disciplina/:id", courseController.GetCourseByID)
	api.GET("/turma/:id", classController.GetClassByID)

	// --- Rating submission ---
	api.POST("/turma/:id/avaliacao", ratingController.RateClass)
	api.POST("/professor/:id/avaliacao", ratingController.RateProfessor)

	// --- Accounts ---
	api.POST("/user", userController.Login)
	api.POST("/user/register", userController.Register)
	api.GET("/user/:id", userController.GetUser)
	api.PUT("/user/:id", userController.UpdateUser)
	api.PUT("/user/:id/password", userController.UpdatePassword)
	api.DELETE("/user/:id", userController.DeleteUser)

	// --- Report creation (any caller can flag a rating) ---
	api.POST("/denuncias", reportController.CreateReport)

	// --- Moderation (admin token required) ---
	moderation := api.Group("")
	moderation.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		moderation.GET("/denuncias", reportController.GetReports)
		moderation.DELETE("/denuncia/:id", reportController.DeleteReport)
		moderation.DELETE("/avaliacao/:id", ratingController.DeleteRating)
	}
}
