package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emigue/backend/internal/app/controllers"
	appMigrations "github.com/emigue/backend/internal/app/migrations"
	appRepos "github.com/emigue/backend/internal/app/repositories"
	appRoutes "github.com/emigue/backend/internal/app/routes"
	appServices "github.com/emigue/backend/internal/app/services"
	"github.com/emigue/backend/internal/config"
	"github.com/emigue/backend/internal/db"
	appMiddleware "github.com/emigue/backend/internal/middleware"
	pkgAuth "github.com/emigue/backend/internal/pkg/auth"
	"github.com/emigue/backend/internal/pkg/logger"
	"github.com/emigue/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ProfessorService    appServices.ProfessorService
	CourseService       appServices.CourseService
	ClassService        appServices.ClassService
	RatingService       appServices.RatingService
	UserService         appServices.UserService
	ReportService       appServices.ReportService
	ProfessorController *appControllers.ProfessorController
	CourseController    *appControllers.CourseController
	ClassController     *appControllers.ClassController
	RatingController    *appControllers.RatingController
	UserController      *appControllers.UserController
	ReportController    *appControllers.ReportController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// Seed failure is not fatal, the API still serves whatever exists.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.ProfessorRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.RatingController = appControllers.NewRatingController(deps.RatingService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.ProfessorController,
		deps.CourseController,
		deps.ClassController,
		deps.RatingController,
		deps.UserController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
