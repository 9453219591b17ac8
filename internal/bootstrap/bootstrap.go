package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selorm/scholarbase/internal/app/controllers"
	appMigrations "github.com/selorm/scholarbase/internal/app/migrations"
	appRepos "github.com/selorm/scholarbase/internal/app/repositories"
	appRoutes "github.com/selorm/scholarbase/internal/app/routes"
	appServices "github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/config"
	"github.com/selorm/scholarbase/internal/db"
	appMiddleware "github.com/selorm/scholarbase/internal/middleware"
	pkgAuth "github.com/selorm/scholarbase/internal/pkg/auth"
	"github.com/selorm/scholarbase/internal/pkg/logger"
	"github.com/selorm/scholarbase/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	UserService      appServices.UserService
	ProjectService   appServices.ProjectService
	FigureService    appServices.FigureService
	DashboardService appServices.DashboardService

	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	ProfileController   *appControllers.ProfileController
	ProjectController   *appControllers.ProjectController
	FigureController    *appControllers.FigureController
	DashboardController *appControllers.DashboardController
	PublicController    *appControllers.PublicController
	ReferenceController *appControllers.ReferenceController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied first when present.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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
// seeds the roster accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateSupervisorAccounts(context.Background(), dbPool, cfg, lgr); err != nil {
		// Seeding failures are logged but do not block startup.
		lgr.Error().Err(err).Msg("Failed to seed supervisor accounts, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, cfg)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, cfg)
	deps.FigureService = appServices.NewFigureService(deps.Repos.FigureRepository, deps.Repos.ProjectRepository, cfg)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.ProjectRepository, deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ProfileController = appControllers.NewProfileController(deps.UserService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.FigureController = appControllers.NewFigureController(deps.FigureService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.PublicController = appControllers.NewPublicController(deps.ProjectService, deps.FigureService, deps.UserService, cfg.Server.PublicURL)
	deps.ReferenceController = appControllers.NewReferenceController()

	return deps, nil
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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProfileController,
		deps.ProjectController,
		deps.FigureController,
		deps.DashboardController,
		deps.PublicController,
		deps.ReferenceController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
