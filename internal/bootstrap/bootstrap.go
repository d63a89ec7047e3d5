// Package bootstrap wires configuration, logging, the database, and
// the dependency graph together for the HTTP server.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusflow/backend/internal/app/controllers"
	appMigrations "github.com/campusflow/backend/internal/app/migrations"
	appRepos "github.com/campusflow/backend/internal/app/repositories"
	appRoutes "github.com/campusflow/backend/internal/app/routes"
	appServices "github.com/campusflow/backend/internal/app/services"
	"github.com/campusflow/backend/internal/config"
	"github.com/campusflow/backend/internal/db"
	appMiddleware "github.com/campusflow/backend/internal/middleware"
	pkgAuth "github.com/campusflow/backend/internal/pkg/auth"
	"github.com/campusflow/backend/internal/pkg/helpers"
	"github.com/campusflow/backend/internal/pkg/logger"
	"github.com/campusflow/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	TermService          appServices.TermService
	SelectionService     appServices.SelectionService
	DepartmentService    appServices.DepartmentService
	MessageService       appServices.MessageService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	TermController       *appControllers.TermController
	SelectionController  *appControllers.SelectionController
	DepartmentController *appControllers.DepartmentController
	MessageController    *appControllers.MessageController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file is optional; environment overrides still apply
	_ = godotenv.Load()

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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	bootstrapAdmin := seed.BootstrapAdmin{
		Username:   cfg.Auth.AdminUsername,
		Password:   cfg.Auth.AdminPassword,
		BcryptCost: cfg.Auth.BcryptCost,
	}
	if err := seed.CreateDefaultData(context.Background(), database.Pool, bootstrapAdmin, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AccountRepository,
		deps.Repos.AdminRepository,
		deps.Repos.DepartmentRepository,
		deps.JWTService,
		cfg.Auth.BcryptCost,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		cfg.Auth.BcryptCost,
		lgr,
	)
	deps.TermService = appServices.NewTermService(deps.Repos.TermRepository, lgr)
	deps.SelectionService = appServices.NewSelectionService(
		deps.Repos.StudentRepository,
		deps.Repos.SelectionRepository,
		lgr,
	)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.TermController = appControllers.NewTermController(deps.TermService, lgr)
	deps.SelectionController = appControllers.NewSelectionController(deps.SelectionService, lgr)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService, lgr)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, lgr)

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
		deps.TermController,
		deps.SelectionController,
		deps.DepartmentController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	return router
}
