package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/revams/api/internal/app/controllers"
	appMigrations "github.com/revams/api/internal/app/migrations"
	appRepos "github.com/revams/api/internal/app/repositories"
	appRoutes "github.com/revams/api/internal/app/routes"
	appServices "github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/config"
	"github.com/revams/api/internal/db"
	appMiddleware "github.com/revams/api/internal/middleware"
	"github.com/revams/api/internal/pkg/logger"
	"github.com/revams/api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	EventService      appServices.EventService
	AttendanceService appServices.AttendanceService
	FineService       appServices.FineService
	PayableService    appServices.PayableService
	ReferenceService  appServices.ReferenceService
	OrgChartService   appServices.OrgChartService
	Controllers       appRoutes.Controllers
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx,
			appRepos.NewReferenceRepository(database.Pool),
			appRepos.NewOrganizationRepository(database.Pool),
			lgr,
		); err != nil {
			// Missing seed rows are not fatal; the API still serves.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// SetupRedis connects the org chart store.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		return nil, err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisClient *redis.Client, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database, redisClient, cfg.Redis.KeyPrefix)
	r := deps.Repos

	deps.StudentService = appServices.NewStudentService(r.StudentRepository, r.ReferenceRepository)
	deps.EventService = appServices.NewEventService(r.EventRepository, r.OrganizationRepository)
	deps.AttendanceService = appServices.NewAttendanceService(
		r.EventRepository,
		r.StudentRepository,
		r.AttendanceSlotRepository,
		r.AttendanceRecordRepository,
	)
	deps.FineService = appServices.NewFineService(
		r.StudentRepository,
		r.EventRepository,
		r.AttendanceSlotRepository,
		r.AttendanceRecordRepository,
		r.PayableRepository,
	)
	deps.PayableService = appServices.NewPayableService(r.PayableRepository, r.StudentRepository, r.EventRepository)
	deps.ReferenceService = appServices.NewReferenceService(r.ReferenceRepository, r.OrganizationRepository, lgr)
	deps.OrgChartService = appServices.NewOrgChartService(r.OrgChartRepository, r.OrganizationRepository)

	publicURL := cfg.Server.PublicURL
	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(deps.StudentService, publicURL),
		Event:      appControllers.NewEventController(deps.EventService, publicURL),
		Attendance: appControllers.NewAttendanceController(deps.AttendanceService, publicURL),
		Payable:    appControllers.NewPayableController(deps.PayableService, deps.FineService, publicURL),
		Reference:  appControllers.NewReferenceController(deps.ReferenceService),
		OrgChart:   appControllers.NewOrgChartController(deps.OrgChartService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(),
	)
	router.NoRoute(appMiddleware.NotFound())

	appRoutes.SetupRouter(router, deps.Controllers)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
