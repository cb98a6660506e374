package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studentdesk/internal/app/controllers"
	appMigrations "github.com/yigit/studentdesk/internal/app/migrations"
	appRepos "github.com/yigit/studentdesk/internal/app/repositories"
	appRoutes "github.com/yigit/studentdesk/internal/app/routes"
	appServices "github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/config"
	"github.com/yigit/studentdesk/internal/db"
	appMiddleware "github.com/yigit/studentdesk/internal/middleware"
	pkgAuth "github.com/yigit/studentdesk/internal/pkg/auth"
	"github.com/yigit/studentdesk/internal/pkg/filestorage"
	"github.com/yigit/studentdesk/internal/pkg/helpers"
	"github.com/yigit/studentdesk/internal/pkg/logger"
	"github.com/yigit/studentdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService     appServices.CatalogService
	ResourceService    appServices.ResourceService
	StudentService     appServices.StudentService
	CatalogController  *appControllers.CatalogController
	ResourceController *appControllers.ResourceController
	AuthController     *appControllers.AuthController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	Sessions           *pkgAuth.SessionService
	FileStorage        filestorage.FileStorage
	Logger             zerolog.Logger
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

	logConfig := logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	}
	if cfg.Logging.FilePath != "" {
		logConfig.File = &logger.FileConfig{
			Path:       cfg.Logging.FilePath,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		}
	}
	logger.Configure(logConfig)

	lgr := log.Logger
	lgr.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Str("logFile", cfg.Logging.FilePath).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured resource store. The returned pool is nil for
// the memory driver.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	var (
		repos  *appRepos.Repositories
		dbPool *pgxpool.Pool
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory store, data is lost on restart")
		repos = appRepos.NewMemoryRepositories()
	default:
		pool, err := SetupDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, nil, err
		}
		dbPool = pool
		repos = appRepos.NewRepositories(dbPool)
	}

	if cfg.Database.Seed {
		if _, err := seed.CreateDefaultData(ctx, repos.ResourceRepository, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return repos, dbPool, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// SetupFileStorage builds the configured upload backend. The uploads directory
// is created for every driver because it is always served statically.
func SetupFileStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (filestorage.FileStorage, error) {
	if err := os.MkdirAll(cfg.Storage.UploadsDir, 0o755); err != nil {
		lgr.Error().Err(err).Str("path", cfg.Storage.UploadsDir).Msg("Failed to create uploads directory")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	if cfg.Storage.Driver != config.StorageMinio {
		return filestorage.NewLocalStorage(cfg.Storage.UploadsDir), nil
	}

	m := cfg.Storage.Minio
	storage, err := filestorage.NewMinioStorage(filestorage.MinioConfig{
		Endpoint:  m.Endpoint,
		AccessKey: m.AccessKey,
		SecretKey: m.SecretKey,
		Bucket:    m.Bucket,
		Region:    m.Region,
		UseSSL:    m.UseSSL,
		PublicURL: m.PublicURL,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create object storage client")
		return nil, err
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(checkCtx); err != nil {
		lgr.Error().Err(err).Str("bucket", m.Bucket).Msg("Object storage bucket unavailable")
		return nil, err
	}

	lgr.Info().Str("endpoint", m.Endpoint).Str("bucket", m.Bucket).Bool("ssl", m.UseSSL).Msg("Object storage initialized")
	return storage, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	storage, err := SetupFileStorage(context.Background(), cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.FileStorage = storage

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		Secret: cfg.Session.Secret,
		TTL:    helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour),
	})

	deps.CatalogService = appServices.NewCatalogService(repos.ResourceRepository)
	deps.ResourceService = appServices.NewResourceService(repos.ResourceRepository, deps.FileStorage)
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.AuthController = appControllers.NewAuthController(
		deps.StudentService,
		deps.Sessions,
		pkgAuth.AdminCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password},
	)

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

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())

	metricsPath := ""
	if cfg.Metrics.Enabled {
		router.Use(appMiddleware.Metrics())
		metricsPath = cfg.Metrics.Path
	}

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.ResourceController,
		deps.AuthController,
		deps.AuthMiddleware,
		appRoutes.Options{
			UploadsDir:  cfg.Storage.UploadsDir,
			MetricsPath: metricsPath,
		},
	)

	return router
}
