package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/config"
	deliveryHttp "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/handler"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/http/middleware"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/infrastructure/cache"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/infrastructure/database"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/repository"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/service"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/usecase"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/jwt"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/upload"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Cron        *cron.Cron
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, cronRunner := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Cron = cronRunner

	return app, nil
}

// SetupLogger configures the logrus logger. Production logs as JSON to the
// configured file, development logs as text to stdout.
func SetupLogger(cfg *config.Config) {
	if cfg.App.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		if err := os.MkdirAll(filepath.Dir(cfg.App.LogPath), 0o755); err == nil {
			if f, err := os.OpenFile(cfg.App.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				logrus.SetOutput(f)
			}
		}
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(os.Stdout)
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and background jobs
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *cron.Cron) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize image store
	imageStore := upload.NewImageStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	specialtyRepo := repository.NewSpecialtyRepository(db)
	cityRepo := repository.NewCityRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	searchTagRepo := repository.NewSearchTagRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	clickSync := service.NewClickSyncService(redisClient, adRepo, log)
	locationService := service.NewLocationService(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, doctorRepo, specialtyRepo, cityRepo, auditService, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, specialtyRepo, cityRepo, searchTagRepo, auditService)
	adUsecase := usecase.NewAdvertisementUsecase(log, adRepo, clickSync, auditService)
	subUsecase := usecase.NewSubscriptionUsecase(log, subRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, userRepo, doctorRepo, cityRepo, adRepo, statsRepo, auditRepo, locationService)
	userUsecase := usecase.NewUserUsecase(log, userRepo, auditService)
	lookupUsecase := usecase.NewLookupUsecase(log, cityRepo, specialtyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator, imageStore)
	adHandler := handler.NewAdvertisementHandler(adUsecase, customValidator, imageStore)
	subHandler := handler.NewSubscriptionHandler(subUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase)
	lookupHandler := handler.NewLookupHandler(lookupUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, doctorHandler, adHandler, subHandler, dashboardHandler, userHandler, lookupHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Background jobs: flush buffered ad clicks, deactivate expired ads
	cronRunner := cron.New()
	cronRunner.AddFunc("@every 1m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := clickSync.Flush(ctx); err != nil {
			log.Warnf("Click flush job failed: %+v", err)
		}
	})
	cronRunner.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, err := adRepo.DeactivateExpired(ctx, time.Now())
		if err != nil {
			log.Warnf("Advertisement expiry sweep failed: %+v", err)
			return
		}
		if n > 0 {
			log.Infof("Deactivated %d expired advertisements", n)
		}
	})

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, cronRunner
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Cron.Start()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop background jobs; wait for a running job to finish
	<-app.Cron.Stop().Done()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
