package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campus-survey/internal/app/controllers"
	appRepos "github.com/yigit/campus-survey/internal/app/repositories"
	appRoutes "github.com/yigit/campus-survey/internal/app/routes"
	appServices "github.com/yigit/campus-survey/internal/app/services"
	"github.com/yigit/campus-survey/internal/config"
	"github.com/yigit/campus-survey/internal/db"
	appMiddleware "github.com/yigit/campus-survey/internal/middleware"
	"github.com/yigit/campus-survey/internal/pkg/apperrors"
	"github.com/yigit/campus-survey/internal/pkg/logger"
	"github.com/yigit/campus-survey/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SurveyService       appServices.SurveyService   // Interface type
	FeedbackService     appServices.FeedbackService // Interface type
	HealthService       appServices.HealthService   // Interface type
	SurveyController    *appControllers.SurveyController
	FeedbackController  *appControllers.FeedbackController
	AnalyticsController *appControllers.AnalyticsController
	SystemController    *appControllers.SystemController
	Repos               *appRepos.Repositories // Storage connector shared by every handler
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase builds the storage connector for the configured driver. It never fails:
// when no client can be created the service still starts on a connector that reports
// every operation as an infrastructure error and health as Disconnected.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) *appRepos.Repositories {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")

	repos, err := openRepositories(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create database client, continuing without storage")
		return appRepos.NewUnavailableRepositories(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()
	if err := repos.Health.Ping(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Database not reachable yet; health will report Disconnected until it is")
		return repos
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Create demo data (after the connection is known to work)
	if cfg.Database.SeedDemoData {
		if err := seed.CreateDemoData(context.Background(), repos, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return repos
}

func openRepositories(cfg *config.Config) (*appRepos.Repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		database, err := db.NewMongoDB(cfg)
		if err != nil {
			return nil, err
		}
		return appRepos.NewMongoRepositories(database), nil
	case config.DriverPostgres:
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return appRepos.NewPostgresRepositories(database), nil
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownDatabase, cfg.Database.Driver)
	}
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	// Initialize services
	deps.SurveyService = appServices.NewSurveyService(repos.SurveyRepository)
	deps.FeedbackService = appServices.NewFeedbackService(repos.FeedbackRepository)
	deps.HealthService = appServices.NewHealthService(repos.Health)

	deps.SurveyController = appControllers.NewSurveyController(deps.SurveyService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.SurveyService)
	deps.SystemController = appControllers.NewSystemController(deps.HealthService)

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
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.CORSAllowedOrigins),
	)

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.SurveyController,
		deps.FeedbackController,
		deps.AnalyticsController,
		deps.SystemController,
	)

	return router
}
