package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/team-echo-club/echo-api/internal/app/controllers"
	appRoutes "github.com/team-echo-club/echo-api/internal/app/routes"
	appServices "github.com/team-echo-club/echo-api/internal/app/services"
	"github.com/team-echo-club/echo-api/internal/config"
	"github.com/team-echo-club/echo-api/internal/dataset"
	appMiddleware "github.com/team-echo-club/echo-api/internal/middleware"
	"github.com/team-echo-club/echo-api/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ActivityService appServices.ActivityService // Interface type
	MediaService    appServices.MediaService    // Interface type
	TeamService     appServices.TeamService     // Interface type
	ClubService     appServices.ClubService     // Interface type

	ActivityController *appControllers.ActivityController
	MediaController    *appControllers.MediaController
	TeamController     *appControllers.TeamController
	ClubController     *appControllers.ClubController

	Datasets *dataset.Provider
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Default() // Get the configured default logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadDatasets parses the embedded data files into the dataset provider.
// The provider logs the per-dataset counts itself once loading succeeds.
func LoadDatasets(lgr zerolog.Logger) (*dataset.Provider, error) {
	lgr.Info().Msg("Loading embedded datasets...")
	provider, err := dataset.Load(lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load datasets")
		return nil, err
	}
	return provider, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, datasets *dataset.Provider, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Datasets: datasets,
		Logger:   lgr,
	}

	// Initialize services
	deps.ActivityService = appServices.NewActivityService(datasets, cfg, lgr)
	deps.MediaService = appServices.NewMediaService(datasets, cfg, lgr)
	deps.TeamService = appServices.NewTeamService(datasets, cfg, lgr)
	deps.ClubService = appServices.NewClubService(datasets, cfg, lgr)

	// Initialize controllers
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)
	deps.MediaController = appControllers.NewMediaController(deps.MediaService)
	deps.TeamController = appControllers.NewTeamController(deps.TeamService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ActivityController,
		deps.MediaController,
		deps.TeamController,
		deps.ClubController,
	)

	return router
}
