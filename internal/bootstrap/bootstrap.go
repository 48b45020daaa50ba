package bootstrap

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/marksportal/internal/app/controllers"
	appMigrations "github.com/yigit/marksportal/internal/app/migrations"
	appRepos "github.com/yigit/marksportal/internal/app/repositories"
	appRoutes "github.com/yigit/marksportal/internal/app/routes"
	appServices "github.com/yigit/marksportal/internal/app/services"
	"github.com/yigit/marksportal/internal/config"
	"github.com/yigit/marksportal/internal/db"
	appMiddleware "github.com/yigit/marksportal/internal/middleware"
	"github.com/yigit/marksportal/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService appServices.StudentService
	SubjectService appServices.SubjectService
	MarkService    appServices.MarkService
	ReportService  appServices.ReportService
	Controllers    appRoutes.Controllers
	Repos          *appRepos.Repositories
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", config.DefaultConfigPath)
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

// SetupDatabase opens the store and makes sure the schema exists. A schema
// failure is logged and startup continues; a connection failure is returned.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.DB, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := appMigrations.NewMigrator(database, logger.WithComponent("migrator"))
	if err := migrator.EnsureSchema(ctx); err != nil {
		lgr.Error().Err(err).Msg("Schema initialization failed, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.DB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.MarkService = appServices.NewMarkService(deps.Repos.MarkRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos)

	deps.Controllers = appRoutes.Controllers{
		Student:  appControllers.NewStudentController(deps.StudentService),
		Subject:  appControllers.NewSubjectController(deps.SubjectService),
		Mark:     appControllers.NewMarkController(deps.MarkService),
		Report:   appControllers.NewReportController(deps.ReportService),
		Frontend: appControllers.NewFrontendController(cfg.Server.PublicDir),
	}

	return deps
}

// corsConfig builds the CORS policy from the configured origin list
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, appMiddleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{appMiddleware.RequestIDHeader}

	origins := cfg.AllowedOrigins()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return corsCfg
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.SetupValidator()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		cors.New(corsConfig(cfg)),
	)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
