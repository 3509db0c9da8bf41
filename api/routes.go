package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/labeler-api/api/admin"
	"github.com/killallgit/labeler-api/api/auth"
	"github.com/killallgit/labeler-api/api/health"
	"github.com/killallgit/labeler-api/api/labels"
	"github.com/killallgit/labeler-api/api/paragraphs"
	"github.com/killallgit/labeler-api/api/predict"
	"github.com/killallgit/labeler-api/api/sentences"
	"github.com/killallgit/labeler-api/api/types"
	"github.com/killallgit/labeler-api/api/version"
	_ "github.com/killallgit/labeler-api/docs/swagger"
	authService "github.com/killallgit/labeler-api/internal/services/auth"
	labelsService "github.com/killallgit/labeler-api/internal/services/labels"
	"github.com/killallgit/labeler-api/internal/services/pipeline"
	"github.com/killallgit/labeler-api/internal/services/prediction"
	"github.com/killallgit/labeler-api/internal/storage"
	"github.com/killallgit/labeler-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if err := initializeServices(deps, cfg); err != nil {
		return err
	}

	requireAuth := RequireAuth(deps.Auth)

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// General rate limit (10 req/s, burst of 20); the prediction proxy gets
	// a tighter one (5 req/s, burst of 10) since each miss costs an
	// external call
	generalLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
	predictLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10)
	if !cfg.RateLimiting.Enabled {
		noop := func(c *gin.Context) { c.Next() }
		generalLimit, predictLimit = noop, noop
	}

	authGroup := v1.Group("/auth")
	authGroup.Use(generalLimit)
	auth.RegisterRoutes(authGroup, deps)

	paragraphGroup := v1.Group("/paragraphs")
	paragraphGroup.Use(generalLimit)
	paragraphs.RegisterRoutes(paragraphGroup, deps)

	sentenceGroup := v1.Group("/sentences")
	sentenceGroup.Use(generalLimit)
	sentences.RegisterRoutes(sentenceGroup, deps)

	labelGroup := v1.Group("/labels")
	labelGroup.Use(generalLimit)
	labels.RegisterRoutes(labelGroup, deps, requireAuth)

	predictGroup := v1.Group("/predict")
	predictGroup.Use(predictLimit)
	predict.RegisterRoutes(predictGroup, deps)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(generalLimit)
	admin.RegisterRoutes(adminGroup, deps, requireAuth)

	return nil
}

// initializeServices wires the pipeline and label services for the
// configured backend, plus the predictor and auth service, for anything
// not already injected (tests inject their own).
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	if deps.Pipeline == nil || deps.Labels == nil {
		switch cfg.Storage.Backend {
		case config.BackendSQLite:
			if deps.DB == nil || deps.DB.DB == nil {
				return fmt.Errorf("sqlite backend selected but no database connection is set")
			}
			deps.Pipeline = pipeline.NewRelationalService(pipeline.NewRepository(deps.DB.DB))
			deps.Labels = labelsService.NewService(labelsService.NewRepository(deps.DB.DB))

		case config.BackendFile:
			store := storage.NewFilesystemStore(afero.NewOsFs(), cfg.Storage.DataDir)
			deps.Pipeline = pipeline.NewBlobService(store, blobPolicy(cfg.Pipeline.Policy))
			deps.Labels = labelsService.NewBlobService(store)

		case config.BackendSupabase:
			client := storage.NewSupabaseClient(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey)
			textStore := storage.NewSupabaseStore(client, cfg.Storage.TextBucket)
			dataStore := storage.NewSupabaseStore(client, cfg.Storage.DataBucket)
			deps.Pipeline = pipeline.NewBlobService(textStore, blobPolicy(cfg.Pipeline.Policy))
			deps.Labels = labelsService.NewBlobService(dataStore)
			deps.Provisioner = storage.NewProvisioner(client, cfg.Storage.TextBucket, cfg.Storage.DataBucket)

		default:
			return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
		}
	}

	if deps.Predictor == nil {
		deps.Predictor = prediction.NewClient(prediction.Config{
			Endpoint:  cfg.Prediction.Endpoint,
			Timeout:   cfg.Prediction.Timeout,
			CacheSize: cfg.Prediction.CacheSize,
		})
	}

	if deps.Auth == nil {
		deps.Auth = authService.NewService(authService.Config{
			AdminCode:     cfg.Auth.AdminCode,
			AdminPassword: cfg.Auth.AdminPassword,
			JWTSecret:     cfg.Auth.JWTSecret,
			TokenTTL:      cfg.Auth.TokenTTL,
		})
	}

	return nil
}

// blobPolicy maps the configured policy name onto the blob pipeline
// policy. Validation has already rejected anything else, including the
// flagged policy which never reaches the blob service.
func blobPolicy(name string) pipeline.Policy {
	if name == config.PolicyRandom {
		return pipeline.PolicyRandom
	}
	return pipeline.PolicyFIFO
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
