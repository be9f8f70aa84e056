package api

import (
	"github.com/Conceptual-Machines/magda-harmony/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-harmony/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-harmony/internal/config"
	"github.com/Conceptual-Machines/magda-harmony/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, version string, cloudwatch *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatch))

	router.Use(apimiddleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/health", handlers.HealthCheck)

	stats := handlers.NewEngineStats()
	metricsHandler := handlers.NewMetricsHandler(version, stats)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Engine endpoints are stateless and public
	v1 := router.Group("/api/v1")
	{
		harmonyHandler := handlers.NewHarmonyHandler(cfg, cloudwatch, stats)
		v1.GET("/keys/:root/:mode", harmonyHandler.GetKey)
		v1.GET("/circle-of-fifths", harmonyHandler.GetCircleOfFifths)
		v1.GET("/layout", harmonyHandler.GetLayout)
		v1.GET("/progressions/presets", harmonyHandler.GetPresets)

		v1.POST("/chords/resolve", harmonyHandler.ResolveChord)
		v1.POST("/chords/transform", harmonyHandler.TransformChord)
		v1.POST("/substitutions", harmonyHandler.GetSubstitutions)
		v1.POST("/progressions/score", harmonyHandler.ScoreProgression)
	}

	return router
}
