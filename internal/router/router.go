package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"upiscan/internal/config"
	"upiscan/internal/handler"
	"upiscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	scanH *handler.ScanHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/healthz", "/readyz"))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	scans := v1.Group("/scans")
	scans.POST("", scanH.Scan)
	scans.POST("/image", scanH.ScanImage)
	scans.POST("/batch", scanH.Batch)

	payloads := v1.Group("/payloads")
	payloads.POST("/classify", scanH.Classify)
	payloads.POST("/inspect", scanH.Inspect)

	return r
}
