package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chartHTTP "gantt-planner/internal/chart/delivery/http"
	"gantt-planner/internal/middleware"
	reportHTTP "gantt-planner/internal/report/delivery/http"
	taskHTTP "gantt-planner/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLogger())
}

// registerSystemRoutes wires the probes, docs and metrics. These stay
// outside the rate limit so probes and scrapers never see a 429.
func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		srv.metricsRegistry,
		promhttp.HandlerOpts{},
	)))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(mw.RateLimit())

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC))
	chartHTTP.RegisterRoutes(api, chartHTTP.New(srv.l, srv.chartUC, srv.renderer, srv.metrics))
	reportHTTP.RegisterRoutes(api, reportHTTP.New(srv.l, srv.reportUC))

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
