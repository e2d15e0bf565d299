package main

import (
	"database/sql"
	"time"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/campaign"
	"campaign-docs/internal/creative"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/matrix"
	"campaign-docs/internal/mediakit"
	"campaign-docs/internal/socialad"
	"campaign-docs/internal/taxonomy"
	"campaign-docs/pkg/utils"

	"github.com/gin-gonic/gin"
)

type handlerDeps struct {
	db        *sql.DB // nil unless the audit archive is configured
	logs      *auditlog.Service
	campaigns *campaign.Service
	creative  *creative.Service
	matrix    *matrix.Service
	mediaKits *mediakit.Service
	socialAds *socialad.Service
	taxonomy  *taxonomy.Service
}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, deps handlerDeps) {
	r.GET("/healthz", func(c *gin.Context) {
		if deps.db != nil {
			if err := utils.HealthCheck(c.Request.Context(), deps.db, 2*time.Second); err != nil {
				c.JSON(503, gin.H{"status": "degraded", "err": "archive unreachable"})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		campaign.Handler{Service: deps.campaigns, Logs: deps.logs}.Register(v1.Group("/campaigns"))

		creative.NewHandler(deps.creative, deps.logs).Register(v1.Group("/creative-contents"))
		matrix.NewHandler(deps.matrix, deps.logs).Register(v1.Group("/content-matrix"))
		mediakit.NewHandler(deps.mediaKits, deps.logs).Register(v1.Group("/media-kits"))
		socialad.NewHandler(deps.socialAds, deps.logs).Register(v1.Group("/social-ads"))
		taxonomy.NewHandler(deps.taxonomy, deps.logs).Register(v1.Group("/taxonomy-params"))

		httpapi.LogsHandler{Logs: deps.logs}.Register(v1.Group("/logs"))
	}
}
