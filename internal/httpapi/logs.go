package httpapi

import (
	"strconv"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/store"

	"github.com/gin-gonic/gin"
)

// LogsHandler exposes the global audit-log query surface.
type LogsHandler struct {
	Logs *auditlog.Service
}

func (h LogsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.all)
	rg.GET("/entity", h.byEntity)
	rg.GET("/user", h.byUser)
	rg.GET("/date-range", h.byDateRange)
}

func (h LogsHandler) all(c *gin.Context) {
	entries, err := h.Logs.All(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	List(c, entries, "logs listed")
}

func (h LogsHandler) byEntity(c *gin.Context) {
	entityType := c.Query("type")
	if entityType == "" {
		BadRequest(c, "type is required")
		return
	}
	entityID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	entries, err := h.Logs.ByEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		Error(c, err)
		return
	}
	List(c, entries, "logs retrieved")
}

func (h LogsHandler) byUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		BadRequest(c, "userId is required")
		return
	}
	entries, err := h.Logs.ByUser(c.Request.Context(), userID)
	if err != nil {
		Error(c, err)
		return
	}
	List(c, entries, "logs retrieved")
}

// byDateRange filters on startDate <= timestamp <= endDate, both inclusive.
// Bounds parse as RFC 3339 or plain yyyy-mm-dd.
func (h LogsHandler) byDateRange(c *gin.Context) {
	start, err := store.ParseDate(c.Query("startDate"))
	if err != nil {
		BadRequest(c, "invalid startDate")
		return
	}
	end, err := store.ParseDate(c.Query("endDate"))
	if err != nil {
		BadRequest(c, "invalid endDate")
		return
	}
	entries, err := h.Logs.ByTimeRange(c.Request.Context(), start, end)
	if err != nil {
		Error(c, err)
		return
	}
	List(c, entries, "logs retrieved")
}
