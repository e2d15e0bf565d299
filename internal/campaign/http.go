package campaign

import (
	"strconv"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"

	"github.com/gin-gonic/gin"
)

// Handler owns the /campaigns route group.
type Handler struct {
	Service *Service
	Logs    *auditlog.Service
}

func (h Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/search/action-number", h.searchActionNumber)
	rg.GET("/search/project-number", h.searchProjectNumber)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.remove)
	rg.GET("/:id/logs", h.logs)
}

func (h Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httpapi.BadRequest(c, "invalid json")
		return
	}
	rec, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	httpapi.Created(c, rec, "campaign created")
}

func (h Handler) list(c *gin.Context) {
	httpapi.List(c, h.Service.List(c.Request.Context()), "campaigns listed")
}

func (h Handler) searchActionNumber(c *gin.Context) {
	httpapi.List(c, h.Service.SearchByActionNumber(c.Request.Context(), c.Query("q")), "search completed")
}

func (h Handler) searchProjectNumber(c *gin.Context) {
	httpapi.List(c, h.Service.SearchByProjectNumber(c.Request.Context(), c.Query("q")), "search completed")
}

func (h Handler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	httpapi.OK(c, rec, "campaign found")
}

func (h Handler) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	var patch UpdateInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		httpapi.BadRequest(c, "invalid json")
		return
	}
	rec, err := h.Service.Update(c.Request.Context(), id, patch)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	httpapi.OK(c, rec, "campaign updated")
}

func (h Handler) remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		httpapi.Error(c, err)
		return
	}
	httpapi.Message(c, "campaign deleted")
}

// logs returns the audit trail for one campaign id. No existence check:
// deleted campaigns keep their history.
func (h Handler) logs(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		return
	}
	entries, err := h.Logs.ByEntity(c.Request.Context(), EntityType, id)
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	httpapi.List(c, entries, "logs retrieved")
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpapi.BadRequest(c, "invalid id")
		return 0, err
	}
	return id, nil
}
