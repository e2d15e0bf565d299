package httpapi

import (
	"strconv"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/store"

	"github.com/gin-gonic/gin"
)

// EntityHandler exposes the shared dependent-entity route set. Each entity
// package instantiates it with its service and searchable-field catalog;
// route wiring stays identical across all five entities.
type EntityHandler[T, C, P any] struct {
	Service  *store.Dependent[T, C, P]
	Logs     *auditlog.Service
	Searches map[string]store.Field[T] // route suffix -> field selector
}

func (h EntityHandler[T, C, P]) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/campaign/:campaignId", h.listByCampaign)
	for suffix, field := range h.Searches {
		rg.GET("/search/"+suffix, h.search(field))
	}
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.remove)
	rg.GET("/:id/logs", h.logs)
}

func (h EntityHandler[T, C, P]) create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "invalid json")
		return
	}
	rec, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, rec, "record created")
}

func (h EntityHandler[T, C, P]) list(c *gin.Context) {
	List(c, h.Service.List(c.Request.Context()), "records listed")
}

func (h EntityHandler[T, C, P]) listByCampaign(c *gin.Context) {
	campaignID, err := pathID(c, "campaignId")
	if err != nil {
		return
	}
	recs, err := h.Service.ListByCampaign(c.Request.Context(), campaignID)
	if err != nil {
		Error(c, err)
		return
	}
	List(c, recs, "records listed")
}

func (h EntityHandler[T, C, P]) search(field store.Field[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		List(c, h.Service.Search(c.Request.Context(), q, field), "search completed")
	}
}

func (h EntityHandler[T, C, P]) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	rec, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	OK(c, rec, "record found")
}

func (h EntityHandler[T, C, P]) update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, "invalid json")
		return
	}
	rec, err := h.Service.Update(c.Request.Context(), id, patch)
	if err != nil {
		Error(c, err)
		return
	}
	OK(c, rec, "record updated")
}

func (h EntityHandler[T, C, P]) remove(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	if err := h.Service.Remove(c.Request.Context(), id); err != nil {
		Error(c, err)
		return
	}
	Message(c, "record deleted")
}

func (h EntityHandler[T, C, P]) logs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	entries, err := h.Logs.ByEntity(c.Request.Context(), h.Service.Entity(), id)
	if err != nil {
		Error(c, err)
		return
	}
	List(c, entries, "logs retrieved")
}

// pathID parses an int64 path parameter, responding 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		BadRequest(c, "invalid "+name)
		return 0, err
	}
	return id, nil
}
