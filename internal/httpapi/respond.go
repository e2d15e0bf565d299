package httpapi

import (
	"errors"
	"net/http"

	"campaign-docs/internal/store"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success body: {success, data, total?, message}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// List responds with the slice and its length as total.
func List[T any](c *gin.Context, items []T, message string) {
	if items == nil {
		items = []T{}
	}
	total := len(items)
	c.JSON(http.StatusOK, Envelope{Success: true, Data: items, Total: &total, Message: message})
}

// Message responds with an envelope carrying no data.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Error maps service errors onto HTTP statuses. Handlers call this instead of
// reinterpreting errors themselves.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, store.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
