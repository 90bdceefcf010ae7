package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opkit/fileops/internal/dispatch"
	"github.com/opkit/fileops/internal/registry"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	dispatcher *dispatch.Dispatcher
	registry   *registry.Registry
}

// NewHandlers creates a new handler set
func NewHandlers(dispatcher *dispatch.Dispatcher, reg *registry.Registry) *Handlers {
	return &Handlers{dispatcher: dispatcher, registry: reg}
}

// Health handles health checks
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "fileops",
		"operations": h.registry.Len(),
	})
}

// ListOperations returns the operation catalog with parameter schemas
func (h *Handlers) ListOperations(c *gin.Context) {
	ops := h.registry.List()
	c.JSON(http.StatusOK, gin.H{
		"operations": ops,
		"count":      len(ops),
	})
}

// Invoke executes one operation. The JSON body is the argument bag plus an
// "operation" field naming the operation to run. The invocation itself
// always yields HTTP 200 with a Result envelope; only malformed requests
// get a 4xx.
func (h *Handlers) Invoke(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	operation, _ := body["operation"].(string)
	if operation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "operation field required"})
		return
	}
	delete(body, "operation")

	result := h.dispatcher.Invoke(c.Request.Context(), operation, body)
	c.JSON(http.StatusOK, result)
}
