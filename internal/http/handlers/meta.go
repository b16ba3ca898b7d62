package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// MetaHandler serves the liveness endpoint and the API index.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler { return &MetaHandler{} }

// GET /api/health
func (h *MetaHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "overlay service is running",
		"version": apiVersion,
	})
}

// GET /
func (h *MetaHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "LiveSitter Backend API",
		"version":     apiVersion,
		"description": "overlay annotation API",
		"endpoints": gin.H{
			"health": "GET /api/health",
			"overlays": gin.H{
				"list":   "GET /api/overlays",
				"create": "POST /api/overlays",
				"batch":  "POST /api/overlays/batch",
				"get":    "GET /api/overlays/:id",
				"update": "PUT /api/overlays/:id",
				"patch":  "PATCH /api/overlays/:id",
				"delete": "DELETE /api/overlays/:id",
			},
			"note": "overlay routes are also mounted without the /api prefix, e.g. GET /overlays",
		},
	})
}
