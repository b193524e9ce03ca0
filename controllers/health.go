package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger is the slice of mongo.Client the health check needs.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// HealthResponse represents the health check response structure.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Health handles the health check endpoint, reporting whether the
// article store is reachable.
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "disconnected"
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context(), nil); err == nil {
			dbStatus = "connected"
		}
	}

	status := http.StatusOK
	response := HealthResponse{
		Status:   "ok",
		Database: dbStatus,
	}
	if dbStatus != "connected" {
		status = http.StatusServiceUnavailable
		response.Status = "unavailable"
	}

	c.JSON(status, response)
}
