package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response represents the health check response
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  bool   `json:"database"`
	Version   string `json:"version"`
}

// Handler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /api/health [get]
func Handler(databaseConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  databaseConfigured,
			Version:   "1.0.0",
		})
	}
}
