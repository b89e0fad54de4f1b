package system

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/internal/logger"
	"github.com/pbxops/server/internal/pbx"
)

// FetchInfoHandler godoc
// @Summary Fetch phone-system status
// @Description Queries the deployment's status API with the supplied credentials. When the system cannot be reached the response carries simulated data and is flagged as such.
// @Tags system
// @Accept json
// @Produce json
// @Param request body FetchInfoRequest true "System address and credentials"
// @Success 200 {object} FetchInfoResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/system/fetch-info [post]
// @Security BearerAuth
func FetchInfoHandler(client *pbx.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FetchInfoRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "missing credentials", nil)
			return
		}

		info, err := client.FetchSystemStatus(c.Request.Context(), req.SystemURL, req.Username, req.Password)
		if err != nil {
			// fall back to simulated data so the dashboard stays usable
			// while a deployment is unreachable
			logger.Warn("system status query failed, serving simulation",
				"system_url", req.SystemURL,
				"error", err,
			)

			c.JSON(http.StatusOK, FetchInfoResponse{
				Success:   true,
				Simulated: true,
				Data:      pbx.Simulate(),
			})
			return
		}

		c.JSON(http.StatusOK, FetchInfoResponse{
			Success: true,
			Data:    info,
		})
	}
}
