package licenses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/pbxops/licenses"
)

// ListHandler godoc
// @Summary List licenses
// @Description Lists all licenses, or one customer's licenses when customer_id is given
// @Tags licenses
// @Produce json
// @Param customer_id query string false "Filter by customer"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/licenses [get]
// @Security BearerAuth
func ListHandler(repo *licenses.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			list []licenses.License
			err  error
		)

		if customerID := c.Query("customer_id"); customerID != "" {
			list, err = repo.ListByCustomer(c.Request.Context(), customerID)
		} else {
			list, err = repo.List(c.Request.Context())
		}

		if err != nil {
			apierrors.InternalError(c, "failed to list licenses", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Success: true, Data: list})
	}
}

// GetHandler godoc
// @Summary Get a license
// @Tags licenses
// @Produce json
// @Param id path string true "License ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/licenses/{id} [get]
// @Security BearerAuth
func GetHandler(repo *licenses.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		license, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, licenses.ErrNotFound) {
				apierrors.NotFound(c, "license")
				return
			}

			apierrors.InternalError(c, "failed to fetch license", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: license})
	}
}

// CreateHandler godoc
// @Summary Register a license
// @Tags licenses
// @Accept json
// @Produce json
// @Param request body LicenseRequest true "License"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/licenses [post]
// @Security BearerAuth
func CreateHandler(repo *licenses.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LicenseRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "customer_id and license_key are required")
			return
		}

		license, err := repo.Create(c.Request.Context(), params(&req))
		if err != nil {
			if errors.Is(err, licenses.ErrDuplicateKey) {
				apierrors.Conflict(c, "license key already registered")
				return
			}

			apierrors.InternalError(c, "failed to create license", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: license})
	}
}

// UpdateHandler godoc
// @Summary Update a license
// @Tags licenses
// @Accept json
// @Produce json
// @Param id path string true "License ID"
// @Param request body LicenseRequest true "License"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/licenses/{id} [put]
// @Security BearerAuth
func UpdateHandler(repo *licenses.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LicenseRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "customer_id and license_key are required")
			return
		}

		license, err := repo.Update(c.Request.Context(), c.Param("id"), params(&req))
		if err != nil {
			switch {
			case errors.Is(err, licenses.ErrNotFound):
				apierrors.NotFound(c, "license")
			case errors.Is(err, licenses.ErrDuplicateKey):
				apierrors.Conflict(c, "license key already registered")
			default:
				apierrors.InternalError(c, "failed to update license", err)
			}

			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: license})
	}
}

// DeleteHandler godoc
// @Summary Delete a license
// @Tags licenses
// @Produce json
// @Param id path string true "License ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/licenses/{id} [delete]
// @Security BearerAuth
func DeleteHandler(repo *licenses.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, licenses.ErrNotFound) {
				apierrors.NotFound(c, "license")
				return
			}

			apierrors.InternalError(c, "failed to delete license", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "license deleted successfully",
		})
	}
}

func params(req *LicenseRequest) *licenses.Params {
	return &licenses.Params{
		CustomerID:  req.CustomerID,
		LicenseKey:  req.LicenseKey,
		LicenseType: req.LicenseType,
		SimCalls:    req.SimCalls,
		ExpiresAt:   req.ExpiresAt,
	}
}
