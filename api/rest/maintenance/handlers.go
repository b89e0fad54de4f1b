package maintenance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/pbxops/maintenance"
)

// ListHandler godoc
// @Summary List maintenance records
// @Description Lists all maintenance records with customer and license context, most recently scheduled first
// @Tags maintenance
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/maintenance [get]
// @Security BearerAuth
func ListHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to list maintenance records", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Success: true, Data: list})
	}
}

// ListByCustomerHandler godoc
// @Summary List a customer's maintenance records
// @Tags maintenance
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/maintenance/customer/{customerId} [get]
// @Security BearerAuth
func ListByCustomerHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.ListByCustomer(c.Request.Context(), c.Param("customerId"))
		if err != nil {
			apierrors.InternalError(c, "failed to list maintenance records", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Success: true, Data: list})
	}
}

// GetHandler godoc
// @Summary Get a maintenance record
// @Tags maintenance
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/maintenance/{id} [get]
// @Security BearerAuth
func GetHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, maintenance.ErrNotFound) {
				apierrors.NotFound(c, "maintenance record")
				return
			}

			apierrors.InternalError(c, "failed to fetch maintenance record", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: record})
	}
}

// CreateHandler godoc
// @Summary Create a maintenance record
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Record"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/maintenance [post]
// @Security BearerAuth
func CreateHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "customer_id, title and scheduled_date are required")
			return
		}

		record, err := repo.Create(c.Request.Context(), params(&req))
		if err != nil {
			apierrors.InternalError(c, "failed to create maintenance record", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: record})
	}
}

// UpdateHandler godoc
// @Summary Update a maintenance record
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body RecordRequest true "Record"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/maintenance/{id} [put]
// @Security BearerAuth
func UpdateHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecordRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "customer_id, title and scheduled_date are required")
			return
		}

		record, err := repo.Update(c.Request.Context(), c.Param("id"), params(&req))
		if err != nil {
			if errors.Is(err, maintenance.ErrNotFound) {
				apierrors.NotFound(c, "maintenance record")
				return
			}

			apierrors.InternalError(c, "failed to update maintenance record", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: record})
	}
}

// DeleteHandler godoc
// @Summary Delete a maintenance record
// @Tags maintenance
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/maintenance/{id} [delete]
// @Security BearerAuth
func DeleteHandler(repo *maintenance.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, maintenance.ErrNotFound) {
				apierrors.NotFound(c, "maintenance record")
				return
			}

			apierrors.InternalError(c, "failed to delete maintenance record", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "maintenance record deleted successfully",
		})
	}
}

func params(req *RecordRequest) *maintenance.Params {
	status := req.Status
	if status == "" {
		status = "scheduled"
	}

	return &maintenance.Params{
		CustomerID:    req.CustomerID,
		LicenseID:     req.LicenseID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        status,
		ScheduledDate: req.ScheduledDate,
		CompletedDate: req.CompletedDate,
		Notes:         req.Notes,
	}
}
