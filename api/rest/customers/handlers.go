package customers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/pbxops/customers"
)

// ListHandler godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/customers [get]
// @Security BearerAuth
func ListHandler(repo *customers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "failed to list customers", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Success: true, Data: list})
	}
}

// GetHandler godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/customers/{id} [get]
// @Security BearerAuth
func GetHandler(repo *customers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := repo.FindByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, customers.ErrNotFound) {
				apierrors.NotFound(c, "customer")
				return
			}

			apierrors.InternalError(c, "failed to fetch customer", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: customer})
	}
}

// CreateHandler godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Customer"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/customers [post]
// @Security BearerAuth
func CreateHandler(repo *customers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "company_name is required")
			return
		}

		customer, err := repo.Create(c.Request.Context(), params(&req))
		if err != nil {
			apierrors.InternalError(c, "failed to create customer", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: customer})
	}
}

// UpdateHandler godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body CustomerRequest true "Customer"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/customers/{id} [put]
// @Security BearerAuth
func UpdateHandler(repo *customers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CustomerRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, "company_name is required")
			return
		}

		customer, err := repo.Update(c.Request.Context(), c.Param("id"), params(&req))
		if err != nil {
			if errors.Is(err, customers.ErrNotFound) {
				apierrors.NotFound(c, "customer")
				return
			}

			apierrors.InternalError(c, "failed to update customer", err)
			return
		}

		c.JSON(http.StatusOK, ItemResponse{Success: true, Data: customer})
	}
}

// DeleteHandler godoc
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/customers/{id} [delete]
// @Security BearerAuth
func DeleteHandler(repo *customers.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, customers.ErrNotFound) {
				apierrors.NotFound(c, "customer")
				return
			}

			apierrors.InternalError(c, "failed to delete customer", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "customer deleted successfully",
		})
	}
}

func params(req *CustomerRequest) *customers.Params {
	return &customers.Params{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		PBXURL:        req.PBXURL,
		Notes:         req.Notes,
	}
}
