package maintenance

import (
	"time"

	"github.com/pbxops/server/pbxops/maintenance"
)

// RecordRequest carries the writable maintenance fields.
type RecordRequest struct {
	CustomerID    string     `json:"customer_id" binding:"required,uuid"`
	LicenseID     *string    `json:"license_id" binding:"omitempty,uuid"`
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"max=2000"`
	Status        string     `json:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	ScheduledDate time.Time  `json:"scheduled_date" binding:"required"`
	CompletedDate *time.Time `json:"completed_date"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

// ListResponse wraps a maintenance record list.
type ListResponse struct {
	Success bool                 `json:"success"`
	Data    []maintenance.Record `json:"data"`
}

// ItemResponse wraps a single maintenance record.
type ItemResponse struct {
	Success bool                `json:"success"`
	Data    *maintenance.Record `json:"data"`
}

// MessageResponse for delete confirmations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
