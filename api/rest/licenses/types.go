package licenses

import (
	"time"

	"github.com/pbxops/server/pbxops/licenses"
)

// LicenseRequest carries the writable license fields.
type LicenseRequest struct {
	CustomerID  string     `json:"customer_id" binding:"required,uuid"`
	LicenseKey  string     `json:"license_key" binding:"required,max=100"`
	LicenseType string     `json:"license_type" binding:"max=50"`
	SimCalls    int        `json:"sim_calls" binding:"gte=0"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ListResponse wraps a license list.
type ListResponse struct {
	Success bool               `json:"success"`
	Data    []licenses.License `json:"data"`
}

// ItemResponse wraps a single license.
type ItemResponse struct {
	Success bool              `json:"success"`
	Data    *licenses.License `json:"data"`
}

// MessageResponse for delete confirmations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
