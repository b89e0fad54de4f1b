package licenses

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("license not found")

	// ErrDuplicateKey is returned when a license key is already registered.
	ErrDuplicateKey = errors.New("license key already exists")
)

// handles license database operations
type Repository struct {
	db *pgxpool.Pool
}

// License is a 3CX license assigned to a customer deployment.
type License struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	LicenseKey  string     `json:"license_key"`
	LicenseType string     `json:"license_type"`
	SimCalls    int        `json:"sim_calls"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Params carries the writable license fields for create and update.
type Params struct {
	CustomerID  string
	LicenseKey  string
	LicenseType string
	SimCalls    int
	ExpiresAt   *time.Time
}
