package maintenance

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("maintenance record not found")

// handles maintenance database operations
type Repository struct {
	db *pgxpool.Pool
}

// Record is a scheduled or completed maintenance visit for a customer
// deployment. Company, contact and license fields are joined in for list and
// detail views (the UI shows them inline).
type Record struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	LicenseID     *string    `json:"license_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	CompanyName   string `json:"company_name,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	LicenseKey    string `json:"license_key,omitempty"`
	LicenseType   string `json:"license_type,omitempty"`
}

// Params carries the writable maintenance fields for create and update.
type Params struct {
	CustomerID    string
	LicenseID     *string
	Title         string
	Description   string
	Status        string
	ScheduledDate time.Time
	CompletedDate *time.Time
	Notes         string
}
