package customers

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("customer not found")

// handles customer database operations
type Repository struct {
	db *pgxpool.Pool
}

// Customer is a managed phone-system customer.
type Customer struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PBXURL        string    `json:"pbx_url"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Params carries the writable customer fields for create and update.
type Params struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	PBXURL        string
	Notes         string
}
