package notifications

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service writes and reads user notification records.
type Service struct {
	db      *pgxpool.Pool
	enabled bool
}

// Notification is a per-user notification record.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest contains the fields for a new notification.
type CreateRequest struct {
	UserID string
	Type   string
	Title  string
	Body   string
}

const typeWelcome = "welcome"
