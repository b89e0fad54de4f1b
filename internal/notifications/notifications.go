package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/logger"
	"github.com/pbxops/server/pbxops/users"
)

func New(db *pgxpool.Pool, enabled bool) *Service {
	return &Service{db: db, enabled: enabled}
}

func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Notification, error) {
	var n Notification

	err := s.db.QueryRow(
		ctx,
		queryCreate,
		req.UserID,
		req.Type,
		req.Title,
		req.Body,
	).Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Body,
		&n.Read,
		&n.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, limit int) ([]Notification, error) {
	rows, err := s.db.Query(ctx, queryListForUser, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification

	for rows.Next() {
		var n Notification

		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Body,
			&n.Read,
			&n.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	_, err := s.db.Exec(ctx, queryMarkRead, notificationID, userID)
	return err
}

func (s *Service) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, queryUnreadCount, userID).Scan(&count)
	return count, err
}

// SendWelcome records a welcome notification for a freshly registered user.
// It runs fire-and-forget: failures are logged, never propagated, and a slow
// database cannot delay the registration response.
func (s *Service) SendWelcome(user *users.User) {
	if !s.enabled || s.db == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := s.Create(ctx, &CreateRequest{
			UserID: user.ID,
			Type:   typeWelcome,
			Title:  "Welcome to PBX Ops",
			Body:   fmt.Sprintf("Hi %s, your account is ready.", user.Username),
		})

		if err != nil {
			logger.ErrorErr(err, "failed to record welcome notification", "user_id", user.ID)
		}
	}()
}
