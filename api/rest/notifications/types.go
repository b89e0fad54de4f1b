package notifications

import "github.com/pbxops/server/internal/notifications"

// ListResponse carries the caller's notifications and their unread count.
type ListResponse struct {
	Success       bool                         `json:"success"`
	Notifications []notifications.Notification `json:"notifications"`
	UnreadCount   int                          `json:"unread_count"`
}
