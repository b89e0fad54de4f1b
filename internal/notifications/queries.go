package notifications

const (
	queryCreate = `
		INSERT INTO notifications (user_id, type, title, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, title, body, read, created_at
	`

	queryListForUser = `
		SELECT id, user_id, type, title, body, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryMarkRead = `
		UPDATE notifications
		SET read = true
		WHERE id = $1 AND user_id = $2
	`

	queryUnreadCount = `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND read = false
	`
)
