package users

const (
	userColumns = `id, username, email, COALESCE(password_hash, ''), COALESCE(provider, ''), COALESCE(provider_id, ''), COALESCE(company, ''), created_at`

	queryCreate = `
		INSERT INTO users (username, email, password_hash, provider, provider_id, company)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING ` + userColumns + `
	`

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryFindByUsername = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	queryFindByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1)
	`

	queryFindByProvider = `
		SELECT ` + userColumns + `
		FROM users
		WHERE provider = $1 AND provider_id = $2
	`
)
