package licenses

const (
	licenseColumns = `id, customer_id, license_key, COALESCE(license_type, ''), COALESCE(sim_calls, 0), expires_at, created_at, updated_at`

	queryList = `
		SELECT ` + licenseColumns + `
		FROM licenses
		ORDER BY created_at DESC
	`

	queryListByCustomer = `
		SELECT ` + licenseColumns + `
		FROM licenses
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	queryFindByID = `
		SELECT ` + licenseColumns + `
		FROM licenses
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO licenses (customer_id, license_key, license_type, sim_calls, expires_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING ` + licenseColumns + `
	`

	queryUpdate = `
		UPDATE licenses
		SET customer_id = $1,
		    license_key = $2,
		    license_type = NULLIF($3, ''),
		    sim_calls = $4,
		    expires_at = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING ` + licenseColumns + `
	`

	queryDelete = `
		DELETE FROM licenses
		WHERE id = $1
	`
)
