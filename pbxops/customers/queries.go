package customers

const (
	customerColumns = `id, company_name, COALESCE(contact_person, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(pbx_url, ''), COALESCE(notes, ''), created_at, updated_at`

	queryList = `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY created_at DESC
	`

	queryFindByID = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1
	`

	queryCreate = `
		INSERT INTO customers (company_name, contact_person, email, phone, pbx_url, notes)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING ` + customerColumns + `
	`

	queryUpdate = `
		UPDATE customers
		SET company_name = $1,
		    contact_person = NULLIF($2, ''),
		    email = NULLIF($3, ''),
		    phone = NULLIF($4, ''),
		    pbx_url = NULLIF($5, ''),
		    notes = NULLIF($6, ''),
		    updated_at = NOW()
		WHERE id = $7
		RETURNING ` + customerColumns + `
	`

	queryDelete = `
		DELETE FROM customers
		WHERE id = $1
	`
)
