package maintenance

const (
	recordColumns = `m.id, m.customer_id, m.license_id, m.title, COALESCE(m.description, ''), m.status, m.scheduled_date, m.completed_date, COALESCE(m.notes, ''), m.created_at, m.updated_at`

	queryList = `
		SELECT ` + recordColumns + `, COALESCE(c.company_name, ''), '', COALESCE(l.license_key, ''), ''
		FROM maintenance m
		LEFT JOIN customers c ON c.id = m.customer_id
		LEFT JOIN licenses l ON l.id = m.license_id
		ORDER BY m.scheduled_date DESC
	`

	queryListByCustomer = `
		SELECT ` + recordColumns + `, '', '', '', ''
		FROM maintenance m
		WHERE m.customer_id = $1
		ORDER BY m.scheduled_date DESC
	`

	queryFindByID = `
		SELECT ` + recordColumns + `, COALESCE(c.company_name, ''), COALESCE(c.contact_person, ''), COALESCE(l.license_key, ''), COALESCE(l.license_type, '')
		FROM maintenance m
		LEFT JOIN customers c ON c.id = m.customer_id
		LEFT JOIN licenses l ON l.id = m.license_id
		WHERE m.id = $1
	`

	queryCreate = `
		INSERT INTO maintenance (customer_id, license_id, title, description, status, scheduled_date, completed_date, notes)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''))
		RETURNING id, customer_id, license_id, title, COALESCE(description, ''), status, scheduled_date, completed_date, COALESCE(notes, ''), created_at, updated_at
	`

	queryUpdate = `
		UPDATE maintenance
		SET customer_id = $1,
		    license_id = $2,
		    title = $3,
		    description = NULLIF($4, ''),
		    status = $5,
		    scheduled_date = $6,
		    completed_date = $7,
		    notes = NULLIF($8, ''),
		    updated_at = NOW()
		WHERE id = $9
		RETURNING id, customer_id, license_id, title, COALESCE(description, ''), status, scheduled_date, completed_date, COALESCE(notes, ''), created_at, updated_at
	`

	queryDelete = `
		DELETE FROM maintenance
		WHERE id = $1
	`
)
