package maintenance

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/errors"
)

// creates a new maintenance repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all maintenance records with customer and license context, most
// recently scheduled first
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// lists the maintenance records for one customer
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryListByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// finds a maintenance record by id, with joined customer and license fields
func (r *Repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record

	err := r.db.QueryRow(ctx, queryFindByID, id).Scan(
		append(baseFields(&rec), &rec.CompanyName, &rec.ContactPerson, &rec.LicenseKey, &rec.LicenseType)...,
	)

	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &rec, nil
}

// creates a maintenance record
func (r *Repository) Create(ctx context.Context, p *Params) (*Record, error) {
	var rec Record

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		p.CustomerID,
		p.LicenseID,
		p.Title,
		p.Description,
		p.Status,
		p.ScheduledDate,
		p.CompletedDate,
		p.Notes,
	).Scan(baseFields(&rec)...)

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// updates a maintenance record
func (r *Repository) Update(ctx context.Context, id string, p *Params) (*Record, error) {
	var rec Record

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		p.CustomerID,
		p.LicenseID,
		p.Title,
		p.Description,
		p.Status,
		p.ScheduledDate,
		p.CompletedDate,
		p.Notes,
		id,
	).Scan(baseFields(&rec)...)

	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &rec, nil
}

// deletes a maintenance record
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// scan destinations for the non-joined record columns, in query order
func baseFields(rec *Record) []any {
	return []any{
		&rec.ID,
		&rec.CustomerID,
		&rec.LicenseID,
		&rec.Title,
		&rec.Description,
		&rec.Status,
		&rec.ScheduledDate,
		&rec.CompletedDate,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	}
}

func scanRecords(rows pgx.Rows) ([]Record, error) {
	records := []Record{}

	for rows.Next() {
		var rec Record

		err := rows.Scan(
			append(baseFields(&rec), &rec.CompanyName, &rec.ContactPerson, &rec.LicenseKey, &rec.LicenseType)...,
		)

		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}
