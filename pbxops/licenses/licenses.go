package licenses

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/errors"
)

// creates a new license repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all licenses, newest first
func (r *Repository) List(ctx context.Context) ([]License, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLicenses(rows)
}

// lists the licenses registered to one customer
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]License, error) {
	rows, err := r.db.Query(ctx, queryListByCustomer, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLicenses(rows)
}

// finds a license by id
func (r *Repository) FindByID(ctx context.Context, id string) (*License, error) {
	license, err := scanLicense(r.db.QueryRow(ctx, queryFindByID, id))
	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return license, nil
}

// creates a license record
func (r *Repository) Create(ctx context.Context, p *Params) (*License, error) {
	license, err := scanLicense(r.db.QueryRow(
		ctx,
		queryCreate,
		p.CustomerID,
		p.LicenseKey,
		p.LicenseType,
		p.SimCalls,
		p.ExpiresAt,
	))

	if err != nil {
		if errors.IsUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return license, nil
}

// updates a license record
func (r *Repository) Update(ctx context.Context, id string, p *Params) (*License, error) {
	license, err := scanLicense(r.db.QueryRow(
		ctx,
		queryUpdate,
		p.CustomerID,
		p.LicenseKey,
		p.LicenseType,
		p.SimCalls,
		p.ExpiresAt,
		id,
	))

	if err != nil {
		switch {
		case errors.IsNoRows(err):
			return nil, ErrNotFound
		case errors.IsUniqueViolation(err):
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	return license, nil
}

// deletes a license record
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

func scanLicense(row pgx.Row) (*License, error) {
	var l License

	err := row.Scan(
		&l.ID,
		&l.CustomerID,
		&l.LicenseKey,
		&l.LicenseType,
		&l.SimCalls,
		&l.ExpiresAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &l, nil
}

func scanLicenses(rows pgx.Rows) ([]License, error) {
	licenses := []License{}

	for rows.Next() {
		var l License

		err := rows.Scan(
			&l.ID,
			&l.CustomerID,
			&l.LicenseKey,
			&l.LicenseType,
			&l.SimCalls,
			&l.ExpiresAt,
			&l.CreatedAt,
			&l.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		licenses = append(licenses, l)
	}

	return licenses, rows.Err()
}
