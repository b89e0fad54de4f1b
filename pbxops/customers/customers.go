package customers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pbxops/server/internal/errors"
)

// creates a new customer repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all customers, newest first
func (r *Repository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// finds a customer by id
func (r *Repository) FindByID(ctx context.Context, id string) (*Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(ctx, queryFindByID, id))
	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return customer, nil
}

// creates a customer record
func (r *Repository) Create(ctx context.Context, p *Params) (*Customer, error) {
	return scanCustomer(r.db.QueryRow(
		ctx,
		queryCreate,
		p.CompanyName,
		p.ContactPerson,
		p.Email,
		p.Phone,
		p.PBXURL,
		p.Notes,
	))
}

// updates a customer record
func (r *Repository) Update(ctx context.Context, id string, p *Params) (*Customer, error) {
	customer, err := scanCustomer(r.db.QueryRow(
		ctx,
		queryUpdate,
		p.CompanyName,
		p.ContactPerson,
		p.Email,
		p.Phone,
		p.PBXURL,
		p.Notes,
		id,
	))

	if err != nil {
		if errors.IsNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return customer, nil
}

// deletes a customer record
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

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer

	err := row.Scan(
		&c.ID,
		&c.CompanyName,
		&c.ContactPerson,
		&c.Email,
		&c.Phone,
		&c.PBXURL,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]Customer, error) {
	customers := []Customer{}

	for rows.Next() {
		var c Customer

		err := rows.Scan(
			&c.ID,
			&c.CompanyName,
			&c.ContactPerson,
			&c.Email,
			&c.Phone,
			&c.PBXURL,
			&c.Notes,
			&c.CreatedAt,
			&c.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}
