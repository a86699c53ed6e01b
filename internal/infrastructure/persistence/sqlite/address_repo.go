package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
)

const addressColumns = `id, name, organization, postal_code, province, city,
	district, street, country, phone, email, created_at`

type addressRepo struct {
	db *sql.DB
}

// NewAddressRepository creates a new SQLite-backed address repository.
func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepo{db: db}
}

func (r *addressRepo) Save(ctx context.Context, a *entity.Address) error {
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO autofill_addresses
			(name, organization, postal_code, province, city, district, street, country, phone, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.Organization, a.PostalCode, a.Province, a.City,
		a.District, a.Street, a.Country, a.Phone, a.Email, created.Unix())
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read address id: %w", err)
	}
	a.ID = entity.AddressID(id)
	a.CreatedAt = time.Unix(created.Unix(), 0)
	return nil
}

func (r *addressRepo) Get(ctx context.Context, id entity.AddressID) (*entity.Address, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM autofill_addresses WHERE id = ?`, int64(id))

	a, err := scanAddress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query address %d: %w", id, err)
	}
	return a, nil
}

func (r *addressRepo) GetAll(ctx context.Context) ([]*entity.Address, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM autofill_addresses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *addressRepo) Delete(ctx context.Context, id entity.AddressID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM autofill_addresses WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

func scanAddress(s scanner) (*entity.Address, error) {
	var (
		a       entity.Address
		id      int64
		created int64
	)
	err := s.Scan(&id, &a.Name, &a.Organization, &a.PostalCode, &a.Province, &a.City,
		&a.District, &a.Street, &a.Country, &a.Phone, &a.Email, &created)
	if err != nil {
		return nil, err
	}
	a.ID = entity.AddressID(id)
	a.CreatedAt = time.Unix(created, 0)
	return &a, nil
}
