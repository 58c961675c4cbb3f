package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"codecamp/internal/domain"
)

const campColumns = `id, moniker, name, event_date, length, venue, address1, address2, address3,
		city_town, state_province, postal_code, country`

type campRepository struct {
	DB *sql.DB
}

// NewCampRepository returns a domain.CampRepository implemented with Postgres.
func NewCampRepository(db *sql.DB) domain.CampRepository {
	return &campRepository{DB: db}
}

func scanCamp(s scanner) (*domain.Camp, error) {
	c := &domain.Camp{}
	err := s.Scan(
		&c.ID, &c.Moniker, &c.Name, &c.EventDate, &c.Length,
		&c.Location.Venue, &c.Location.Address1, &c.Location.Address2, &c.Location.Address3,
		&c.Location.CityTown, &c.Location.StateProvince, &c.Location.PostalCode, &c.Location.Country,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *campRepository) queryCamps(ctx context.Context, query string, args ...any) ([]*domain.Camp, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	camps := make([]*domain.Camp, 0)
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}

func (r *campRepository) List(ctx context.Context) ([]*domain.Camp, error) {
	query := `
		SELECT ` + campColumns + `
		FROM camps
		ORDER BY event_date DESC, id
	`
	return r.queryCamps(ctx, query)
}

// ListByEventDate returns camps whose event date falls on the calendar day of date (UTC).
func (r *campRepository) ListByEventDate(ctx context.Context, date time.Time) ([]*domain.Camp, error) {
	start, end := domain.EventDay(date)
	query := `
		SELECT ` + campColumns + `
		FROM camps
		WHERE event_date >= $1 AND event_date < $2
		ORDER BY event_date DESC, id
	`
	return r.queryCamps(ctx, query, start, end)
}

func (r *campRepository) GetByMoniker(ctx context.Context, moniker string) (*domain.Camp, error) {
	query := `
		SELECT ` + campColumns + `
		FROM camps
		WHERE moniker = $1
	`
	c, err := scanCamp(r.DB.QueryRowContext(ctx, query, moniker))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *campRepository) Create(ctx context.Context, c *domain.Camp) error {
	query := `
		INSERT INTO camps (moniker, name, event_date, length, venue, address1, address2, address3,
			city_town, state_province, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	l := c.Location
	err := r.DB.QueryRowContext(ctx, query,
		c.Moniker, c.Name, c.EventDate, c.Length,
		l.Venue, l.Address1, l.Address2, l.Address3, l.CityTown, l.StateProvince, l.PostalCode, l.Country,
	).Scan(&c.ID)
	if err != nil {
		return translateWriteError(err, domain.ErrMonikerInUse)
	}
	return nil
}

func (r *campRepository) Update(ctx context.Context, c *domain.Camp) error {
	query := `
		UPDATE camps SET name = $1, event_date = $2, length = $3, venue = $4, address1 = $5,
			address2 = $6, address3 = $7, city_town = $8, state_province = $9, postal_code = $10, country = $11
		WHERE id = $12
	`
	l := c.Location
	res, err := r.DB.ExecContext(ctx, query,
		c.Name, c.EventDate, c.Length,
		l.Venue, l.Address1, l.Address2, l.Address3, l.CityTown, l.StateProvince, l.PostalCode, l.Country,
		c.ID,
	)
	if err != nil {
		return translateWriteError(err, nil)
	}
	return requireAffected(res)
}

func (r *campRepository) Delete(ctx context.Context, moniker string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM camps WHERE moniker = $1`, moniker)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
