package postgres

import (
	"context"
	"database/sql"
	"errors"

	"codecamp/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT id, first_name, middle_name, last_name, blog_url, company, company_url, github, twitter
		FROM speakers
		ORDER BY last_name, first_name, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.MiddleName, &s.LastName, &s.BlogURL, &s.Company, &s.CompanyURL, &s.GitHub, &s.Twitter); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}

func (r *speakerRepository) GetByID(ctx context.Context, id int) (*domain.Speaker, error) {
	if !storedID(id) {
		return nil, domain.ErrNotFound
	}
	query := `
		SELECT id, first_name, middle_name, last_name, blog_url, company, company_url, github, twitter
		FROM speakers
		WHERE id = $1
	`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.FirstName, &s.MiddleName, &s.LastName, &s.BlogURL, &s.Company, &s.CompanyURL, &s.GitHub, &s.Twitter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
