package postgres

import (
	"context"
	"database/sql"
	"errors"

	"codecamp/internal/domain"

	"github.com/lib/pq"
)

// talkSelect joins each talk with its speaker and parent camp.
const talkSelect = `
		SELECT t.id, t.camp_id, t.title, t.abstract, t.level,
			s.id, s.first_name, s.middle_name, s.last_name, s.blog_url, s.company, s.company_url, s.github, s.twitter
		FROM talks t
		JOIN camps c ON c.id = t.camp_id
		JOIN speakers s ON s.id = t.speaker_id
`

type talkRepository struct {
	DB *sql.DB
}

// NewTalkRepository returns a domain.TalkRepository implemented with Postgres.
func NewTalkRepository(db *sql.DB) domain.TalkRepository {
	return &talkRepository{DB: db}
}

func scanTalk(sc scanner) (*domain.Talk, error) {
	t := &domain.Talk{Speaker: &domain.Speaker{}}
	s := t.Speaker
	err := sc.Scan(
		&t.ID, &t.CampID, &t.Title, &t.Abstract, &t.Level,
		&s.ID, &s.FirstName, &s.MiddleName, &s.LastName, &s.BlogURL, &s.Company, &s.CompanyURL, &s.GitHub, &s.Twitter,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *talkRepository) queryTalks(ctx context.Context, query string, args ...any) ([]*domain.Talk, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	talks := make([]*domain.Talk, 0)
	for rows.Next() {
		t, err := scanTalk(rows)
		if err != nil {
			return nil, err
		}
		talks = append(talks, t)
	}
	return talks, rows.Err()
}

func (r *talkRepository) ListByMoniker(ctx context.Context, moniker string) ([]*domain.Talk, error) {
	return r.queryTalks(ctx, talkSelect+`
		WHERE c.moniker = $1
		ORDER BY t.id
	`, moniker)
}

func (r *talkRepository) ListByCampIDs(ctx context.Context, campIDs []int) ([]*domain.Talk, error) {
	if len(campIDs) == 0 {
		return []*domain.Talk{}, nil
	}
	ids := make([]int64, len(campIDs))
	for i, id := range campIDs {
		ids[i] = int64(id)
	}
	return r.queryTalks(ctx, talkSelect+`
		WHERE t.camp_id = ANY($1)
		ORDER BY t.camp_id, t.id
	`, pq.Array(ids))
}

func (r *talkRepository) GetByMoniker(ctx context.Context, moniker string, talkID int) (*domain.Talk, error) {
	if !storedID(talkID) {
		return nil, domain.ErrNotFound
	}
	t, err := scanTalk(r.DB.QueryRowContext(ctx, talkSelect+`
		WHERE c.moniker = $1 AND t.id = $2
	`, moniker, talkID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *talkRepository) Create(ctx context.Context, t *domain.Talk) error {
	if t.Speaker == nil {
		return domain.ErrSpeakerRequired
	}
	query := `
		INSERT INTO talks (camp_id, speaker_id, title, abstract, level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, t.CampID, t.Speaker.ID, t.Title, t.Abstract, t.Level).Scan(&t.ID); err != nil {
		return translateWriteError(err, nil)
	}
	return nil
}

func (r *talkRepository) Update(ctx context.Context, t *domain.Talk) error {
	if t.Speaker == nil {
		return domain.ErrSpeakerRequired
	}
	query := `
		UPDATE talks SET title = $1, abstract = $2, level = $3, speaker_id = $4
		WHERE id = $5
	`
	res, err := r.DB.ExecContext(ctx, query, t.Title, t.Abstract, t.Level, t.Speaker.ID, t.ID)
	if err != nil {
		return translateWriteError(err, nil)
	}
	return requireAffected(res)
}

func (r *talkRepository) Delete(ctx context.Context, talkID int) error {
	if !storedID(talkID) {
		return domain.ErrNotFound
	}
	res, err := r.DB.ExecContext(ctx, `DELETE FROM talks WHERE id = $1`, talkID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
