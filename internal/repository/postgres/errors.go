package postgres

import (
	"errors"
	"fmt"
	"math"

	"codecamp/internal/domain"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes inspected by the repositories.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// storedID reports whether id fits the SERIAL id columns. Other ids cannot exist
// and Postgres rejects them with 22003 instead of matching no rows.
func storedID(id int) bool {
	return id > 0 && id <= math.MaxInt32
}

type scanner interface {
	Scan(dest ...any) error
}

// translateWriteError maps constraint violations on insert/update to domain errors.
// Any other error is returned unchanged.
func translateWriteError(err error, unique *domain.Error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case pgUniqueViolation:
		if unique != nil {
			return &domain.Error{Kind: unique.Kind, Message: unique.Message, Err: err}
		}
	case pgForeignKeyViolation:
		return &domain.Error{Kind: domain.KindCommit, Message: domain.ErrCommitFailed.Message, Err: err}
	}
	return err
}

// requireAffected returns ErrCommitFailed when a write touched no rows.
func requireAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCommitFailed
	}
	return nil
}
