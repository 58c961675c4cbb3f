package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
		{"not found", ErrNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("get camp: %w", ErrNotFound), KindNotFound},
		{"conflict", ErrMonikerInUse, KindConflict},
		{"invalid", ErrSpeakerRequired, KindInvalid},
		{"commit", fmt.Errorf("insert talk: %w", ErrCommitFailed), KindCommit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("pq: duplicate key")
	err := &Error{Kind: KindConflict, Message: "Moniker already in use.", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrMonikerInUse)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Moniker already in use.: pq: duplicate key", err.Error())
	assert.Equal(t, "Moniker already in use.", MessageOf(fmt.Errorf("create: %w", err)))
	assert.Empty(t, MessageOf(cause))
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "internal", Kind(99).String())
}

func TestEventDay(t *testing.T) {
	eastern := time.FixedZone("EST", -5*3600)
	tests := []struct {
		name string
		in   time.Time
	}{
		{"utc midnight", time.Date(2018, 10, 18, 0, 0, 0, 0, time.UTC)},
		{"utc late", time.Date(2018, 10, 18, 23, 59, 0, 0, time.UTC)},
		{"calendar day of a zoned time", time.Date(2018, 10, 18, 22, 0, 0, 0, eastern)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := EventDay(tt.in)
			assert.Equal(t, time.Date(2018, 10, 18, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2018, 10, 19, 0, 0, 0, 0, time.UTC), end)
		})
	}
}

func TestCheckMoniker(t *testing.T) {
	tests := []struct {
		moniker string
		wantErr bool
	}{
		{"ATL2018", false},
		{"SEARCH", false},
		{"searches", false},
		{"", true},
		{"  ", true},
		{"a/b", true},
		{"a?b", true},
		{"a#b", true},
		{".", true},
		{"..", true},
		{"search", true},
	}
	for _, tt := range tests {
		t.Run(tt.moniker, func(t *testing.T) {
			err := CheckMoniker(tt.moniker)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMoniker)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCamp_Overwrite(t *testing.T) {
	c := &Camp{ID: 7, Moniker: "ATL2018", Name: "Old", Talks: []*Talk{{ID: 1}}}
	src := &Camp{ID: 99, Moniker: "OTHER", Name: "New", Length: 2, Location: Location{Venue: "Hall"}}

	c.Overwrite(src)

	assert.Equal(t, 7, c.ID)
	assert.Equal(t, "ATL2018", c.Moniker)
	assert.Equal(t, "New", c.Name)
	assert.Equal(t, 2, c.Length)
	assert.Equal(t, "Hall", c.Location.Venue)
	assert.Len(t, c.Talks, 1)
}
