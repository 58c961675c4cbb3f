package domain

import (
	"context"
	"strings"
	"time"
)

// Location is the venue and postal address of a camp.
type Location struct {
	Venue         string `json:"venue"`
	Address1      string `json:"address1"`
	Address2      string `json:"address2"`
	Address3      string `json:"address3"`
	CityTown      string `json:"city_town"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Camp is a code camp event identified externally by its moniker.
type Camp struct {
	ID        int       `json:"id"`
	Moniker   string    `json:"moniker"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
	Length    int       `json:"length"`
	Location  Location  `json:"location"`
	Talks     []*Talk   `json:"talks,omitempty"`
}

// NewCamp returns a new Camp. ID is set by the repository on create.
func NewCamp(moniker, name string, eventDate time.Time, length int, location Location) *Camp {
	return &Camp{
		Moniker:   moniker,
		Name:      name,
		EventDate: eventDate,
		Length:    length,
		Location:  location,
	}
}

// EventDay returns the UTC bounds [start, end) of the calendar day of t.
// Camps are matched by date when start <= EventDate < end.
func EventDay(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// reservedMonikers are path segments routed to fixed handlers under /api/camps,
// plus the dot segments that path cleaning rewrites.
var reservedMonikers = map[string]struct{}{
	".":      {},
	"..":     {},
	"search": {},
}

// CheckMoniker reports ErrInvalidMoniker when moniker cannot address its camp as a
// single path segment under /api/camps.
func CheckMoniker(moniker string) error {
	if strings.TrimSpace(moniker) == "" || strings.ContainsAny(moniker, "/?#\\") {
		return ErrInvalidMoniker
	}
	if _, ok := reservedMonikers[moniker]; ok {
		return ErrInvalidMoniker
	}
	return nil
}

// Overwrite copies the mutable fields of src onto c. ID, Moniker and Talks are kept.
func (c *Camp) Overwrite(src *Camp) {
	c.Name = src.Name
	c.EventDate = src.EventDate
	c.Length = src.Length
	c.Location = src.Location
}

// CampRepository defines storage for camps. Write methods commit immediately
// and return ErrCommitFailed when nothing was persisted.
type CampRepository interface {
	List(ctx context.Context) ([]*Camp, error)
	ListByEventDate(ctx context.Context, date time.Time) ([]*Camp, error)
	GetByMoniker(ctx context.Context, moniker string) (*Camp, error)
	Create(ctx context.Context, camp *Camp) error
	Update(ctx context.Context, camp *Camp) error
	Delete(ctx context.Context, moniker string) error
}

// CampService defines the business logic for camps.
type CampService interface {
	ListCamps(ctx context.Context, includeTalks bool) ([]*Camp, error)
	GetCamp(ctx context.Context, moniker string, includeTalks bool) (*Camp, error)
	SearchByEventDate(ctx context.Context, date time.Time, includeTalks bool) ([]*Camp, error)
	CreateCamp(ctx context.Context, camp *Camp) error
	UpdateCamp(ctx context.Context, moniker string, changes *Camp) (*Camp, error)
	DeleteCamp(ctx context.Context, moniker string) error
}
