package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCampService is an in-memory domain.CampService keyed by moniker.
type fakeCampService struct {
	camps  map[string]*domain.Camp
	talks  map[string][]*domain.Talk
	nextID int
	err    error // returned by every method when set

	lastIncludeTalks bool
}

func newFakeCampService(camps ...*domain.Camp) *fakeCampService {
	f := &fakeCampService{camps: map[string]*domain.Camp{}, talks: map[string][]*domain.Talk{}}
	for _, c := range camps {
		f.nextID++
		c.ID = f.nextID
		f.camps[c.Moniker] = c
	}
	return f
}

func (f *fakeCampService) withTalks(c *domain.Camp, include bool) *domain.Camp {
	out := *c
	out.Talks = nil
	if include {
		out.Talks = append([]*domain.Talk{}, f.talks[c.Moniker]...)
	}
	return &out
}

func (f *fakeCampService) ListCamps(_ context.Context, includeTalks bool) ([]*domain.Camp, error) {
	f.lastIncludeTalks = includeTalks
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Camp, 0, len(f.camps))
	for _, c := range f.camps {
		out = append(out, f.withTalks(c, includeTalks))
	}
	return out, nil
}

func (f *fakeCampService) GetCamp(_ context.Context, moniker string, includeTalks bool) (*domain.Camp, error) {
	f.lastIncludeTalks = includeTalks
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.camps[moniker]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f.withTalks(c, includeTalks), nil
}

func (f *fakeCampService) SearchByEventDate(_ context.Context, date time.Time, includeTalks bool) ([]*domain.Camp, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Camp
	for _, c := range f.camps {
		if onEventDay(c, date) {
			out = append(out, f.withTalks(c, includeTalks))
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (f *fakeCampService) CreateCamp(_ context.Context, camp *domain.Camp) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.camps[camp.Moniker]; ok {
		return domain.ErrMonikerInUse
	}
	if err := domain.CheckMoniker(camp.Moniker); err != nil {
		return err
	}
	f.nextID++
	camp.ID = f.nextID
	stored := *camp
	f.camps[camp.Moniker] = &stored
	return nil
}

func (f *fakeCampService) UpdateCamp(_ context.Context, moniker string, changes *domain.Camp) (*domain.Camp, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.camps[moniker]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Overwrite(changes)
	return f.withTalks(c, false), nil
}

func (f *fakeCampService) DeleteCamp(_ context.Context, moniker string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.camps[moniker]; !ok {
		return domain.ErrNotFound
	}
	delete(f.camps, moniker)
	return nil
}

// fakeTalkService is an in-memory domain.TalkService. Camps are known by moniker only.
type fakeTalkService struct {
	camps    map[string]bool
	talks    map[int]*domain.Talk
	campOf   map[int]string
	speakers map[int]*domain.Speaker
	nextID   int
	err      error
}

func newFakeTalkService(monikers []string, speakers ...*domain.Speaker) *fakeTalkService {
	f := &fakeTalkService{
		camps:    map[string]bool{},
		talks:    map[int]*domain.Talk{},
		campOf:   map[int]string{},
		speakers: map[int]*domain.Speaker{},
	}
	for _, m := range monikers {
		f.camps[m] = true
	}
	for _, s := range speakers {
		f.speakers[s.ID] = s
	}
	return f
}

func (f *fakeTalkService) ListTalks(_ context.Context, moniker string) ([]*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Talk{}
	for id := 1; id <= f.nextID; id++ {
		if t, ok := f.talks[id]; ok && f.campOf[id] == moniker {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTalkService) GetTalk(_ context.Context, moniker string, talkID int) (*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.talks[talkID]
	if !ok || f.campOf[talkID] != moniker {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeTalkService) CreateTalk(_ context.Context, moniker string, talk *domain.Talk, speakerID *int) error {
	if f.err != nil {
		return f.err
	}
	if !f.camps[moniker] {
		return domain.ErrCampNotExist
	}
	if speakerID == nil {
		return domain.ErrSpeakerRequired
	}
	s, ok := f.speakers[*speakerID]
	if !ok {
		return domain.ErrSpeakerNotFound
	}
	f.nextID++
	talk.ID = f.nextID
	talk.Speaker = s
	f.talks[talk.ID] = talk
	f.campOf[talk.ID] = moniker
	return nil
}

func (f *fakeTalkService) UpdateTalk(ctx context.Context, moniker string, talkID int, upd domain.TalkUpdate) (*domain.Talk, error) {
	t, err := f.GetTalk(ctx, moniker, talkID)
	if err != nil {
		return nil, err
	}
	t.Title, t.Abstract, t.Level = upd.Title, upd.Abstract, upd.Level
	if upd.SpeakerID != nil {
		if s, ok := f.speakers[*upd.SpeakerID]; ok {
			t.Speaker = s
		}
	}
	return t, nil
}

func (f *fakeTalkService) DeleteTalk(ctx context.Context, moniker string, talkID int) error {
	if _, err := f.GetTalk(ctx, moniker, talkID); err != nil {
		return err
	}
	delete(f.talks, talkID)
	delete(f.campOf, talkID)
	return nil
}

type fakeSpeakerService struct {
	speakers []*domain.Speaker
	err      error
}

func (f *fakeSpeakerService) ListSpeakers(context.Context) ([]*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.speakers, nil
}

func (f *fakeSpeakerService) GetSpeaker(_ context.Context, id int) (*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.speakers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func atlCamp() *domain.Camp {
	return domain.NewCamp("ATL2018", "Atlanta Code Camp", time.Date(2018, 10, 18, 0, 0, 0, 0, time.UTC), 1, domain.Location{
		Venue:         "Atlanta Convention Center",
		Address1:      "123 Main Street",
		CityTown:      "Atlanta",
		StateProvince: "GA",
		PostalCode:    "12345",
		Country:       "USA",
	})
}

func shawn() *domain.Speaker {
	return &domain.Speaker{ID: 1, FirstName: "Shawn", LastName: "Wildermuth", Company: "Wilder Minds LLC", GitHub: "shawnwildermuth"}
}

func resa() *domain.Speaker {
	return &domain.Speaker{ID: 2, FirstName: "Resa", LastName: "Wildermuth", Company: "Wilder Minds LLC"}
}

// do calls h with a request built from method, target, body and path values.
func do(t *testing.T, h http.HandlerFunc, method, target string, body any, pathValues map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, buf)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// decodeData decodes the envelope of rec, unmarshalling data into dest when dest is non-nil.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) *helpers.APIError {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	if dest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env.Error
}

// onEventDay matches the store's UTC day bounds.
func onEventDay(c *domain.Camp, date time.Time) bool {
	start, end := domain.EventDay(date)
	return !c.EventDate.Before(start) && c.EventDate.Before(end)
}
