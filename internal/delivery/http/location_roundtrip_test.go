package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"codecamp/internal/delivery/http/controllers"
	"codecamp/internal/domain"
	"codecamp/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCampStore is an in-memory domain.CampRepository.
type memCampStore struct {
	mu     sync.Mutex
	camps  map[string]*domain.Camp
	nextID int
}

func newMemCampStore() *memCampStore {
	return &memCampStore{camps: map[string]*domain.Camp{}}
}

func (m *memCampStore) List(context.Context) ([]*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Camp, 0, len(m.camps))
	for _, c := range m.camps {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCampStore) ListByEventDate(_ context.Context, date time.Time) ([]*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start, end := domain.EventDay(date)
	var out []*domain.Camp
	for _, c := range m.camps {
		if !c.EventDate.Before(start) && c.EventDate.Before(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCampStore) GetByMoniker(_ context.Context, moniker string) (*domain.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.camps[moniker]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCampStore) Create(_ context.Context, c *domain.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.camps[c.Moniker]; ok {
		return domain.ErrMonikerInUse
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.camps[c.Moniker] = &cp
	return nil
}

func (m *memCampStore) Update(_ context.Context, c *domain.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.camps[c.Moniker] = &cp
	return nil
}

func (m *memCampStore) Delete(_ context.Context, moniker string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.camps, moniker)
	return nil
}

// campTalkRepo is a domain.TalkRepository for camps that have no talks.
type campTalkRepo struct{}

func (campTalkRepo) ListByMoniker(context.Context, string) ([]*domain.Talk, error) {
	return []*domain.Talk{}, nil
}

func (campTalkRepo) ListByCampIDs(context.Context, []int) ([]*domain.Talk, error) {
	return []*domain.Talk{}, nil
}

func (campTalkRepo) GetByMoniker(context.Context, string, int) (*domain.Talk, error) {
	return nil, domain.ErrNotFound
}

func (campTalkRepo) Create(context.Context, *domain.Talk) error { return domain.ErrCommitFailed }

func (campTalkRepo) Update(context.Context, *domain.Talk) error { return domain.ErrCommitFailed }

func (campTalkRepo) Delete(context.Context, int) error { return domain.ErrNotFound }

func TestRouter_CreatedCampLocationResolves(t *testing.T) {
	tests := []struct {
		name       string
		moniker    string
		wantStatus int
	}{
		{"plain moniker", "ATL2018", http.StatusCreated},
		{"escaped moniker", "ATL 2018", http.StatusCreated},
		{"search route", "search", http.StatusBadRequest},
		{"dot", ".", http.StatusBadRequest},
		{"dot dot", "..", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemCampStore()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			rec := &routeRecorder{}
			router := NewRouter(logger, Controllers{
				Camps:    controllers.NewCampController(logger, services.NewCampService(store, campTalkRepo{}, time.Second)),
				Talks:    controllers.NewTalkController(logger, rec),
				Speakers: controllers.NewSpeakerController(logger, rec),
			}, nil)

			body := `{"name":"Code Camp","moniker":` + mustJSON(t, tt.moniker) + `}`
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/camps", strings.NewReader(body)))
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus != http.StatusCreated {
				assert.Contains(t, rr.Body.String(), "Could not use current moniker.")
				assert.Empty(t, rr.Header().Get("Location"))
				assert.Empty(t, store.camps)
				return
			}

			location := rr.Header().Get("Location")
			require.NotEmpty(t, location)
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, location, nil))
			require.Equal(t, http.StatusOK, rr.Code)
			var env struct {
				Data controllers.CampModel `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
			assert.Equal(t, tt.moniker, env.Data.Moniker)
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
