package services

import (
	"context"
	"sort"
	"time"

	"codecamp/internal/domain"
)

// fakeCampRepo is an in-memory CampRepository for tests.
type fakeCampRepo struct {
	byMoniker map[string]*domain.Camp
	nextID    int
	err       error // if set, every method returns this error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeCampRepo(camps ...*domain.Camp) *fakeCampRepo {
	f := &fakeCampRepo{byMoniker: make(map[string]*domain.Camp), nextID: 1}
	for _, c := range camps {
		if c.ID == 0 {
			c.ID = f.nextID
		}
		if c.ID >= f.nextID {
			f.nextID = c.ID + 1
		}
		f.byMoniker[c.Moniker] = c
	}
	return f
}

func (f *fakeCampRepo) sorted() []*domain.Camp {
	out := make([]*domain.Camp, 0, len(f.byMoniker))
	for _, c := range f.byMoniker {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCampRepo) List(ctx context.Context) ([]*domain.Camp, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeCampRepo) ListByEventDate(ctx context.Context, date time.Time) ([]*domain.Camp, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Camp
	for _, c := range f.sorted() {
		if onEventDay(c, date) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCampRepo) GetByMoniker(ctx context.Context, moniker string) (*domain.Camp, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byMoniker[moniker]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampRepo) Create(ctx context.Context, c *domain.Camp) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byMoniker[c.Moniker]; ok {
		return domain.ErrMonikerInUse
	}
	c.ID = f.nextID
	f.nextID++
	f.byMoniker[c.Moniker] = c
	return nil
}

func (f *fakeCampRepo) Update(ctx context.Context, c *domain.Camp) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byMoniker[c.Moniker] = c
	return nil
}

func (f *fakeCampRepo) Delete(ctx context.Context, moniker string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byMoniker[moniker]; !ok {
		return domain.ErrCommitFailed
	}
	delete(f.byMoniker, moniker)
	return nil
}

// fakeTalkRepo is an in-memory TalkRepository. It resolves monikers through camps.
type fakeTalkRepo struct {
	camps     *fakeCampRepo
	byID      map[int]*domain.Talk
	nextID    int
	err       error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeTalkRepo(camps *fakeCampRepo, talks ...*domain.Talk) *fakeTalkRepo {
	f := &fakeTalkRepo{camps: camps, byID: make(map[int]*domain.Talk), nextID: 1}
	for _, t := range talks {
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTalkRepo) campID(moniker string) (int, bool) {
	c, ok := f.camps.byMoniker[moniker]
	if !ok {
		return 0, false
	}
	return c.ID, true
}

func (f *fakeTalkRepo) sorted() []*domain.Talk {
	out := make([]*domain.Talk, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeTalkRepo) ListByMoniker(ctx context.Context, moniker string) ([]*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.campID(moniker)
	if !ok {
		return nil, nil
	}
	var out []*domain.Talk
	for _, t := range f.sorted() {
		if t.CampID == id {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTalkRepo) ListByCampIDs(ctx context.Context, campIDs []int) ([]*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int]bool, len(campIDs))
	for _, id := range campIDs {
		want[id] = true
	}
	out := []*domain.Talk{}
	for _, t := range f.sorted() {
		if want[t.CampID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTalkRepo) GetByMoniker(ctx context.Context, moniker string, talkID int) (*domain.Talk, error) {
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.campID(moniker)
	t, found := f.byID[talkID]
	if !ok || !found || t.CampID != id {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeTalkRepo) Create(ctx context.Context, t *domain.Talk) error {
	if f.createErr != nil {
		return f.createErr
	}
	t.ID = f.nextID
	f.nextID++
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTalkRepo) Update(ctx context.Context, t *domain.Talk) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTalkRepo) Delete(ctx context.Context, talkID int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[talkID]; !ok {
		return domain.ErrCommitFailed
	}
	delete(f.byID, talkID)
	return nil
}

// fakeSpeakerRepo is an in-memory SpeakerRepository.
type fakeSpeakerRepo struct {
	byID map[int]*domain.Speaker
	err  error
}

func newFakeSpeakerRepo(speakers ...*domain.Speaker) *fakeSpeakerRepo {
	f := &fakeSpeakerRepo{byID: make(map[int]*domain.Speaker)}
	for _, s := range speakers {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSpeakerRepo) List(ctx context.Context) ([]*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Speaker, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSpeakerRepo) GetByID(ctx context.Context, id int) (*domain.Speaker, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

var atlDate = time.Date(2018, 10, 18, 9, 0, 0, 0, time.UTC)

func atlCamp() *domain.Camp {
	return &domain.Camp{ID: 1, Moniker: "ATL2018", Name: "Atlanta Code Camp", EventDate: atlDate, Length: 1,
		Location: domain.Location{Venue: "Atlanta Convention Center", CityTown: "Atlanta"}}
}

func shawn() *domain.Speaker {
	return &domain.Speaker{ID: 1, FirstName: "Shawn", LastName: "Wildermuth"}
}

func resa() *domain.Speaker {
	return &domain.Speaker{ID: 2, FirstName: "Resa", LastName: "Wildermuth"}
}

func intPtr(i int) *int { return &i }

// onEventDay matches the store's UTC day bounds.
func onEventDay(c *domain.Camp, date time.Time) bool {
	start, end := domain.EventDay(date)
	return !c.EventDate.Before(start) && c.EventDate.Before(end)
}
