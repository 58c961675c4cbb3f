package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecamp/internal/domain"
)

type campService struct {
	campRepo       domain.CampRepository
	talkRepo       domain.TalkRepository
	contextTimeout time.Duration
}

func NewCampService(campRepo domain.CampRepository, talkRepo domain.TalkRepository, timeout time.Duration) domain.CampService {
	return &campService{
		campRepo:       campRepo,
		talkRepo:       talkRepo,
		contextTimeout: timeout,
	}
}

func (s *campService) ListCamps(ctx context.Context, includeTalks bool) ([]*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camps, err := s.campRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list camps: %w", err)
	}
	if camps == nil {
		camps = []*domain.Camp{}
	}
	if includeTalks {
		if err := s.attachTalks(ctx, camps); err != nil {
			return nil, err
		}
	}
	return camps, nil
}

func (s *campService) GetCamp(ctx context.Context, moniker string, includeTalks bool) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.campRepo.GetByMoniker(ctx, moniker)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get camp: %w", err)
	}
	if includeTalks {
		if err := s.attachTalks(ctx, []*domain.Camp{camp}); err != nil {
			return nil, err
		}
	}
	return camp, nil
}

// SearchByEventDate returns ErrNotFound when no camp starts on the given day.
func (s *campService) SearchByEventDate(ctx context.Context, date time.Time, includeTalks bool) ([]*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camps, err := s.campRepo.ListByEventDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list camps by event date: %w", err)
	}
	if len(camps) == 0 {
		return nil, domain.ErrNotFound
	}
	if includeTalks {
		if err := s.attachTalks(ctx, camps); err != nil {
			return nil, err
		}
	}
	return camps, nil
}

// CreateCamp inserts camp after checking that its moniker is free and addressable.
// The store's unique constraint still reports ErrMonikerInUse if a concurrent create wins.
func (s *campService) CreateCamp(ctx context.Context, camp *domain.Camp) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	_, err := s.campRepo.GetByMoniker(ctx, camp.Moniker)
	switch {
	case err == nil:
		return domain.ErrMonikerInUse
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("check moniker: %w", err)
	}
	if err := domain.CheckMoniker(camp.Moniker); err != nil {
		return err
	}

	if err := s.campRepo.Create(ctx, camp); err != nil {
		return fmt.Errorf("create camp: %w", err)
	}
	return nil
}

func (s *campService) UpdateCamp(ctx context.Context, moniker string, changes *domain.Camp) (*domain.Camp, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.campRepo.GetByMoniker(ctx, moniker)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get camp: %w", err)
	}
	camp.Overwrite(changes)
	if err := s.campRepo.Update(ctx, camp); err != nil {
		return nil, fmt.Errorf("update camp: %w", err)
	}
	return camp, nil
}

func (s *campService) DeleteCamp(ctx context.Context, moniker string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.campRepo.GetByMoniker(ctx, moniker); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get camp: %w", err)
	}
	if err := s.campRepo.Delete(ctx, moniker); err != nil {
		return fmt.Errorf("delete camp: %w", err)
	}
	return nil
}

// attachTalks loads the talks of all camps in one query and sets Camp.Talks.
func (s *campService) attachTalks(ctx context.Context, camps []*domain.Camp) error {
	if len(camps) == 0 {
		return nil
	}
	ids := make([]int, len(camps))
	byID := make(map[int]*domain.Camp, len(camps))
	for i, c := range camps {
		ids[i] = c.ID
		byID[c.ID] = c
		c.Talks = []*domain.Talk{}
	}
	talks, err := s.talkRepo.ListByCampIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("list talks: %w", err)
	}
	for _, t := range talks {
		if c, ok := byID[t.CampID]; ok {
			c.Talks = append(c.Talks, t)
		}
	}
	return nil
}
