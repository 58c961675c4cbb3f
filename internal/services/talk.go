package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codecamp/internal/domain"
)

type talkService struct {
	campRepo       domain.CampRepository
	talkRepo       domain.TalkRepository
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

func NewTalkService(campRepo domain.CampRepository, talkRepo domain.TalkRepository, speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.TalkService {
	return &talkService{
		campRepo:       campRepo,
		talkRepo:       talkRepo,
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *talkService) ListTalks(ctx context.Context, moniker string) ([]*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	talks, err := s.talkRepo.ListByMoniker(ctx, moniker)
	if err != nil {
		return nil, fmt.Errorf("list talks: %w", err)
	}
	if talks == nil {
		talks = []*domain.Talk{}
	}
	return talks, nil
}

func (s *talkService) GetTalk(ctx context.Context, moniker string, talkID int) (*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	talk, err := s.talkRepo.GetByMoniker(ctx, moniker, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get talk: %w", err)
	}
	return talk, nil
}

// CreateTalk attaches talk to the camp identified by moniker and to the speaker
// identified by speakerID, then inserts it. Both must already exist.
func (s *talkService) CreateTalk(ctx context.Context, moniker string, talk *domain.Talk, speakerID *int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	camp, err := s.campRepo.GetByMoniker(ctx, moniker)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCampNotExist
		}
		return fmt.Errorf("get camp: %w", err)
	}

	if speakerID == nil {
		return domain.ErrSpeakerRequired
	}
	speaker, err := s.speakerRepo.GetByID(ctx, *speakerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrSpeakerNotFound
		}
		return fmt.Errorf("get speaker: %w", err)
	}

	talk.CampID = camp.ID
	talk.Speaker = speaker
	if err := s.talkRepo.Create(ctx, talk); err != nil {
		return fmt.Errorf("create talk: %w", err)
	}
	return nil
}

// UpdateTalk overwrites the talk's fields. A SpeakerID that does not resolve
// leaves the current speaker in place.
func (s *talkService) UpdateTalk(ctx context.Context, moniker string, talkID int, upd domain.TalkUpdate) (*domain.Talk, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	talk, err := s.talkRepo.GetByMoniker(ctx, moniker, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get talk: %w", err)
	}

	talk.Title = upd.Title
	talk.Abstract = upd.Abstract
	talk.Level = upd.Level

	if upd.SpeakerID != nil {
		speaker, err := s.speakerRepo.GetByID(ctx, *upd.SpeakerID)
		switch {
		case err == nil:
			talk.Speaker = speaker
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get speaker: %w", err)
		}
	}

	if err := s.talkRepo.Update(ctx, talk); err != nil {
		return nil, fmt.Errorf("update talk: %w", err)
	}
	return talk, nil
}

func (s *talkService) DeleteTalk(ctx context.Context, moniker string, talkID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	talk, err := s.talkRepo.GetByMoniker(ctx, moniker, talkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get talk: %w", err)
	}
	if err := s.talkRepo.Delete(ctx, talk.ID); err != nil {
		return fmt.Errorf("delete talk: %w", err)
	}
	return nil
}
