package domain

import "context"

// Talk is a session presented at a camp by a single speaker.
type Talk struct {
	ID       int      `json:"id"`
	CampID   int      `json:"camp_id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Level    int      `json:"level"`
	Speaker  *Speaker `json:"speaker"`
}

// NewTalk returns a new Talk. ID is set by the repository on create.
func NewTalk(title, abstract string, level int) *Talk {
	return &Talk{
		Title:    title,
		Abstract: abstract,
		Level:    level,
	}
}

// TalkRepository defines storage for talks. Talks are always loaded with their speaker.
type TalkRepository interface {
	ListByMoniker(ctx context.Context, moniker string) ([]*Talk, error)
	ListByCampIDs(ctx context.Context, campIDs []int) ([]*Talk, error)
	GetByMoniker(ctx context.Context, moniker string, talkID int) (*Talk, error)
	Create(ctx context.Context, talk *Talk) error
	Update(ctx context.Context, talk *Talk) error
	Delete(ctx context.Context, talkID int) error
}

// TalkUpdate carries the mutable fields of a talk. SpeakerID is optional.
type TalkUpdate struct {
	Title     string
	Abstract  string
	Level     int
	SpeakerID *int
}

// TalkService defines the business logic for talks.
type TalkService interface {
	ListTalks(ctx context.Context, moniker string) ([]*Talk, error)
	GetTalk(ctx context.Context, moniker string, talkID int) (*Talk, error)
	CreateTalk(ctx context.Context, moniker string, talk *Talk, speakerID *int) error
	UpdateTalk(ctx context.Context, moniker string, talkID int, upd TalkUpdate) (*Talk, error)
	DeleteTalk(ctx context.Context, moniker string, talkID int) error
}
