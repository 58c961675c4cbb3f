package domain

import "context"

// Speaker presents one or more talks.
type Speaker struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	BlogURL    string `json:"blog_url"`
	Company    string `json:"company"`
	CompanyURL string `json:"company_url"`
	GitHub     string `json:"github"`
	Twitter    string `json:"twitter"`
}

// SpeakerRepository defines read access to speakers.
type SpeakerRepository interface {
	List(ctx context.Context) ([]*Speaker, error)
	GetByID(ctx context.Context, id int) (*Speaker, error)
}

// SpeakerService defines the business logic for speakers.
type SpeakerService interface {
	ListSpeakers(ctx context.Context) ([]*Speaker, error)
	GetSpeaker(ctx context.Context, id int) (*Speaker, error)
}
