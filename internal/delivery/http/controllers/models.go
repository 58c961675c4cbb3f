package controllers

import (
	"time"

	"codecamp/internal/delivery/http/helpers"
	"codecamp/internal/domain"
)

// CampModel is the wire representation of a camp.
// swagger:model CampModel
type CampModel struct {
	Name                  string      `json:"name" validate:"required,max=100"`
	Moniker               string      `json:"moniker" validate:"required,max=20"`
	EventDate             time.Time   `json:"event_date"`
	Length                int         `json:"length" validate:"gte=0,lte=30"`
	Venue                 string      `json:"venue" validate:"max=100"`
	LocationAddress1      string      `json:"location_address1"`
	LocationAddress2      string      `json:"location_address2"`
	LocationAddress3      string      `json:"location_address3"`
	LocationCityTown      string      `json:"location_city_town"`
	LocationStateProvince string      `json:"location_state_province"`
	LocationPostalCode    string      `json:"location_postal_code"`
	LocationCountry       string      `json:"location_country"`
	Talks                 []TalkModel `json:"talks,omitempty"`
}

// TalkModel is the wire representation of a talk. On input only speaker.speaker_id is read.
// swagger:model TalkModel
type TalkModel struct {
	TalkID   int           `json:"talk_id"`
	Title    string        `json:"title" validate:"required,max=100"`
	Abstract string        `json:"abstract" validate:"required,max=4000"`
	Level    int           `json:"level" validate:"gte=100,lte=500"`
	Speaker  *SpeakerModel `json:"speaker"`
}

// SpeakerModel is the wire representation of a speaker.
// swagger:model SpeakerModel
type SpeakerModel struct {
	SpeakerID  int    `json:"speaker_id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	CompanyURL string `json:"company_url"`
	BlogURL    string `json:"blog_url"`
	Twitter    string `json:"twitter"`
	GitHub     string `json:"github"`
}

// StatusResponse is the data payload of delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// CampSuccessResponse is the success envelope for single-camp responses.
type CampSuccessResponse struct {
	Data  CampModel         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CampListSuccessResponse is the success envelope for camp list responses.
type CampListSuccessResponse struct {
	Data  []CampModel       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkSuccessResponse is the success envelope for single-talk responses.
type TalkSuccessResponse struct {
	Data  TalkModel         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TalkListSuccessResponse is the success envelope for talk list responses.
type TalkListSuccessResponse struct {
	Data  []TalkModel       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpeakerSuccessResponse is the success envelope for single-speaker responses.
type SpeakerSuccessResponse struct {
	Data  SpeakerModel      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpeakerListSuccessResponse is the success envelope for speaker list responses.
type SpeakerListSuccessResponse struct {
	Data  []SpeakerModel    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StatusSuccessResponse is the success envelope for delete operations.
type StatusSuccessResponse struct {
	Data  StatusResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func campToModel(c *domain.Camp) CampModel {
	m := CampModel{
		Name:                  c.Name,
		Moniker:               c.Moniker,
		EventDate:             c.EventDate,
		Length:                c.Length,
		Venue:                 c.Location.Venue,
		LocationAddress1:      c.Location.Address1,
		LocationAddress2:      c.Location.Address2,
		LocationAddress3:      c.Location.Address3,
		LocationCityTown:      c.Location.CityTown,
		LocationStateProvince: c.Location.StateProvince,
		LocationPostalCode:    c.Location.PostalCode,
		LocationCountry:       c.Location.Country,
	}
	if c.Talks != nil {
		m.Talks = talksToModels(c.Talks)
	}
	return m
}

func campsToModels(camps []*domain.Camp) []CampModel {
	out := make([]CampModel, 0, len(camps))
	for _, c := range camps {
		out = append(out, campToModel(c))
	}
	return out
}

// toCamp maps the writable fields of m. Talks are never written through a camp.
func (m CampModel) toCamp() *domain.Camp {
	return domain.NewCamp(m.Moniker, m.Name, m.EventDate, m.Length, domain.Location{
		Venue:         m.Venue,
		Address1:      m.LocationAddress1,
		Address2:      m.LocationAddress2,
		Address3:      m.LocationAddress3,
		CityTown:      m.LocationCityTown,
		StateProvince: m.LocationStateProvince,
		PostalCode:    m.LocationPostalCode,
		Country:       m.LocationCountry,
	})
}

func talkToModel(t *domain.Talk) TalkModel {
	m := TalkModel{
		TalkID:   t.ID,
		Title:    t.Title,
		Abstract: t.Abstract,
		Level:    t.Level,
	}
	if t.Speaker != nil {
		s := speakerToModel(t.Speaker)
		m.Speaker = &s
	}
	return m
}

func talksToModels(talks []*domain.Talk) []TalkModel {
	out := make([]TalkModel, 0, len(talks))
	for _, t := range talks {
		out = append(out, talkToModel(t))
	}
	return out
}

func (m TalkModel) toTalk() *domain.Talk {
	return domain.NewTalk(m.Title, m.Abstract, m.Level)
}

func (m TalkModel) toUpdate() domain.TalkUpdate {
	return domain.TalkUpdate{
		Title:     m.Title,
		Abstract:  m.Abstract,
		Level:     m.Level,
		SpeakerID: m.speakerID(),
	}
}

// speakerID returns nil when the request carried no speaker reference.
func (m TalkModel) speakerID() *int {
	if m.Speaker == nil {
		return nil
	}
	id := m.Speaker.SpeakerID
	return &id
}

func speakerToModel(s *domain.Speaker) SpeakerModel {
	return SpeakerModel{
		SpeakerID:  s.ID,
		FirstName:  s.FirstName,
		MiddleName: s.MiddleName,
		LastName:   s.LastName,
		Company:    s.Company,
		CompanyURL: s.CompanyURL,
		BlogURL:    s.BlogURL,
		Twitter:    s.Twitter,
		GitHub:     s.GitHub,
	}
}

func speakersToModels(speakers []*domain.Speaker) []SpeakerModel {
	out := make([]SpeakerModel, 0, len(speakers))
	for _, s := range speakers {
		out = append(out, speakerToModel(s))
	}
	return out
}
