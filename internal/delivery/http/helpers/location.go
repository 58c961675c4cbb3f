package helpers

import (
	"fmt"
	"net/url"

	"codecamp/internal/domain"
)

const campsPath = "/api/camps"

// CampLocation returns the canonical path of the camp identified by moniker.
// It fails with domain.ErrInvalidMoniker when GET on that path would not reach the camp.
func CampLocation(moniker string) (string, error) {
	if err := domain.CheckMoniker(moniker); err != nil {
		return "", err
	}
	return campsPath + "/" + url.PathEscape(moniker), nil
}

// TalkLocation returns the canonical path of a talk within its camp.
func TalkLocation(moniker string, talkID int) (string, error) {
	camp, err := CampLocation(moniker)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/talks/%d", camp, talkID), nil
}
