package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// eventDateLayouts are the accepted formats for date query parameters.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// QueryBool reads an optional boolean query parameter. Missing means false.
func QueryBool(r *http.Request, name string) (bool, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return v, nil
}

// QueryDate reads a required date query parameter in RFC3339 or YYYY-MM-DD form.
func QueryDate(r *http.Request, name string) (time.Time, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s must be a date (YYYY-MM-DD or RFC3339)", name)
}

// PathInt reads an integer path value registered on the route pattern.
func PathInt(r *http.Request, name string) (int, error) {
	s := r.PathValue(name)
	if s == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}
