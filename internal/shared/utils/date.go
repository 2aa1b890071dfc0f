package utils

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrInvalidDate = errors.New("must be an ISO-8601 date")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp. Zone-less values are UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DateRule validates an optional *string date; nil and "" pass.
var DateRule = validation.By(func(value interface{}) error {
	s, _ := value.(*string)
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	_, err := ParseDate(*s)
	return err
})

// DateValue parses an optional date: nil stays nil, "" clears.
func DateValue(s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}
