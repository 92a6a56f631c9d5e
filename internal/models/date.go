package models

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// Date wraps time.Time so request payloads can carry either an RFC 3339
// timestamp or a plain calendar date. Dashboard date pickers submit the
// date-only form.
type Date struct {
	time.Time
}

// NewDate wraps a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON accepts RFC 3339 timestamps and 2006-01-02 dates. Date-only
// values are interpreted as midnight UTC.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parse date: expected a JSON string, got %s", s)
	}
	s = s[1 : len(s)-1]
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t.UTC()
	return nil
}
