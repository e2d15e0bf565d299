package store

import (
	"fmt"
	"strings"
	"time"
)

// Date is a timestamp whose JSON form accepts both RFC 3339 date-times and
// plain yyyy-mm-dd dates. It marshals as RFC 3339 in UTC.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date { return Date{t.UTC()} }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.UTC().Format(time.RFC3339) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// ParseDate parses an RFC 3339 date-time, falling back to yyyy-mm-dd.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: %w", s, ErrInvalidInput)
}
