package store

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDateAcceptsBothForms(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-12-01T10:30:00Z", time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-12-01T10:30:00-03:00", time.Date(2024, 12, 1, 13, 30, 0, 0, time.UTC)},
		{"2024-12-01", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "01/12/2024"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ParseDate(%q) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-12-01"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-12-01T00:00:00Z"` {
		t.Fatalf("marshal = %s", b)
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("zero expected, got %v", d)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("marshal = %s, want null", b)
	}
}
