package dto

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"tourcrm/shared/timezone"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
}

// Date is a nullable calendar date. JSON null, an absent field and an empty
// string all decode to the invalid (NULL) value.
type Date struct {
	Time  time.Time
	Valid bool
}

func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.Time.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, ok, err := parseJSONTime(data, []string{time.DateOnly, time.RFC3339Nano})
	if err != nil {
		return err
	}

	*d = Date{Time: t, Valid: ok}

	return nil
}

func (d *Date) Scan(src any) error {
	t, ok, err := scanTime(src)
	*d = Date{Time: t, Valid: ok}

	return err
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}

	return d.Time.Format(time.DateOnly), nil
}

// Timestamp is a nullable point in time. It accepts RFC 3339 as well as the
// forms an HTML date or datetime-local input submits.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(t.Time.Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, ok, err := parseJSONTime(data, timestampLayouts)
	if err != nil {
		return err
	}

	*t = Timestamp{Time: parsed, Valid: ok}

	return nil
}

func (t *Timestamp) Scan(src any) error {
	parsed, ok, err := scanTime(src)
	*t = Timestamp{Time: parsed, Valid: ok}

	return err
}

func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}

	return t.Time, nil
}

func parseJSONTime(data []byte, layouts []string) (time.Time, bool, error) {
	if bytes.Equal(data, []byte("null")) {
		return time.Time{}, false, nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return time.Time{}, false, fmt.Errorf("fecha inválida: %w", err)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}

	for _, layout := range layouts {
		if t, err := timezone.Parse(layout, raw); err == nil {
			return t, true, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("fecha inválida: %q", raw)
}

func scanTime(src any) (time.Time, bool, error) {
	switch v := src.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return v, true, nil
	case []byte:
		return scanTimeString(string(v))
	case string:
		return scanTimeString(v)
	default:
		return time.Time{}, false, fmt.Errorf("cannot scan %T into a date", src)
	}
}

func scanTimeString(value string) (time.Time, bool, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("cannot parse %q as a date", value)
}
