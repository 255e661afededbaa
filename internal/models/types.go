package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Numeric is a numeric column kept as its decimal text. JSON input may be a
// number or a string; output is always a string.
type Numeric string

func (n Numeric) String() string { return string(n) }

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric: expected number or string, got %s", data)
	}
	*n = Numeric(num.String())
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

func (n *Numeric) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*n = ""
	case string:
		*n = Numeric(v)
	case []byte:
		*n = Numeric(v)
	case float64:
		*n = Numeric(strconv.FormatFloat(v, 'f', -1, 64))
	case int64:
		*n = Numeric(strconv.FormatInt(v, 10))
	case fmt.Stringer:
		*n = Numeric(v.String())
	default:
		return fmt.Errorf("numeric: cannot scan %T", value)
	}
	return nil
}

func (n Numeric) Value() (driver.Value, error) {
	return string(n), nil
}

func (Numeric) GormDataType() string { return "numeric" }

// Float parses n, reporting whether it is a valid decimal number.
func (n Numeric) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	return f, err == nil
}

// Date is a calendar date column, encoded in JSON as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp, keeping only the
// calendar date of the latter.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return NewDate(t), nil
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(time.DateOnly) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date: expected string, got %s", data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("date: cannot scan %T", value)
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (Date) GormDataType() string { return "date" }
