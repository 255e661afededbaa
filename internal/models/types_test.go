package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
)

func TestNumeric_UnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]models.Numeric{
		`"5"`:         "5",
		`5`:           "5",
		`12.75`:       "12.75",
		`"10,00,000"`: "10,00,000",
	}
	for in, want := range cases {
		var n models.Numeric
		if err := json.Unmarshal([]byte(in), &n); err != nil {
			t.Errorf("Unmarshal(%s): %v", in, err)
			continue
		}
		if n != want {
			t.Errorf("Unmarshal(%s) = %q, want %q", in, n, want)
		}
	}
}

func TestNumeric_UnmarshalRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{`true`, `{}`, `[1]`} {
		var n models.Numeric
		if err := json.Unmarshal([]byte(in), &n); err == nil {
			t.Errorf("Unmarshal(%s) should fail, got %q", in, n)
		}
	}
}

func TestNumeric_MarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(models.Numeric("8"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"8"` {
		t.Errorf("Marshal = %s, want \"8\"", raw)
	}
}

func TestNumeric_Scan(t *testing.T) {
	cases := []struct {
		in   any
		want models.Numeric
	}{
		{"12.50", "12.50"},
		{[]byte("7"), "7"},
		{float64(3.5), "3.5"},
		{int64(4), "4"},
	}
	for _, c := range cases {
		var n models.Numeric
		if err := n.Scan(c.in); err != nil {
			t.Errorf("Scan(%#v): %v", c.in, err)
		}
		if n != c.want {
			t.Errorf("Scan(%#v) = %q, want %q", c.in, n, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-15", " 2024-03-15 ", "2024-03-15T09:30:00Z", "2024-03-15T09:30:00.000+00:00"} {
		d, err := models.ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", in, err)
			continue
		}
		if !d.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, d.Time, want)
		}
	}
	if _, err := models.ParseDate("15/03/2024"); err == nil {
		t.Error("ParseDate should reject non-ISO dates")
	}
}

func TestDate_JSON(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"2024-03-15"`), &d); err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2024-03-15"` {
		t.Errorf("Marshal = %s, want \"2024-03-15\"", raw)
	}
}

func TestDate_ScanTime(t *testing.T) {
	var d models.Date
	if err := d.Scan(time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-03-20" {
		t.Errorf("Scan(time) = %s, want 2024-03-20", d)
	}
}
