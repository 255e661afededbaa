package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LPA is compensation in lakhs per annum, the unit persisted records use.
type LPA float64

// MonthlyK is compensation in thousands per month, the unit of the salary filter.
type MonthlyK float64

// MonthlyK converts an annual-lakhs amount to monthly-thousands.
func (l LPA) MonthlyK() MonthlyK {
	return MonthlyK(float64(l) * 100 / 12)
}

// LPA converts a monthly-thousands amount back to annual lakhs.
func (m MonthlyK) LPA() LPA {
	return LPA(float64(m) * 12 / 100)
}

// ParseLPA reads a loosely typed salary value. Every character other than a
// digit or a decimal point is dropped before parsing, so "₹8,00" reads as 800
// and "12 LPA" as 12. Anything that still does not parse yields 0.
func ParseLPA(v any) LPA {
	s, ok := salaryText(v)
	if !ok {
		return 0
	}
	n, ok := parseNumericPrefix(stripNonNumeric(s))
	if !ok {
		return 0
	}
	return LPA(n)
}

func salaryText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case json.Number:
		return numberText(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case LPA:
		return strconv.FormatFloat(float64(t), 'f', -1, 64), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}

// numberText renders a JSON number by its value, so exponent forms such as
// 1e3 come out as plain decimals. Integer literals keep their exact digits.
func numberText(n json.Number) string {
	if !strings.ContainsAny(n.String(), ".eE") {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return n.String()
	}
	if math.IsInf(f, 0) {
		f = math.Copysign(math.MaxFloat64, f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumericPrefix parses the longest leading decimal number of s, so
// "1.5.2" reads as 1.5. s must already be stripped to digits and dots.
// Values too large for a float64 clamp to math.MaxFloat64.
func parseNumericPrefix(s string) (float64, bool) {
	end := len(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			end = i + 1 + j
		}
	}
	s = strings.TrimSuffix(s[:end], ".")
	if s == "" || s == "." {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		if math.IsInf(n, 0) {
			return math.MaxFloat64, true
		}
		return n, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// Salary slider bounds of the listing page, in MonthlyK.
const (
	SalaryMinK  MonthlyK = 5
	SalaryMaxK  MonthlyK = 100
	SalaryStepK MonthlyK = 5
)

// SalaryRange is a closed interval in monthly-thousands.
type SalaryRange struct {
	Min MonthlyK `json:"min"`
	Max MonthlyK `json:"max"`
}

// Overlaps reports whether [from, to] (annual lakhs) intersects r.
func (r SalaryRange) Overlaps(from, to LPA) bool {
	return to.MonthlyK() >= r.Min && from.MonthlyK() <= r.Max
}

// Ordered returns r with Min and Max swapped if they are inverted.
func (r SalaryRange) Ordered() SalaryRange {
	if r.Min > r.Max {
		return SalaryRange{Min: r.Max, Max: r.Min}
	}
	return r
}

// String renders the range the way the listing page labels its slider.
func (r SalaryRange) String() string {
	return fmt.Sprintf("₹%sk - ₹%sk per month (₹%.1f - ₹%.1f LPA)",
		strconv.FormatFloat(float64(r.Min), 'f', -1, 64),
		strconv.FormatFloat(float64(r.Max), 'f', -1, 64),
		float64(r.Min.LPA()), float64(r.Max.LPA()))
}
