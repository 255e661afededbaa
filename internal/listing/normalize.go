// Package listing turns persisted job records into the canonical jobs the
// listing page renders, and filters them.
//
// Everything here is pure: no I/O, no errors. Malformed input fields fall back
// to documented defaults instead of failing the whole record.
package listing

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a record field is missing or unparseable.
const (
	DefaultTitle       = ""
	DefaultCompany     = "Unknown Company"
	DefaultLocation    = "Remote"
	DefaultType        = TypeFullTime
	DefaultExperience  = "1-3 yr Exp"
	DefaultDescription = "No description provided"
)

// Job types accepted by the jobs table.
const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
)

// Types lists the job types in display order.
var Types = []string{TypeInternship, TypeFullTime, TypePartTime, TypeContract}

// IsValidType reports whether t is one of the accepted job types.
func IsValidType(t string) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

// Record is a persisted job as decoded from JSON. Field names follow the jobs
// table: id, title, company, location, type, salaryRange, salaryrange2,
// description, applicationDeadline, isRemote, createdAt.
type Record map[string]any

// Job is the canonical, fully populated view of a persisted record.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Experience  string    `json:"experience"`
	SalaryFrom  LPA       `json:"salaryFrom"`
	SalaryTo    LPA       `json:"salaryTo"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	PostedDate  time.Time `json:"postedDate"`
	Remote      bool      `json:"remote"`
	IsLPA       bool      `json:"isLPA"`
}

// Record renders j back into the persisted record shape. Normalizing the
// result yields j again.
func (j Job) Record() Record {
	return Record{
		"id":                  j.ID,
		"title":               j.Title,
		"company":             j.Company,
		"location":            j.Location,
		"type":                j.Type,
		"salaryRange":         float64(j.SalaryFrom),
		"salaryrange2":        float64(j.SalaryTo),
		"description":         j.Description,
		"applicationDeadline": j.Deadline,
		"createdAt":           j.PostedDate,
		"isRemote":            j.Remote,
	}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock sets the clock used for defaulted dates.
func WithClock(clock func() time.Time) Option {
	return func(n *Normalizer) {
		n.clock = clock
	}
}

// WithIDGenerator sets the generator used for records without an id.
func WithIDGenerator(gen func() string) Option {
	return func(n *Normalizer) {
		n.newID = gen
	}
}

// Normalizer converts records to canonical jobs.
type Normalizer struct {
	clock func() time.Time
	newID func() string
}

// NewNormalizer returns a Normalizer using time.Now and random UUIDs unless
// overridden.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize never fails: every field that is absent, null, or of the wrong
// shape takes its default.
func (n *Normalizer) Normalize(rec Record) Job {
	now := n.clock()

	from := ParseLPA(rec["salaryRange"])
	to := from
	if v, ok := rec["salaryrange2"]; ok && v != nil {
		to = ParseLPA(v)
	}
	if to < from {
		to = from
	}

	id := textOr(rec["id"], "")
	if id == "" {
		id = n.newID()
	}

	typ := textOr(rec["type"], DefaultType)
	if !IsValidType(typ) {
		typ = DefaultType
	}

	return Job{
		ID:          id,
		Title:       textOr(rec["title"], DefaultTitle),
		Company:     textOr(rec["company"], DefaultCompany),
		Location:    textOr(rec["location"], DefaultLocation),
		Type:        typ,
		Experience:  DefaultExperience,
		SalaryFrom:  from,
		SalaryTo:    to,
		Description: textOr(rec["description"], DefaultDescription),
		Deadline:    timeOr(rec["applicationDeadline"], now),
		PostedDate:  timeOr(rec["createdAt"], now),
		Remote:      boolOf(rec["isRemote"]),
		IsLPA:       true,
	}
}

// NormalizeAll normalizes records in order.
func (n *Normalizer) NormalizeAll(recs []Record) []Job {
	jobs := make([]Job, 0, len(recs))
	for _, r := range recs {
		jobs = append(jobs, n.Normalize(r))
	}
	return jobs
}

// textOr returns v as text, or def when v is absent, blank, or not scalar.
func textOr(v any, def string) string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = numberText(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		return def
	}
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// timeOr parses v as a timestamp or calendar date, or returns def.
func timeOr(v any, def time.Time) time.Time {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return def
		}
		return t
	case *time.Time:
		if t == nil || t.IsZero() {
			return def
		}
		return *t
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed
			}
		}
	}
	return def
}

// boolOf coerces v to a strict boolean.
func boolOf(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return err == nil && b
	case float64:
		return t != 0
	case int:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	}
	return false
}
