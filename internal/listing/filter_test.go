package listing_test

import (
	"testing"

	"github.com/justsurfingit/jobboard/internal/listing"
)

func fullStackDeveloper() listing.Job {
	return newNormalizer().Normalize(listing.Record{
		"salaryRange":  "8",
		"salaryrange2": "12",
		"title":        "Full Stack Developer",
		"location":     "Chennai",
		"type":         "Full-time",
	})
}

func sampleJobs() []listing.Job {
	n := newNormalizer()
	return n.NormalizeAll([]listing.Record{
		{"id": "1", "title": "Full Stack Developer", "company": "Amazon", "location": "Chennai", "type": "Full-time", "salaryRange": "8", "salaryrange2": "12"},
		{"id": "2", "title": "Node Js Developer", "company": "Tesla", "location": "Google", "type": "Full-time", "salaryRange": "6", "salaryrange2": "10"},
		{"id": "3", "title": "UX/UI Designer", "company": "Figma", "location": "Onsite", "type": "Contract", "salaryRange": "5", "salaryrange2": "8"},
		{"id": "4", "title": "Full Stack Developer", "company": "Amazon", "location": "Onsite", "type": "Full-time", "salaryRange": "8", "salaryrange2": "15"},
	})
}

func ids(jobs []listing.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ── Scenarios ──────────────────────────────────────────────────────────────

func TestMatch_TitleCaseInsensitiveWithOverlappingSalary(t *testing.T) {
	f := listing.Filter{Title: "full", Salary: listing.SalaryRange{Min: 0, Max: 100}}
	if !f.Match(fullStackDeveloper()) {
		t.Error("8-12 LPA (66.7-100 monthlyK) should overlap [0, 100] and match title \"full\"")
	}
}

func TestMatch_SalaryRangeAboveJob(t *testing.T) {
	f := listing.Filter{Salary: listing.SalaryRange{Min: 150, Max: 200}}
	if f.Match(fullStackDeveloper()) {
		t.Error("job max of 100 monthlyK is below filter min 150; should be excluded")
	}
}

// ── Individual dimensions ──────────────────────────────────────────────────

func TestMatch_Dimensions(t *testing.T) {
	all := listing.SalaryRange{Min: 0, Max: 1000}
	job := fullStackDeveloper()

	cases := []struct {
		name   string
		filter listing.Filter
		want   bool
	}{
		{"blank filters", listing.Filter{Salary: all}, true},
		{"whitespace title is blank", listing.Filter{Title: "   ", Salary: all}, true},
		{"title substring", listing.Filter{Title: "STACK", Salary: all}, true},
		{"title mismatch", listing.Filter{Title: "designer", Salary: all}, false},
		{"location substring", listing.Filter{Location: "chen", Salary: all}, true},
		{"location mismatch", listing.Filter{Location: "Mumbai", Salary: all}, false},
		{"type exact", listing.Filter{Type: "Full-time", Salary: all}, true},
		{"type is case-sensitive", listing.Filter{Type: "full-time", Salary: all}, false},
		{"type mismatch", listing.Filter{Type: "Contract", Salary: all}, false},
		{"all dimensions", listing.Filter{Title: "full", Location: "Chennai", Type: "Full-time", Salary: all}, true},
		{"one failing dimension", listing.Filter{Title: "full", Location: "Delhi", Type: "Full-time", Salary: all}, false},
	}
	for _, c := range cases {
		if got := c.filter.Match(job); got != c.want {
			t.Errorf("%s: Match = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMatch_SalaryBoundariesAreInclusive(t *testing.T) {
	// 12 LPA is exactly 100 monthlyK, 8 LPA is 66.67.
	job := fullStackDeveloper()
	if !(listing.Filter{Salary: listing.SalaryRange{Min: 100, Max: 150}}).Match(job) {
		t.Error("filter min equal to job max should match")
	}
	if !(listing.Filter{Salary: listing.SalaryRange{Min: 0, Max: job.SalaryFrom.MonthlyK()}}).Match(job) {
		t.Error("filter max equal to job min should match")
	}
	if (listing.Filter{Salary: listing.SalaryRange{Min: 0, Max: 66}}).Match(job) {
		t.Error("filter max below job min should not match")
	}
}

// ── Apply ──────────────────────────────────────────────────────────────────

func TestApply_PreservesOrder(t *testing.T) {
	jobs := sampleJobs()
	got := ids(listing.Apply(jobs, listing.Filter{Title: "full", Salary: listing.SalaryRange{Min: 0, Max: 200}}))
	if want := []string{"1", "4"}; !equalIDs(got, want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApply_BlankFiltersFullRangeReturnsInput(t *testing.T) {
	jobs := sampleJobs()
	f := listing.Filter{Salary: listing.SalaryRange{Min: 0, Max: 200}}
	if got, want := ids(listing.Apply(jobs, f)), ids(jobs); !equalIDs(got, want) {
		t.Errorf("Apply = %v, want input order %v", got, want)
	}
}

func TestApply_DefaultFilterKeepsSampleJobs(t *testing.T) {
	// Every sample job overlaps the initial [5, 80] monthlyK window.
	jobs := sampleJobs()
	if got, want := ids(listing.Apply(jobs, listing.DefaultFilter())), ids(jobs); !equalIDs(got, want) {
		t.Errorf("Apply(DefaultFilter) = %v, want %v", got, want)
	}
}

func TestApply_Idempotent(t *testing.T) {
	jobs := sampleJobs()
	filters := []listing.Filter{
		listing.DefaultFilter(),
		{Title: "developer", Salary: listing.SalaryRange{Min: 50, Max: 90}},
		{Location: "onsite", Type: "Contract", Salary: listing.SalaryRange{Min: 0, Max: 100}},
		{Salary: listing.SalaryRange{Min: 150, Max: 200}},
	}
	for i, f := range filters {
		once := listing.Apply(jobs, f)
		twice := listing.Apply(once, f)
		if !equalIDs(ids(once), ids(twice)) {
			t.Errorf("filter %d: once=%v twice=%v", i, ids(once), ids(twice))
		}
	}
}

func TestApply_EmptyInputReturnsEmptySlice(t *testing.T) {
	got := listing.Apply(nil, listing.DefaultFilter())
	if got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want empty non-nil slice", got)
	}
}
