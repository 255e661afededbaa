package listing

import "strings"

// Filter is the listing page's filter state. Blank text fields impose no
// constraint; the salary range is always applied.
type Filter struct {
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Type     string      `json:"type"`
	Salary   SalaryRange `json:"salaryRange"`
}

// DefaultFilter is the state the listing page starts with.
func DefaultFilter() Filter {
	return Filter{Salary: SalaryRange{Min: 5, Max: 80}}
}

// Match reports whether job passes every active filter.
func (f Filter) Match(job Job) bool {
	if !blank(f.Title) && !containsFold(job.Title, f.Title) {
		return false
	}
	if !blank(f.Location) && !containsFold(job.Location, f.Location) {
		return false
	}
	if !blank(f.Type) && job.Type != f.Type {
		return false
	}
	return f.Salary.Overlaps(job.SalaryFrom, job.SalaryTo)
}

// Apply returns the jobs matching f, preserving their order. The result is
// never nil.
func Apply(jobs []Job, f Filter) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
