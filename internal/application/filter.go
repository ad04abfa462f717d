package application

import "strings"

// StatusAll disables the status filter.
const StatusAll = "all"

// Filter narrows the employer's application list.
type Filter struct {
	// Search matches candidate name or email, case-insensitively.
	Search string
	// Status is StatusAll, empty, or one Status value.
	Status string
	// JobID restricts results to one job when set.
	JobID string
}

// Matches reports whether a satisfies f.
func (f Filter) Matches(a Application) bool {
	q := strings.ToLower(f.Search)
	if !strings.Contains(strings.ToLower(a.CandidateName), q) &&
		!strings.Contains(strings.ToLower(a.CandidateEmail), q) {
		return false
	}
	if f.Status != "" && f.Status != StatusAll && string(a.Status) != f.Status {
		return false
	}
	if f.JobID != "" && a.JobID != f.JobID {
		return false
	}
	return true
}

// Apply returns the applications matching f in their original order.
func (f Filter) Apply(apps []Application) []Application {
	out := make([]Application, 0, len(apps))
	for _, a := range apps {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Stats summarises applications for the portal's header cards.
type Stats struct {
	Total       int `json:"total"`
	New         int `json:"new"`
	Shortlisted int `json:"shortlisted"`
	Interviewed int `json:"interviewed"`
	Hired       int `json:"hired"`
	Rejected    int `json:"rejected"`
	// Pending counts applications still awaiting a decision (new or interviewed).
	Pending int `json:"pending"`
}

// Summarise counts apps by status.
func Summarise(apps []Application) Stats {
	s := Stats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case StatusNew:
			s.New++
			s.Pending++
		case StatusShortlisted:
			s.Shortlisted++
		case StatusInterviewed:
			s.Interviewed++
			s.Pending++
		case StatusHired:
			s.Hired++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// CountByJob returns the number of applications per job ID.
func CountByJob(apps []Application) map[string]int {
	counts := make(map[string]int)
	for _, a := range apps {
		counts[a.JobID]++
	}
	return counts
}
