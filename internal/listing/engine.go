package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// DateLayout is the layout of Job.PostedDate.
const DateLayout = "2006-01-02"

// FeaturedLimit is the number of featured jobs shown on the home page.
const FeaturedLimit = 6

// SimilarLimit is the number of similar jobs shown on a job's detail page.
const SimilarLimit = 3

// Matches reports whether job satisfies every active criterion.
// The sort key is ignored.
func Matches(job Job, c Criteria) bool {
	if c.SearchQuery != "" {
		q := strings.ToLower(c.SearchQuery)
		if !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) &&
			!strings.Contains(strings.ToLower(job.Location), q) {
			return false
		}
	}

	if c.City != "" && job.City != c.City {
		return false
	}

	if len(c.Types) > 0 && !slices.Contains(c.Types, job.Type) {
		return false
	}

	if len(c.Shifts) > 0 && !slices.Contains(c.Shifts, job.Shift) {
		return false
	}

	// Experience is a label match, not a comparison against ExperienceYears.
	if c.Experience != "" && job.Experience != c.Experience {
		return false
	}

	// The job's whole band must sit inside the selected band; overlap is not enough.
	if job.SalaryMin < c.SalaryRange[0] || job.SalaryMax > c.SalaryRange[1] {
		return false
	}

	return true
}

// View returns the jobs matching c, ordered by c.SortBy.
// The input slice is not modified. The sort is stable, so equal keys keep
// collection order, and an unknown sort key leaves collection order unchanged.
func View(jobs []Job, c Criteria) []Job {
	result := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, c) {
			result = append(result, job)
		}
	}

	switch c.SortBy {
	case SortNewest:
		sortNewest(result)
	case SortSalaryHigh:
		slices.SortStableFunc(result, func(a, b Job) int {
			return cmp.Compare(b.SalaryMax, a.SalaryMax)
		})
	case SortSalaryLow:
		slices.SortStableFunc(result, func(a, b Job) int {
			return cmp.Compare(a.SalaryMin, b.SalaryMin)
		})
	}

	return result
}

// sortNewest orders by posted date descending. Records whose date does not
// parse go after every dated record.
func sortNewest(jobs []Job) {
	type dated struct {
		job Job
		at  time.Time
		ok  bool
	}

	keyed := make([]dated, len(jobs))
	for i, job := range jobs {
		at, err := time.Parse(DateLayout, job.PostedDate)
		keyed[i] = dated{job: job, at: at, ok: err == nil}
	}

	slices.SortStableFunc(keyed, func(a, b dated) int {
		switch {
		case a.ok && b.ok:
			return b.at.Compare(a.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	for i := range keyed {
		jobs[i] = keyed[i].job
	}
}

// Featured returns up to limit featured jobs in collection order.
func Featured(jobs []Job, limit int) []Job {
	result := make([]Job, 0, max(limit, 0))
	for _, job := range jobs {
		if len(result) >= limit {
			break
		}
		if job.Featured {
			result = append(result, job)
		}
	}
	return result
}

// Similar returns up to limit other jobs in the same city as job, in collection order.
func Similar(jobs []Job, job Job, limit int) []Job {
	result := make([]Job, 0, max(limit, 0))
	for _, j := range jobs {
		if len(result) >= limit {
			break
		}
		if j.ID != job.ID && j.City == job.City {
			result = append(result, j)
		}
	}
	return result
}
