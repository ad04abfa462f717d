package listing

import "slices"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortNewest orders by posted date, most recent first.
	SortNewest SortKey = "newest"
	// SortSalaryHigh orders by SalaryMax, highest first.
	SortSalaryHigh SortKey = "salary-high"
	// SortSalaryLow orders by SalaryMin, lowest first.
	SortSalaryLow SortKey = "salary-low"
)

// SortKeys lists the orderings offered by the sort selector.
var SortKeys = []SortKey{SortNewest, SortSalaryHigh, SortSalaryLow}

// IsValid returns true if the key is one of the known sort keys.
func (k SortKey) IsValid() bool {
	return slices.Contains(SortKeys, k)
}

// Default salary band of the salary slider.
const (
	DefaultSalaryMin = 10000
	DefaultSalaryMax = 40000
)

// Criteria is the set of user-selected filters and the sort key.
// Values are treated as immutable: the With* methods return a modified copy.
type Criteria struct {
	SearchQuery string  `json:"q"`
	City        string  `json:"city"`
	Types       []Type  `json:"type"`
	Shifts      []Shift `json:"shift"`
	Experience  string  `json:"experience"`
	// SalaryRange is an inclusive [min, max] band.
	SalaryRange [2]int  `json:"salary_range"`
	SortBy      SortKey `json:"sort"`
}

// DefaultCriteria returns the criteria a search page starts with.
func DefaultCriteria() Criteria {
	return Criteria{
		Types:       []Type{},
		Shifts:      []Shift{},
		SalaryRange: [2]int{DefaultSalaryMin, DefaultSalaryMax},
		SortBy:      SortNewest,
	}
}

// Cleared resets every filter to its default, as the "Clear All Filters"
// action does. The search query and sort key are kept.
func (c Criteria) Cleared() Criteria {
	d := DefaultCriteria()
	d.SearchQuery = c.SearchQuery
	d.SortBy = c.SortBy
	return d
}

// WithSearch returns a copy with the search query replaced.
func (c Criteria) WithSearch(q string) Criteria {
	c.SearchQuery = q
	return c.detach()
}

// WithCity returns a copy with the city replaced. Empty means any city.
func (c Criteria) WithCity(city string) Criteria {
	c.City = city
	return c.detach()
}

// WithExperience returns a copy with the experience label replaced.
func (c Criteria) WithExperience(label string) Criteria {
	c.Experience = label
	return c.detach()
}

// WithSalaryRange returns a copy with the salary band replaced.
func (c Criteria) WithSalaryRange(lo, hi int) Criteria {
	c.SalaryRange = [2]int{lo, hi}
	return c.detach()
}

// WithSort returns a copy with the sort key replaced.
func (c Criteria) WithSort(key SortKey) Criteria {
	c.SortBy = key
	return c.detach()
}

// WithType returns a copy with t added to (checked) or removed from the type set.
func (c Criteria) WithType(t Type, checked bool) Criteria {
	c = c.detach()
	c.Types = toggle(c.Types, t, checked)
	return c
}

// WithShift returns a copy with s added to (checked) or removed from the shift set.
func (c Criteria) WithShift(s Shift, checked bool) Criteria {
	c = c.detach()
	c.Shifts = toggle(c.Shifts, s, checked)
	return c
}

// detach gives the copy its own set slices so the original never observes a change.
func (c Criteria) detach() Criteria {
	c.Types = slices.Clone(c.Types)
	c.Shifts = slices.Clone(c.Shifts)
	return c
}

func toggle[T comparable](set []T, v T, checked bool) []T {
	if set == nil {
		set = []T{}
	}
	has := slices.Contains(set, v)
	switch {
	case checked && !has:
		return append(set, v)
	case !checked && has:
		return slices.DeleteFunc(set, func(x T) bool { return x == v })
	default:
		return set
	}
}
