package listing

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidQuery is returned when a query parameter cannot be parsed.
var ErrInvalidQuery = errors.New("invalid query")

// CriteriaFromQuery builds criteria from URL query parameters, starting from
// DefaultCriteria. Recognised parameters: q, city, experience, type and shift
// (repeatable), salary_min, salary_max and sort. Unknown parameters are ignored.
func CriteriaFromQuery(v url.Values) (Criteria, error) {
	c := DefaultCriteria().
		WithSearch(strings.TrimSpace(v.Get("q"))).
		WithCity(v.Get("city")).
		WithExperience(v.Get("experience"))

	for _, t := range v["type"] {
		if t != "" {
			c = c.WithType(Type(t), true)
		}
	}
	for _, s := range v["shift"] {
		if s != "" {
			c = c.WithShift(Shift(s), true)
		}
	}

	lo, hi := c.SalaryRange[0], c.SalaryRange[1]
	var err error
	if raw := v.Get("salary_min"); raw != "" {
		if lo, err = strconv.Atoi(raw); err != nil {
			return Criteria{}, fmt.Errorf("%w: salary_min %q", ErrInvalidQuery, raw)
		}
	}
	if raw := v.Get("salary_max"); raw != "" {
		if hi, err = strconv.Atoi(raw); err != nil {
			return Criteria{}, fmt.Errorf("%w: salary_max %q", ErrInvalidQuery, raw)
		}
	}
	if lo > hi {
		return Criteria{}, fmt.Errorf("%w: salary_min %d exceeds salary_max %d", ErrInvalidQuery, lo, hi)
	}
	c = c.WithSalaryRange(lo, hi)

	if raw := v.Get("sort"); raw != "" {
		c = c.WithSort(SortKey(raw))
	}

	return c, nil
}
