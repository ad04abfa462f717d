// Package listing provides the job record types and the filter/sort engine
// that derives the job board's display list from the static collection.
package listing

// Type is the employment type of a job.
type Type string

const (
	// TypeFullTime is a full-time position.
	TypeFullTime Type = "Full-time"
	// TypePartTime is a part-time position.
	TypePartTime Type = "Part-time"
	// TypeContract is a contract position.
	TypeContract Type = "Contract"
)

// IsValid returns true if the type is one of the known employment types.
func (t Type) IsValid() bool {
	return t == TypeFullTime || t == TypePartTime || t == TypeContract
}

// Shift is the working shift of a job.
type Shift string

const (
	// ShiftDay is a day shift.
	ShiftDay Shift = "Day"
	// ShiftNight is a night shift.
	ShiftNight Shift = "Night"
	// ShiftRotational rotates between day and night.
	ShiftRotational Shift = "Rotational"
)

// IsValid returns true if the shift is one of the known shifts.
func (s Shift) IsValid() bool {
	return s == ShiftDay || s == ShiftNight || s == ShiftRotational
}

// Job is a single job posting. Records are loaded once and never mutated.
type Job struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Location string `json:"location" yaml:"location"`
	City     string `json:"city" yaml:"city" validate:"required"`
	// Salary is the formatted display string; filtering uses SalaryMin/SalaryMax.
	Salary    string `json:"salary" yaml:"salary"`
	SalaryMin int    `json:"salary_min" yaml:"salary_min" validate:"gte=0"`
	SalaryMax int    `json:"salary_max" yaml:"salary_max" validate:"gtefield=SalaryMin"`
	Type      Type   `json:"type" yaml:"type" validate:"required,oneof=Full-time Part-time Contract"`
	Shift     Shift  `json:"shift" yaml:"shift" validate:"required,oneof=Day Night Rotational"`
	// Experience is a label matched literally by the experience filter.
	Experience string `json:"experience" yaml:"experience"`
	// ExperienceYears is for display only.
	ExperienceYears  int      `json:"experience_years" yaml:"experience_years"`
	PostedDate       string   `json:"posted_date" yaml:"posted_date"`
	Description      string   `json:"description" yaml:"description"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Requirements     []string `json:"requirements" yaml:"requirements"`
	Benefits         []string `json:"benefits" yaml:"benefits"`
	Featured         bool     `json:"featured" yaml:"featured"`
}

// Filter options offered by the job search page.
var (
	Cities           = []string{"Delhi", "Gurgaon", "Noida", "Faridabad", "Ghaziabad"}
	JobTypes         = []Type{TypeFullTime, TypePartTime, TypeContract}
	Shifts           = []Shift{ShiftDay, ShiftNight, ShiftRotational}
	ExperienceLevels = []string{"Fresher", "0-1 years", "1-3 years", "3+ years"}
	Categories       = []string{
		"Security Guard",
		"Watchman",
		"Bouncer",
		"CCTV Operator",
		"Security Supervisor",
		"Gate Keeper",
		"Event Security",
		"Armed Guard",
		"Lady Security Guard",
		"Patrol Officer",
	}
)
