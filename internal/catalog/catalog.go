// Package catalog loads the job board's static data document and publishes it
// as an immutable snapshot.
package catalog

import (
	"embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/maauso/guardjobs-api/internal/listing"
)

// SeedKey is the path of the compiled-in catalog document inside Seed.
const SeedKey = "seed/catalog.yaml"

// Seed holds the compiled-in catalog document.
//
//go:embed seed/catalog.yaml
var Seed embed.FS

var (
	// ErrJobNotFound is returned when no job has the requested ID.
	ErrJobNotFound = errors.New("job not found")
	// ErrDuplicateID is returned when two jobs in a document share an ID.
	ErrDuplicateID = errors.New("duplicate job id")
	// ErrEmptyDocument is returned when a document holds no jobs.
	ErrEmptyDocument = errors.New("catalog has no jobs")
)

// Stats are the marketing figures shown on the home page.
type Stats struct {
	ActiveJobs        int `json:"active_jobs" yaml:"active_jobs"`
	TotalApplications int `json:"total_applications" yaml:"total_applications"`
	CandidatesHired   int `json:"candidates_hired" yaml:"candidates_hired"`
	CompaniesServed   int `json:"companies_served" yaml:"companies_served"`
}

// Document is the on-disk shape of a catalog.
type Document struct {
	Stats Stats         `yaml:"stats"`
	Jobs  []listing.Job `yaml:"jobs" validate:"dive"`
}

// Catalog is a read-only snapshot of the job collection.
type Catalog struct {
	jobs  []listing.Job
	index map[string]int
	stats Stats
}

var validate = validator.New()

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc)
}

// New validates doc and builds a snapshot from it.
func New(doc Document) (*Catalog, error) {
	if len(doc.Jobs) == 0 {
		return nil, ErrEmptyDocument
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	index := make(map[string]int, len(doc.Jobs))
	for i, job := range doc.Jobs {
		if _, ok := index[job.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, job.ID)
		}
		index[job.ID] = i
	}

	jobs := make([]listing.Job, len(doc.Jobs))
	copy(jobs, doc.Jobs)

	return &Catalog{jobs: jobs, index: index, stats: doc.Stats}, nil
}

// Default parses the compiled-in seed document.
func Default() (*Catalog, error) {
	data, err := Seed.ReadFile(SeedKey)
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	return Parse(data)
}

// Jobs returns the collection in document order. The slice is a copy; the
// records' list fields are shared and must be treated as read-only.
func (c *Catalog) Jobs() []listing.Job {
	out := make([]listing.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Len returns the number of jobs.
func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Find returns the job with the given ID.
func (c *Catalog) Find(id string) (listing.Job, error) {
	i, ok := c.index[id]
	if !ok {
		return listing.Job{}, ErrJobNotFound
	}
	return c.jobs[i], nil
}

// Featured returns the home page's featured jobs.
func (c *Catalog) Featured() []listing.Job {
	return listing.Featured(c.jobs, listing.FeaturedLimit)
}

// Stats returns the marketing figures.
func (c *Catalog) Stats() Stats {
	return c.stats
}
