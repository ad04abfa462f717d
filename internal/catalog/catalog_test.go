package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maauso/guardjobs-api/internal/listing"
)

func TestDefault_SeedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 8, c.Len())
	assert.Equal(t, 150, c.Stats().ActiveJobs)
	assert.Equal(t, 45, c.Stats().CompaniesServed)

	for _, job := range c.Jobs() {
		assert.LessOrEqual(t, job.SalaryMin, job.SalaryMax, job.ID)
		assert.True(t, job.Type.IsValid(), job.ID)
		assert.True(t, job.Shift.IsValid(), job.ID)
	}
}

func TestDefault_SeedScenarios(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	jobs := c.Jobs()

	t.Run("delhi", func(t *testing.T) {
		got := listing.View(jobs, listing.DefaultCriteria().WithCity("Delhi"))
		var titles []string
		for _, j := range got {
			titles = append(titles, j.Title)
		}
		assert.Equal(t, []string{"Security Guard", "Bouncer", "CCTV Operator", "Event Security", "Security Supervisor"}, titles)
	})

	t.Run("watchman", func(t *testing.T) {
		got := listing.View(jobs, listing.DefaultCriteria().WithSearch("WATCHMAN"))
		require.Len(t, got, 1)
		assert.Equal(t, "Night Watchman", got[0].Title)
	})

	t.Run("salary high", func(t *testing.T) {
		got := listing.View(jobs, listing.DefaultCriteria().WithSort(listing.SortSalaryHigh))
		require.NotEmpty(t, got)
		assert.Equal(t, "Event Security", got[0].Title)
		assert.Equal(t, 36000, got[0].SalaryMax)
	})

	t.Run("default band keeps every seed", func(t *testing.T) {
		assert.Len(t, listing.View(jobs, listing.DefaultCriteria()), len(jobs))
	})

	t.Run("contained band", func(t *testing.T) {
		got := listing.View(jobs, listing.DefaultCriteria().WithSalaryRange(20000, 25000))
		for _, j := range got {
			assert.GreaterOrEqual(t, j.SalaryMin, 20000)
			assert.LessOrEqual(t, j.SalaryMax, 25000)
		}
	})
}

func TestCatalog_FindAndFeatured(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	job, err := c.Find("3")
	require.NoError(t, err)
	assert.Equal(t, "Bouncer", job.Title)
	assert.Len(t, job.Responsibilities, 5)

	_, err = c.Find("99")
	assert.ErrorIs(t, err, ErrJobNotFound)

	featured := c.Featured()
	require.Len(t, featured, 6)
	for _, j := range featured {
		assert.True(t, j.Featured)
		assert.NotEqual(t, "6", j.ID)
	}
}

func TestCatalog_JobsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	jobs := c.Jobs()
	jobs[0].Title = "changed"

	again := c.Jobs()
	assert.Equal(t, "Security Guard", again[0].Title)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "no jobs",
			doc:  "stats:\n  active_jobs: 1\n",
			want: ErrEmptyDocument,
		},
		{
			name: "duplicate id",
			doc: `jobs:
  - {id: "1", title: A, city: Delhi, salary_min: 1, salary_max: 2, type: Full-time, shift: Day}
  - {id: "1", title: B, city: Delhi, salary_min: 1, salary_max: 2, type: Full-time, shift: Day}
`,
			want: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"inverted band": `jobs:
  - {id: "1", title: A, city: Delhi, salary_min: 30000, salary_max: 20000, type: Full-time, shift: Day}
`,
		"unknown type": `jobs:
  - {id: "1", title: A, city: Delhi, salary_min: 1, salary_max: 2, type: Freelance, shift: Day}
`,
		"unknown shift": `jobs:
  - {id: "1", title: A, city: Delhi, salary_min: 1, salary_max: 2, type: Contract, shift: Evening}
`,
		"missing id": `jobs:
  - {title: A, city: Delhi, salary_min: 1, salary_max: 2, type: Contract, shift: Day}
`,
		"not yaml": "jobs: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_AcceptsUnparseableDate(t *testing.T) {
	c, err := Parse([]byte(`jobs:
  - {id: "1", title: A, city: Delhi, salary_min: 1, salary_max: 2, type: Contract, shift: Day, posted_date: soon}
`))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

// mapSource serves documents from memory.
type mapSource map[string]string

func (m mapSource) Open(_ context.Context, key string) (io.ReadCloser, error) {
	doc, ok := m[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(strings.NewReader(doc)), nil
}

func TestStore_Reload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	initial, err := Default()
	require.NoError(t, err)

	src := mapSource{"catalog.yaml": `jobs:
  - {id: "x", title: Patrol Officer, city: Noida, salary_min: 20000, salary_max: 26000, type: Contract, shift: Night}
`}
	store := NewStore(initial, src, "catalog.yaml", logger)
	assert.Same(t, initial, store.Current())

	require.NoError(t, store.Reload(context.Background()))
	assert.Equal(t, 1, store.Current().Len())

	src["catalog.yaml"] = "jobs: ["
	err = store.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, store.Current().Len(), "failed reload keeps previous snapshot")

	delete(src, "catalog.yaml")
	assert.Error(t, store.Reload(context.Background()))
}

func TestLoad_FromSeedFS(t *testing.T) {
	data, err := Seed.ReadFile(SeedKey)
	require.NoError(t, err)

	c, err := Load(context.Background(), mapSource{"k": string(bytes.TrimSpace(data))}, "k")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Len())
}

func TestRefresher_InvalidSpec(t *testing.T) {
	initial, err := Default()
	require.NoError(t, err)
	store := NewStore(initial, mapSource{}, "k", nil)

	r := NewRefresher(store, "not a spec", nil)
	assert.Error(t, r.Start(context.Background()))
}

func TestRefresher_StartStop(t *testing.T) {
	initial, err := Default()
	require.NoError(t, err)
	store := NewStore(initial, mapSource{}, "k", nil)

	r := NewRefresher(store, "@every 1h", nil)
	require.NoError(t, r.Start(context.Background()))
	r.Stop()

	assert.Same(t, initial, store.Current())
}
