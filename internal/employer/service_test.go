package employer

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

var fixedNow = time.Date(2024, 12, 10, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *Service {
	t.Helper()

	jobs, err := catalog.Default()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	sim := submission.NewSimulator(logger,
		submission.WithDelay(0),
		submission.WithKindDelay(submission.KindSettings, 0),
		submission.WithKindDelay(submission.KindPassword, 0),
	)
	apps := application.NewService(application.NewSeededRepository(), jobs, sim, logger)
	return NewService(jobs, apps, sim, logger, WithClock(func() time.Time { return fixedNow }))
}

func TestService_Dashboard(t *testing.T) {
	svc := newTestService(t)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, d.Stats.TotalApplications)
	assert.Len(t, d.RecentApplications, 4)
}

func TestService_Listings(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Listings(context.Background(), "", "active")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, 1, got[0].Applications)
}

func TestService_PostJob(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.PostJob(context.Background(), JobDraft{
		Title:            "Armed Guard",
		Type:             listing.TypeFullTime,
		Shift:            listing.ShiftNight,
		City:             "Noida",
		Address:          "Sector 62",
		SalaryMin:        22000,
		SalaryMax:        28000,
		Responsibilities: []string{"Guard the vault", "  "},
		AgeMin:           25,
		AgeMax:           40,
		Education:        "12th pass",
	})
	require.NoError(t, err)

	job := res.Listing.Job
	_, parseErr := uuid.Parse(job.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, ListingActive, res.Listing.Status)
	assert.Equal(t, "Sector 62, Noida", job.Location)
	assert.Equal(t, "₹22,000 - ₹28,000/month", job.Salary)
	assert.Equal(t, "2024-12-10", job.PostedDate)
	assert.Equal(t, []string{"Guard the vault"}, job.Responsibilities)
	assert.Equal(t, []string{"Age between 25-40 years", "12th pass"}, job.Requirements)
	assert.Equal(t, submission.KindPostJob, res.Receipt.Kind)
}

func TestService_CloseJob(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.CloseJob(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, ListingClosed, res.Listing.Status)
	assert.Equal(t, "Job Closed", res.Receipt.Title)

	_, err = svc.CloseJob(ctx, "1")
	assert.ErrorIs(t, err, ErrListingClosed)

	_, err = svc.CloseJob(ctx, "99")
	assert.ErrorIs(t, err, catalog.ErrJobNotFound)
}

func TestService_DuplicateJob(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.DuplicateJob(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, ListingDraft, res.Listing.Status)
	assert.Equal(t, 0, res.Listing.Applications)
	assert.Equal(t, "Bouncer", res.Listing.Title)
	assert.NotEqual(t, "3", res.Listing.ID)
	assert.Equal(t, "2024-12-10", res.Listing.PostedDate)
}

func TestService_SaveSettings(t *testing.T) {
	svc := newTestService(t)

	p := svc.Profile()
	p.ID = "hijack"
	p.CompanyName = "ABC Security Services"

	res, err := svc.SaveSettings(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "emp-001", res.Profile.ID)
	assert.Equal(t, "ABC Security Services", res.Profile.CompanyName)
	assert.Equal(t, "Settings Saved", res.Receipt.Title)
}

func TestService_ChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ChangePassword(ctx, PasswordChange{Current: "old", New: "a", Confirm: "b"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	r, err := svc.ChangePassword(ctx, PasswordChange{Current: "old", New: "s3cret", Confirm: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Password Updated", r.Title)
}

func TestService_CancelledSubmission(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PostJob(ctx, JobDraft{Title: "x", City: "Delhi"})
	assert.ErrorIs(t, err, context.Canceled)
}
