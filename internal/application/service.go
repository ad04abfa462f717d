package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maauso/guardjobs-api/internal/application/id"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// JobFinder looks up jobs by ID.
type JobFinder interface {
	Find(id string) (listing.Job, error)
}

// Submitter simulates the round trip of a form submission.
type Submitter interface {
	Submit(ctx context.Context, kind submission.Kind) (submission.Receipt, error)
}

// ApplyInput is a job seeker's application form.
type ApplyInput struct {
	Name         string
	Phone        string
	Email        string
	DateOfBirth  string
	Address      string
	Experience   string
	Availability string
}

// ApplyResult confirms a submitted application.
type ApplyResult struct {
	// ApplicationID is the reference shown to the candidate.
	ApplicationID string
	JobID         string
	JobTitle      string
	Receipt       submission.Receipt
}

// ActionResult is the outcome of an employer review action.
// Application holds the status the action leads to; it is not stored.
type ActionResult struct {
	Application Application
	Receipt     submission.Receipt
}

// Service implements the application use cases of both portals.
type Service struct {
	repo      Repository
	jobs      JobFinder
	submitter Submitter
	logger    *slog.Logger
	now       func() time.Time
}

// ServiceOption is a function that configures a Service.
type ServiceOption func(*Service)

// WithClock sets the clock used for application references.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(repo Repository, jobs JobFinder, submitter Submitter, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:      repo,
		jobs:      jobs,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply submits a candidate's application to jobID.
// Returns the catalog's not-found error if the job does not exist.
func (s *Service) Apply(ctx context.Context, jobID string, in ApplyInput) (*ApplyResult, error) {
	job, err := s.jobs.Find(jobID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.submitter.Submit(ctx, submission.KindApply)
	if err != nil {
		return nil, fmt.Errorf("apply to job %s: %w", jobID, err)
	}

	appID := id.Generate(job.ID, s.now())
	s.logger.Info("application submitted",
		slog.String("application_id", appID),
		slog.String("job_id", job.ID),
		slog.String("experience", in.Experience),
	)

	return &ApplyResult{
		ApplicationID: appID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Receipt:       receipt,
	}, nil
}

// List returns the applications matching f.
func (s *Service) List(ctx context.Context, f Filter) ([]Application, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(apps), nil
}

// Stats summarises every application, ignoring any filter.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Summarise(apps), nil
}

// CountByJob returns the number of applications per job ID.
func (s *Service) CountByJob(ctx context.Context) (map[string]int, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return CountByJob(apps), nil
}

// Get retrieves an application by ID.
func (s *Service) Get(ctx context.Context, appID string) (Application, error) {
	return s.repo.FindByID(ctx, appID)
}

// Shortlist moves an application to shortlisted.
func (s *Service) Shortlist(ctx context.Context, appID string) (*ActionResult, error) {
	return s.review(ctx, appID, StatusShortlisted, submission.KindShortlist)
}

// Reject turns an application down.
func (s *Service) Reject(ctx context.Context, appID string) (*ActionResult, error) {
	return s.review(ctx, appID, StatusRejected, submission.KindReject)
}

func (s *Service) review(ctx context.Context, appID string, to Status, kind submission.Kind) (*ActionResult, error) {
	app, err := s.repo.FindByID(ctx, appID)
	if err != nil {
		return nil, err
	}

	next, err := app.TransitionTo(to)
	if err != nil {
		s.logger.Warn("review action refused",
			slog.String("application_id", appID),
			slog.String("from", string(app.Status)),
			slog.String("to", string(to)),
		)
		return nil, fmt.Errorf("%s -> %s: %w", app.Status, to, err)
	}

	receipt, err := s.submitter.Submit(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("review application %s: %w", appID, err)
	}

	s.logger.Info("application reviewed",
		slog.String("application_id", appID),
		slog.String("status", string(next.Status)),
	)
	return &ActionResult{Application: next, Receipt: receipt}, nil
}
