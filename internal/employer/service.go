package employer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// JobSource provides the current job collection.
type JobSource interface {
	Jobs() []listing.Job
}

// ApplicationSource lists applications and counts them per job.
type ApplicationSource interface {
	List(ctx context.Context, f application.Filter) ([]application.Application, error)
	CountByJob(ctx context.Context) (map[string]int, error)
}

// Submitter simulates the round trip of a form submission.
type Submitter interface {
	Submit(ctx context.Context, kind submission.Kind) (submission.Receipt, error)
}

// JobDraft is the post-a-job form.
type JobDraft struct {
	Title            string
	Category         string
	Type             listing.Type
	Shift            listing.Shift
	City             string
	Address          string
	SalaryMin        int
	SalaryMax        int
	Description      string
	Responsibilities []string
	Requirements     []string
	Experience       string
	AgeMin           int
	AgeMax           int
	Education        string
	Benefits         []string
	Positions        int
	Featured         bool
	Deadline         string
}

// PasswordChange is the change-password form.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// ListingResult is the outcome of an action on a listing.
// Listing is what the action would produce; nothing is stored.
type ListingResult struct {
	Listing Listing
	Receipt submission.Receipt
}

// SettingsResult is the outcome of saving the company profile.
type SettingsResult struct {
	Profile Profile
	Receipt submission.Receipt
}

// Service implements the employer portal use cases.
type Service struct {
	jobs      JobSource
	apps      ApplicationSource
	submitter Submitter
	logger    *slog.Logger
	now       func() time.Time
}

// ServiceOption is a function that configures a Service.
type ServiceOption func(*Service)

// WithClock sets the clock used to date new listings.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(jobs JobSource, apps ApplicationSource, submitter Submitter, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		jobs:      jobs,
		apps:      apps,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns the signed-in employer's profile.
func (s *Service) Profile() Profile {
	return DemoProfile()
}

// Dashboard builds the employer's landing page.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	apps, err := s.apps.List(ctx, application.Filter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("list applications: %w", err)
	}
	return BuildDashboard(s.jobs.Jobs(), apps), nil
}

// Listings returns the employer's listings filtered by search and status.
func (s *Service) Listings(ctx context.Context, search, status string) ([]Listing, error) {
	all, err := s.allListings(ctx)
	if err != nil {
		return nil, err
	}
	return FilterListings(all, search, status), nil
}

func (s *Service) allListings(ctx context.Context) ([]Listing, error) {
	counts, err := s.apps.CountByJob(ctx)
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	return Listings(s.jobs.Jobs(), counts), nil
}

func (s *Service) findListing(ctx context.Context, id string) (Listing, error) {
	all, err := s.allListings(ctx)
	if err != nil {
		return Listing{}, err
	}
	for _, l := range all {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, fmt.Errorf("listing %s: %w", id, catalog.ErrJobNotFound)
}

// PostJob publishes a new listing.
func (s *Service) PostJob(ctx context.Context, d JobDraft) (*ListingResult, error) {
	receipt, err := s.submitter.Submit(ctx, submission.KindPostJob)
	if err != nil {
		return nil, fmt.Errorf("post job: %w", err)
	}

	job := d.toJob(uuid.NewString(), s.now())
	s.logger.Info("job posted",
		slog.String("job_id", job.ID),
		slog.String("title", job.Title),
		slog.String("city", job.City),
	)
	return &ListingResult{
		Listing: Listing{Job: job, Status: ListingActive},
		Receipt: receipt,
	}, nil
}

// CloseJob closes an active listing.
func (s *Service) CloseJob(ctx context.Context, id string) (*ListingResult, error) {
	l, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status != ListingActive {
		return nil, fmt.Errorf("close %s (%s): %w", id, l.Status, ErrListingClosed)
	}

	receipt, err := s.submitter.Submit(ctx, submission.KindCloseJob)
	if err != nil {
		return nil, fmt.Errorf("close job %s: %w", id, err)
	}

	l.Status = ListingClosed
	s.logger.Info("job closed", slog.String("job_id", id))
	return &ListingResult{Listing: l, Receipt: receipt}, nil
}

// DuplicateJob copies a listing into a new draft without applications.
func (s *Service) DuplicateJob(ctx context.Context, id string) (*ListingResult, error) {
	l, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	receipt, err := s.submitter.Submit(ctx, submission.KindDuplicateJob)
	if err != nil {
		return nil, fmt.Errorf("duplicate job %s: %w", id, err)
	}

	dup := Listing{Job: l.Job, Status: ListingDraft}
	dup.ID = uuid.NewString()
	dup.PostedDate = s.now().Format(listing.DateLayout)
	s.logger.Info("job duplicated",
		slog.String("job_id", id),
		slog.String("draft_id", dup.ID),
	)
	return &ListingResult{Listing: dup, Receipt: receipt}, nil
}

// SaveSettings submits updated company information. The account ID and
// creation date cannot be changed.
func (s *Service) SaveSettings(ctx context.Context, p Profile) (*SettingsResult, error) {
	receipt, err := s.submitter.Submit(ctx, submission.KindSettings)
	if err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	current := DemoProfile()
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	s.logger.Info("settings saved", slog.String("company", p.CompanyName))
	return &SettingsResult{Profile: p, Receipt: receipt}, nil
}

// ChangePassword submits a password change. The confirmation is checked
// before anything is sent.
func (s *Service) ChangePassword(ctx context.Context, c PasswordChange) (submission.Receipt, error) {
	if c.New != c.Confirm {
		return submission.Receipt{}, ErrPasswordMismatch
	}

	receipt, err := s.submitter.Submit(ctx, submission.KindPassword)
	if err != nil {
		return submission.Receipt{}, fmt.Errorf("change password: %w", err)
	}
	s.logger.Info("password changed")
	return receipt, nil
}

func (d JobDraft) toJob(id string, now time.Time) listing.Job {
	location := d.City
	if d.Address != "" {
		location = d.Address + ", " + d.City
	}

	var requirements []string
	if d.AgeMin > 0 && d.AgeMax > 0 {
		requirements = append(requirements, fmt.Sprintf("Age between %d-%d years", d.AgeMin, d.AgeMax))
	}
	if d.Education != "" {
		requirements = append(requirements, d.Education)
	}
	requirements = append(requirements, nonBlank(d.Requirements)...)

	return listing.Job{
		ID:               id,
		Title:            d.Title,
		Location:         location,
		City:             d.City,
		Salary:           formatSalary(d.SalaryMin, d.SalaryMax),
		SalaryMin:        d.SalaryMin,
		SalaryMax:        d.SalaryMax,
		Type:             d.Type,
		Shift:            d.Shift,
		Experience:       d.Experience,
		PostedDate:       now.Format(listing.DateLayout),
		Description:      d.Description,
		Responsibilities: nonBlank(d.Responsibilities),
		Requirements:     requirements,
		Benefits:         nonBlank(d.Benefits),
		Featured:         d.Featured,
	}
}

// nonBlank drops the empty rows the form's add-item buttons leave behind.
func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// formatSalary renders a band the way the catalog does: "₹15,000 - ₹20,000/month".
func formatSalary(lo, hi int) string {
	return "₹" + groupThousands(lo) + " - ₹" + groupThousands(hi) + "/month"
}

func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
