// Package submission simulates the network round trip behind every form on
// the job board. A submission waits a fixed delay and then succeeds; nothing
// is stored.
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which form was submitted.
type Kind string

const (
	// KindApply is a job seeker's application to a job.
	KindApply Kind = "apply"
	// KindSaveJob bookmarks a job for the job seeker.
	KindSaveJob Kind = "save_job"
	// KindContact is the contact page message.
	KindContact Kind = "contact"
	// KindRegisterSeeker is the job seeker registration form.
	KindRegisterSeeker Kind = "register_jobseeker"
	// KindRegisterEmployer is the employer registration form.
	KindRegisterEmployer Kind = "register_employer"
	// KindLogin is the login form of either portal.
	KindLogin Kind = "login"
	// KindPostJob publishes a new listing.
	KindPostJob Kind = "post_job"
	// KindCloseJob closes an active listing.
	KindCloseJob Kind = "close_job"
	// KindDuplicateJob copies a listing into a draft.
	KindDuplicateJob Kind = "duplicate_job"
	// KindSettings saves the employer's company information.
	KindSettings Kind = "settings"
	// KindPassword changes the employer's password.
	KindPassword Kind = "password"
	// KindShortlist moves an application to shortlisted.
	KindShortlist Kind = "shortlist"
	// KindReject turns an application down.
	KindReject Kind = "reject"
)

// DefaultDelay is the simulated latency of most forms.
const DefaultDelay = 1500 * time.Millisecond

// Outcome is the user-facing confirmation for a kind of submission.
type Outcome struct {
	Title   string
	Message string
}

var outcomes = map[Kind]Outcome{
	KindApply:            {"Application Submitted!", "Our team will review your application within 24-48 hours."},
	KindSaveJob:          {"Job Saved", "This job has been added to your saved jobs."},
	KindContact:          {"Message Sent!", "We'll get back to you within 24 hours."},
	KindRegisterSeeker:   {"Registration Successful!", "Welcome to SSPL Security. You can now apply for jobs."},
	KindRegisterEmployer: {"Registration Successful!", "Your employer account has been created. You can now post jobs."},
	KindLogin:            {"Login Successful!", "Welcome back!"},
	KindPostJob:          {"Job Posted Successfully!", "Your job listing is now live and visible to candidates."},
	KindCloseJob:         {"Job Closed", "The job listing has been closed."},
	KindDuplicateJob:     {"Job Duplicated", "A copy of the job has been created as a draft."},
	KindSettings:         {"Settings Saved", "Your company information has been updated."},
	KindPassword:         {"Password Updated", "Your password has been changed successfully."},
	KindShortlist:        {"Candidate Shortlisted", "The candidate has been moved to shortlisted."},
	KindReject:           {"Application Rejected", "The application has been rejected."},
}

// OutcomeFor returns the confirmation for kind.
func OutcomeFor(kind Kind) Outcome {
	if o, ok := outcomes[kind]; ok {
		return o
	}
	return Outcome{Title: "Submitted", Message: "Your request has been received."}
}

// Receipt confirms a simulated submission.
type Receipt struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Simulator resolves submissions after a fixed delay.
type Simulator struct {
	delay     time.Duration
	overrides map[Kind]time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Option is a function that configures a Simulator.
type Option func(*Simulator)

// WithDelay sets the delay applied to every kind without an override.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithKindDelay overrides the delay for a single kind.
func WithKindDelay(kind Kind, d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.overrides[kind] = d
		}
	}
}

// WithClock sets the clock used for receipt timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

// NewSimulator creates a Simulator. Settings and password changes resolve
// faster than the other forms, matching the portal's behaviour.
func NewSimulator(logger *slog.Logger, opts ...Option) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Simulator{
		delay: DefaultDelay,
		overrides: map[Kind]time.Duration{
			KindSettings: time.Second,
			KindPassword: time.Second,
		},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DelayFor returns the latency applied to kind.
func (s *Simulator) DelayFor(kind Kind) time.Duration {
	if d, ok := s.overrides[kind]; ok {
		return d
	}
	return s.delay
}

// Submit waits out the simulated latency and returns a receipt.
// It fails only if ctx is done first.
func (s *Simulator) Submit(ctx context.Context, kind Kind) (Receipt, error) {
	if d := s.DelayFor(kind); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("submit %s: %w", kind, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("submit %s: %w", kind, err)
	}

	outcome := OutcomeFor(kind)
	r := Receipt{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       outcome.Title,
		Message:     outcome.Message,
		SubmittedAt: s.now().UTC(),
	}

	s.logger.Debug("submission simulated",
		slog.String("kind", string(kind)),
		slog.String("receipt_id", r.ID),
	)
	return r, nil
}
