// Package application provides the candidate Application record with its
// review status state machine, as seen from the employer portal, together
// with the repository interface for reading applications.
package application

import (
	"errors"
	"slices"
)

// Status represents where an application is in the employer's review.
type Status string

const (
	// StatusNew indicates the application has not been reviewed yet.
	StatusNew Status = "new"
	// StatusShortlisted indicates the candidate passed the first screening.
	StatusShortlisted Status = "shortlisted"
	// StatusInterviewed indicates the candidate has been interviewed.
	StatusInterviewed Status = "interviewed"
	// StatusHired indicates the candidate was hired.
	StatusHired Status = "hired"
	// StatusRejected indicates the application was turned down.
	StatusRejected Status = "rejected"
)

// Statuses lists every status in review order.
var Statuses = []Status{StatusNew, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected}

// IsValid returns true if the status is known.
func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

// ErrInvalidTransition is returned when an invalid status transition is attempted.
var ErrInvalidTransition = errors.New("invalid status transition")

// validTransitions defines which status transitions are allowed.
var validTransitions = map[Status][]Status{
	StatusNew:         {StatusShortlisted, StatusInterviewed, StatusRejected},
	StatusShortlisted: {StatusInterviewed, StatusHired, StatusRejected},
	StatusInterviewed: {StatusShortlisted, StatusHired, StatusRejected},
	StatusHired:       {},
	// A rejected candidate can be reconsidered.
	StatusRejected: {StatusShortlisted},
}

// canTransition checks if a transition from one status to another is valid.
func canTransition(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	return slices.Contains(allowed, to)
}

// Application is a candidate's application to one job.
type Application struct {
	ID             string `json:"id"`
	JobID          string `json:"job_id"`
	CandidateID    string `json:"candidate_id"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	CandidatePhone string `json:"candidate_phone"`
	// AppliedDate is an ISO calendar date.
	AppliedDate  string `json:"applied_date"`
	Status       Status `json:"status"`
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
	Notes        string `json:"notes,omitempty"`
}

// TransitionTo returns a copy of the application moved to status.
// The receiver is left unchanged. Returns ErrInvalidTransition if the move is not allowed.
func (a Application) TransitionTo(status Status) (Application, error) {
	if !canTransition(a.Status, status) {
		return a, ErrInvalidTransition
	}
	a.Status = status
	return a, nil
}

// Shortlist moves a new application to shortlisted.
func (a Application) Shortlist() (Application, error) {
	return a.TransitionTo(StatusShortlisted)
}

// Reject turns the application down.
func (a Application) Reject() (Application, error) {
	return a.TransitionTo(StatusRejected)
}

// IsTerminal returns true if no further transition is possible.
func (a Application) IsTerminal() bool {
	return len(validTransitions[a.Status]) == 0
}
