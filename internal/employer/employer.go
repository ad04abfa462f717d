// Package employer implements the employer portal: the company profile,
// the employer's job listings, the dashboard, and the simulated actions
// behind the portal's forms.
package employer

import (
	"errors"
	"strings"

	"github.com/maauso/guardjobs-api/internal/listing"
)

var (
	// ErrPasswordMismatch is returned when the new password and its confirmation differ.
	ErrPasswordMismatch = errors.New("new passwords do not match")
	// ErrListingClosed is returned when closing a listing that is not active.
	ErrListingClosed = errors.New("listing is not active")
)

// Profile is the employer's company information.
type Profile struct {
	ID            string `json:"id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Industry      string `json:"industry"`
	CompanySize   string `json:"company_size"`
	GSTNumber     string `json:"gst_number,omitempty"`
	PANNumber     string `json:"pan_number,omitempty"`
	Website       string `json:"website,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// DemoProfile returns the employer signed in to the portal.
func DemoProfile() Profile {
	return Profile{
		ID:            "emp-001",
		CompanyName:   "ABC Securities Pvt. Ltd.",
		ContactPerson: "Rajesh Kumar",
		Email:         "rajesh@abcsecurities.com",
		Phone:         "+91 9876543210",
		Address:       "Plot 42, Sector 18, Gurgaon",
		Industry:      "Commercial",
		CompanySize:   "51-200",
		CreatedAt:     "2024-01-15",
	}
}

// Options offered by the registration and settings forms.
var (
	IndustryTypes = []string{"Residential", "Commercial", "Industrial", "Event Management", "Corporate", "Other"}
	CompanySizes  = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
)

// ListingStatus is the state of one of the employer's job listings.
type ListingStatus string

const (
	// ListingActive is a listing visible to candidates.
	ListingActive ListingStatus = "active"
	// ListingClosed is a listing no longer accepting applications.
	ListingClosed ListingStatus = "closed"
	// ListingDraft is a listing not yet published.
	ListingDraft ListingStatus = "draft"

	// ListingStatusAll disables the status filter.
	ListingStatusAll = "all"
)

// Listing is a job as seen by the employer who posted it.
type Listing struct {
	listing.Job
	Status       ListingStatus `json:"status"`
	Applications int           `json:"applications"`
}

// statusAt assigns demo statuses by position in the catalog.
func statusAt(i int) ListingStatus {
	switch {
	case i%3 == 0:
		return ListingClosed
	case i%5 == 0:
		return ListingDraft
	default:
		return ListingActive
	}
}

// Listings decorates jobs with their status and application count.
// counts maps job ID to number of applications; missing IDs count zero.
func Listings(jobs []listing.Job, counts map[string]int) []Listing {
	out := make([]Listing, 0, len(jobs))
	for i, j := range jobs {
		out = append(out, Listing{
			Job:          j,
			Status:       statusAt(i),
			Applications: counts[j.ID],
		})
	}
	return out
}

// FilterListings keeps listings whose title or location contains search,
// case-insensitively, and whose status is status (or any, for "all" or empty).
func FilterListings(listings []Listing, search, status string) []Listing {
	q := strings.ToLower(search)
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.Location), q) {
			continue
		}
		if status != "" && status != ListingStatusAll && string(l.Status) != status {
			continue
		}
		out = append(out, l)
	}
	return out
}
