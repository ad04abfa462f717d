package employer

import (
	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/listing"
)

const (
	recentApplicationsLimit = 4
	dashboardJobsLimit      = 3
)

// DashboardStats are the header cards of the employer dashboard.
type DashboardStats struct {
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
	Shortlisted       int `json:"shortlisted"`
	Hired             int `json:"hired"`
}

// Dashboard is the employer's landing page.
type Dashboard struct {
	Stats              DashboardStats            `json:"stats"`
	RecentApplications []application.Application `json:"recent_applications"`
	Jobs               []listing.Job             `json:"jobs"`
}

// BuildDashboard summarises jobs and apps. ActiveJobs counts every job in
// the catalog.
func BuildDashboard(jobs []listing.Job, apps []application.Application) Dashboard {
	s := application.Summarise(apps)
	return Dashboard{
		Stats: DashboardStats{
			ActiveJobs:        len(jobs),
			TotalApplications: s.Total,
			Shortlisted:       s.Shortlisted,
			Hired:             s.Hired,
		},
		RecentApplications: apps[:min(recentApplicationsLimit, len(apps))],
		Jobs:               jobs[:min(dashboardJobsLimit, len(jobs))],
	}
}
