// Package server provides the HTTP server for the job board API.
// It includes handlers, middleware, routes, and DTOs separated from domain types.
package server

import (
	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/catalog"
	"github.com/maauso/guardjobs-api/internal/employer"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// ApplyRequest is the job seeker's application form.
type ApplyRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required,min=10,max=15"`
	Email        string `json:"email" validate:"omitempty,email"`
	DateOfBirth  string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Address      string `json:"address"`
	Experience   string `json:"experience" validate:"required,experience"`
	Availability string `json:"availability" validate:"required"`
}

// ContactRequest is the contact page form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// RegisterJobSeekerRequest is the job seeker registration form.
type RegisterJobSeekerRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required,min=10,max=15"`
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Location   string `json:"location" validate:"required,city"`
	Experience string `json:"experience" validate:"required,experience"`
}

// RegisterEmployerRequest is the employer registration form.
type RegisterEmployerRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10,max=15"`
	Password      string `json:"password" validate:"required,min=6"`
	Address       string `json:"address" validate:"required"`
	Industry      string `json:"industry" validate:"required,industry"`
	CompanySize   string `json:"company_size" validate:"required,company_size"`
	GSTNumber     string `json:"gst_number"`
	PANNumber     string `json:"pan_number"`
	Website       string `json:"website" validate:"omitempty,url"`
}

// LoginRequest is the login form shared by both portals.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=jobseeker employer"`
	RememberMe bool   `json:"remember_me"`
}

// PostJobRequest is the employer's post-a-job form.
type PostJobRequest struct {
	Title            string   `json:"title" validate:"required"`
	Category         string   `json:"category"`
	Type             string   `json:"type" validate:"required,oneof=Full-time Part-time Contract"`
	Shift            string   `json:"shift" validate:"required,oneof=Day Night Rotational"`
	City             string   `json:"city" validate:"required,city"`
	Address          string   `json:"address"`
	SalaryMin        int      `json:"salary_min" validate:"required,gt=0"`
	SalaryMax        int      `json:"salary_max" validate:"required,gtefield=SalaryMin"`
	Description      string   `json:"description" validate:"required"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Experience       string   `json:"experience" validate:"required,experience"`
	AgeMin           int      `json:"age_min" validate:"omitempty,min=18"`
	AgeMax           int      `json:"age_max" validate:"omitempty,gtefield=AgeMin"`
	Education        string   `json:"education"`
	Benefits         []string `json:"benefits"`
	Positions        int      `json:"positions" validate:"omitempty,min=1"`
	Featured         bool     `json:"featured"`
	Deadline         string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// ProfileRequest is the company information section of the settings page.
type ProfileRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Industry      string `json:"industry" validate:"required,industry"`
	CompanySize   string `json:"company_size" validate:"required,company_size"`
	GSTNumber     string `json:"gst_number"`
	PANNumber     string `json:"pan_number"`
	Website       string `json:"website" validate:"omitempty,url"`
}

// PasswordRequest is the change-password section of the settings page.
type PasswordRequest struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required,min=6"`
	Confirm string `json:"confirm" validate:"required"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
	// Jobs is the number of jobs in the catalog snapshot being served.
	Jobs int `json:"jobs"`
}

// HomeResponse is the home page content.
type HomeResponse struct {
	Featured   []listing.Job `json:"featured"`
	Stats      catalog.Stats `json:"stats"`
	Categories []string      `json:"categories"`
}

// JobListResponse is the job search result.
type JobListResponse struct {
	// Count is the number of jobs shown ("Showing N jobs").
	Count    int              `json:"count"`
	Criteria listing.Criteria `json:"criteria"`
	Jobs     []listing.Job    `json:"jobs"`
}

// FilterOptionsResponse lists the choices offered by the job search filters.
type FilterOptionsResponse struct {
	Cities           []string          `json:"cities"`
	Types            []listing.Type    `json:"types"`
	Shifts           []listing.Shift   `json:"shifts"`
	ExperienceLevels []string          `json:"experience_levels"`
	Sorts            []listing.SortKey `json:"sorts"`
	Defaults         listing.Criteria  `json:"defaults"`
}

// JobDetailResponse is a job with its similar jobs.
type JobDetailResponse struct {
	Job     listing.Job   `json:"job"`
	Similar []listing.Job `json:"similar"`
}

// ReceiptResponse confirms a simulated form submission.
type ReceiptResponse struct {
	Receipt submission.Receipt `json:"receipt"`
}

// ApplyResponse confirms a job application.
type ApplyResponse struct {
	ApplicationID string             `json:"application_id"`
	JobID         string             `json:"job_id"`
	JobTitle      string             `json:"job_title"`
	Receipt       submission.Receipt `json:"receipt"`
}

// ApplicationListResponse is the employer's application list.
type ApplicationListResponse struct {
	Count        int                       `json:"count"`
	Stats        application.Stats         `json:"stats"`
	Applications []application.Application `json:"applications"`
}

// ApplicationActionResponse is the outcome of a review action.
type ApplicationActionResponse struct {
	Application application.Application `json:"application"`
	Receipt     submission.Receipt      `json:"receipt"`
}

// ListingListResponse is the employer's job list.
type ListingListResponse struct {
	Count    int                `json:"count"`
	Listings []employer.Listing `json:"listings"`
}

// ListingActionResponse is the outcome of an action on a listing.
type ListingActionResponse struct {
	Listing employer.Listing   `json:"listing"`
	Receipt submission.Receipt `json:"receipt"`
}

// ProfileResponse is the settings page content.
type ProfileResponse struct {
	Profile       employer.Profile `json:"profile"`
	IndustryTypes []string         `json:"industry_types"`
	CompanySizes  []string         `json:"company_sizes"`
}

// SettingsResponse confirms saved company information.
type SettingsResponse struct {
	Profile employer.Profile   `json:"profile"`
	Receipt submission.Receipt `json:"receipt"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Code is the error code for programmatic handling.
	Code string `json:"code"`
}
