package server

import (
	"net/http"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/employer"
	"github.com/maauso/guardjobs-api/internal/listing"
)

// Dashboard handles GET /employer/dashboard requests.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.employer.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetProfile handles GET /employer/profile requests.
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProfileResponse{
		Profile:       h.employer.Profile(),
		IndustryTypes: employer.IndustryTypes,
		CompanySizes:  employer.CompanySizes,
	})
}

// UpdateProfile handles PUT /employer/profile requests.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.employer.SaveSettings(r.Context(), employer.Profile{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Industry:      req.Industry,
		CompanySize:   req.CompanySize,
		GSTNumber:     req.GSTNumber,
		PANNumber:     req.PANNumber,
		Website:       req.Website,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsResponse{Profile: res.Profile, Receipt: res.Receipt})
}

// ChangePassword handles POST /employer/password requests.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	receipt, err := h.employer.ChangePassword(r.Context(), employer.PasswordChange{
		Current: req.Current,
		New:     req.New,
		Confirm: req.Confirm,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ReceiptResponse{Receipt: receipt})
}

// ListListings handles GET /employer/jobs requests.
// Query parameters: search (title or location) and status (all, active, closed, draft).
func (h *Handlers) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listings, err := h.employer.Listings(r.Context(), q.Get("search"), q.Get("status"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListingListResponse{Count: len(listings), Listings: listings})
}

// PostJob handles POST /employer/jobs requests.
func (h *Handlers) PostJob(w http.ResponseWriter, r *http.Request) {
	var req PostJobRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.employer.PostJob(r.Context(), employer.JobDraft{
		Title:            req.Title,
		Category:         req.Category,
		Type:             listing.Type(req.Type),
		Shift:            listing.Shift(req.Shift),
		City:             req.City,
		Address:          req.Address,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Experience:       req.Experience,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Education:        req.Education,
		Benefits:         req.Benefits,
		Positions:        req.Positions,
		Featured:         req.Featured,
		Deadline:         req.Deadline,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ListingActionResponse{Listing: res.Listing, Receipt: res.Receipt})
}

// CloseListing handles POST /employer/jobs/{id}/close requests.
func (h *Handlers) CloseListing(w http.ResponseWriter, r *http.Request) {
	res, err := h.employer.CloseJob(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListingActionResponse{Listing: res.Listing, Receipt: res.Receipt})
}

// DuplicateListing handles POST /employer/jobs/{id}/duplicate requests.
func (h *Handlers) DuplicateListing(w http.ResponseWriter, r *http.Request) {
	res, err := h.employer.DuplicateJob(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ListingActionResponse{Listing: res.Listing, Receipt: res.Receipt})
}

// ListApplications handles GET /employer/applications requests.
// Query parameters: search (name or email), status, and job.
func (h *Handlers) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := q.Get("status")
	if status != "" && status != application.StatusAll && !application.Status(status).IsValid() {
		writeError(w, http.StatusBadRequest, "unknown application status: "+status, "INVALID_QUERY")
		return
	}

	apps, err := h.applications.List(r.Context(), application.Filter{
		Search: q.Get("search"),
		Status: status,
		JobID:  q.Get("job"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	stats, err := h.applications.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ApplicationListResponse{
		Count:        len(apps),
		Stats:        stats,
		Applications: apps,
	})
}

// ShortlistApplication handles POST /employer/applications/{id}/shortlist requests.
func (h *Handlers) ShortlistApplication(w http.ResponseWriter, r *http.Request) {
	res, err := h.applications.Shortlist(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApplicationActionResponse{Application: res.Application, Receipt: res.Receipt})
}

// RejectApplication handles POST /employer/applications/{id}/reject requests.
func (h *Handlers) RejectApplication(w http.ResponseWriter, r *http.Request) {
	res, err := h.applications.Reject(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ApplicationActionResponse{Application: res.Application, Receipt: res.Receipt})
}
