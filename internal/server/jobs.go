package server

import (
	"log/slog"
	"net/http"

	"github.com/maauso/guardjobs-api/internal/application"
	"github.com/maauso/guardjobs-api/internal/listing"
	"github.com/maauso/guardjobs-api/internal/submission"
)

// Home handles GET /home requests.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	cat := h.catalog.Current()
	writeJSON(w, http.StatusOK, HomeResponse{
		Featured:   cat.Featured(),
		Stats:      cat.Stats(),
		Categories: listing.Categories,
	})
}

// ListJobs handles GET /jobs requests. Criteria come from the query string.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	criteria, err := listing.CriteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_QUERY")
		return
	}

	jobs := listing.View(h.catalog.Current().Jobs(), criteria)
	writeJSON(w, http.StatusOK, JobListResponse{
		Count:    len(jobs),
		Criteria: criteria,
		Jobs:     jobs,
	})
}

// FilterOptions handles GET /jobs/filters requests.
func (h *Handlers) FilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FilterOptionsResponse{
		Cities:           listing.Cities,
		Types:            listing.JobTypes,
		Shifts:           listing.Shifts,
		ExperienceLevels: listing.ExperienceLevels,
		Sorts:            listing.SortKeys,
		Defaults:         listing.DefaultCriteria(),
	})
}

// GetJob handles GET /jobs/{id} requests.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	cat := h.catalog.Current()
	job, err := cat.Find(r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, JobDetailResponse{
		Job:     job,
		Similar: listing.Similar(cat.Jobs(), job, listing.SimilarLimit),
	})
}

// ApplyToJob handles POST /jobs/{id}/apply requests.
func (h *Handlers) ApplyToJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if _, err := h.catalog.Current().Find(jobID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	var req ApplyRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.applications.Apply(r.Context(), jobID, application.ApplyInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		DateOfBirth:  req.DateOfBirth,
		Address:      req.Address,
		Experience:   req.Experience,
		Availability: req.Availability,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApplyResponse{
		ApplicationID: res.ApplicationID,
		JobID:         res.JobID,
		JobTitle:      res.JobTitle,
		Receipt:       res.Receipt,
	})
}

// SaveJob handles POST /jobs/{id}/save requests.
func (h *Handlers) SaveJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if _, err := h.catalog.Current().Find(jobID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.logger.Debug("job saved", slog.String("job_id", jobID))
	h.submit(w, r, submission.KindSaveJob)
}
