package server

import (
	"log/slog"
	"net/http"

	"github.com/maauso/guardjobs-api/internal/submission"
)

// Contact handles POST /contact requests.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.logger.Info("contact message received", slog.String("subject", req.Subject))
	h.submit(w, r, submission.KindContact)
}

// RegisterJobSeeker handles POST /register/jobseeker requests.
func (h *Handlers) RegisterJobSeeker(w http.ResponseWriter, r *http.Request) {
	var req RegisterJobSeekerRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.logger.Info("job seeker registered",
		slog.String("location", req.Location),
		slog.String("experience", req.Experience),
	)
	h.submit(w, r, submission.KindRegisterSeeker)
}

// RegisterEmployer handles POST /register/employer requests.
func (h *Handlers) RegisterEmployer(w http.ResponseWriter, r *http.Request) {
	var req RegisterEmployerRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.logger.Info("employer registered",
		slog.String("company", req.CompanyName),
		slog.String("industry", req.Industry),
	)
	h.submit(w, r, submission.KindRegisterEmployer)
}

// Login handles POST /login requests. Any well-formed credentials succeed.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.submit(w, r, submission.KindLogin)
}
