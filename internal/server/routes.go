package server

import (
	"log/slog"
	"net/http"
)

// Config contains server configuration options.
type Config struct {
	// AllowedOrigins is the list of allowed CORS origins.
	AllowedOrigins []string
	// SubmitRate is the sustained number of submissions per second allowed per client.
	SubmitRate float64
	// SubmitBurst is the number of submissions a client may make at once.
	SubmitBurst int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
		SubmitRate:     5,
		SubmitBurst:    10,
	}
}

// NewRouter creates a new HTTP router with all routes configured.
// It uses Go 1.22+ ServeMux with method-based routing.
func NewRouter(h *Handlers, logger *slog.Logger, cfg Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	// Public job board
	mux.HandleFunc("GET /home", h.Home)
	mux.HandleFunc("GET /jobs", h.ListJobs)
	mux.HandleFunc("GET /jobs/filters", h.FilterOptions)
	mux.HandleFunc("GET /jobs/{id}", h.GetJob)
	mux.HandleFunc("POST /jobs/{id}/apply", h.ApplyToJob)
	mux.HandleFunc("POST /jobs/{id}/save", h.SaveJob)
	mux.HandleFunc("POST /contact", h.Contact)
	mux.HandleFunc("POST /register/jobseeker", h.RegisterJobSeeker)
	mux.HandleFunc("POST /register/employer", h.RegisterEmployer)
	mux.HandleFunc("POST /login", h.Login)

	// Employer portal
	mux.HandleFunc("GET /employer/dashboard", h.Dashboard)
	mux.HandleFunc("GET /employer/profile", h.GetProfile)
	mux.HandleFunc("PUT /employer/profile", h.UpdateProfile)
	mux.HandleFunc("POST /employer/password", h.ChangePassword)
	mux.HandleFunc("GET /employer/jobs", h.ListListings)
	mux.HandleFunc("POST /employer/jobs", h.PostJob)
	mux.HandleFunc("POST /employer/jobs/{id}/close", h.CloseListing)
	mux.HandleFunc("POST /employer/jobs/{id}/duplicate", h.DuplicateListing)
	mux.HandleFunc("GET /employer/applications", h.ListApplications)
	mux.HandleFunc("POST /employer/applications/{id}/shortlist", h.ShortlistApplication)
	mux.HandleFunc("POST /employer/applications/{id}/reject", h.RejectApplication)

	// Apply middleware chain
	chain := ChainMiddleware(
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(cfg.AllowedOrigins),
		RateLimitMiddleware(cfg.SubmitRate, cfg.SubmitBurst, logger),
	)

	return chain(mux)
}
