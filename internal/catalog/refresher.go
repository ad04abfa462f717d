package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Refresher reloads a Store on a cron schedule.
type Refresher struct {
	cron   *cron.Cron
	store  *Store
	spec   string
	logger *slog.Logger
}

// NewRefresher creates a Refresher for spec, e.g. "@every 10m" or "0 */6 * * *".
func NewRefresher(store *Store, spec string, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		cron:   cron.New(),
		store:  store,
		spec:   spec,
		logger: logger,
	}
}

// Start registers the reload job and starts the scheduler.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		// Failures are logged by the store; the old snapshot keeps serving.
		_ = r.store.Reload(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule catalog refresh %q: %w", r.spec, err)
	}

	r.cron.Start()
	r.logger.Info("catalog refresh scheduled", slog.String("spec", r.spec))
	return nil
}

// Stop halts the scheduler and waits for a running reload to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("catalog refresh stopped")
}
