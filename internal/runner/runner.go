// Package runner drives one digest run: traverse the catalog, format the
// report, deliver it.
package runner

//go:generate mockgen -destination=mocks/mock_deliverer.go -package=mocks . Deliverer

import (
	"context"
	"log/slog"

	"github.com/vmunix/plexdigest/internal/digest"
	"github.com/vmunix/plexdigest/internal/library"
	"github.com/vmunix/plexdigest/internal/webhook"
)

// Deliverer sends a finished report.
type Deliverer interface {
	Deliver(ctx context.Context, content, username string) (*webhook.Result, error)
}

// Config for a single run.
type Config struct {
	Username string // Display name sent with the report, verbatim
	DryRun   bool   // Build the report but do not deliver it
}

// Outcome describes a completed run.
type Outcome struct {
	Summaries []library.Summary
	Report    string
	Result    *webhook.Result // nil on a dry run
}

// Runner wires the aggregator and the sink together.
type Runner struct {
	catalog digest.Catalog
	sink    Deliverer
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. sink may be nil for dry runs.
func NewRunner(catalog digest.Catalog, sink Deliverer, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		catalog: catalog,
		sink:    sink,
		config:  cfg,
		logger:  logger,
	}
}

// Run performs the whole pipeline once, sequentially. A traversal failure
// stops the run before anything is delivered. Errors are *StageError.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	log := r.logger.With("component", "runner")

	summaries, err := digest.NewAggregator(r.catalog, r.logger).Aggregate(ctx)
	if err != nil {
		return nil, &StageError{Stage: StageTraverse, Err: err}
	}

	out := &Outcome{
		Summaries: summaries,
		Report:    digest.Format(summaries),
	}
	log.Info("report built", "libraries", len(summaries), "bytes", len(out.Report))

	if r.config.DryRun {
		log.Info("dry run, not delivering")
		return out, nil
	}

	res, err := r.sink.Deliver(ctx, out.Report, r.config.Username)
	if err != nil {
		return out, &StageError{Stage: StageDeliver, Err: err}
	}
	out.Result = res

	log.Info("report delivered", "status", res.StatusCode)
	return out, nil
}
