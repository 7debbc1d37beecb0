package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/query"
)

// Invalidator marks cached queries stale.
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...query.Key) error
}

// Mutation describes one create or update.
type Mutation[T, R any] struct {
	Module     string
	Run        func(ctx context.Context, draft T) (R, error)
	Invalidate func(result R) []query.Key
	Success    notify.Notification
	Failure    notify.Notification
	// RedirectTo names the path to open after success. Nil stays put.
	RedirectTo func(result R) string
}

// Runner carries the collaborators every mutation reports to.
type Runner struct {
	queries   Invalidator
	notifier  notify.Notifier
	navigator Navigator
	logger    *slog.Logger
	outcomes  *prometheus.CounterVec
}

// NewRunner builds a Runner. notifier and navigator may be nil.
func NewRunner(queries Invalidator, notifier notify.Notifier, navigator Navigator, logger *slog.Logger) *Runner {
	if notifier == nil {
		notifier = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{queries: queries, notifier: notifier, navigator: navigator, logger: logger}
}

// WithMetrics counts mutation outcomes per module on reg.
func (r *Runner) WithMetrics(reg prometheus.Registerer) *Runner {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplyhub_mutations_total",
		Help: "Submitted mutations by module and outcome.",
	}, []string{"module", "outcome"})
	if err := reg.Register(outcomes); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			outcomes = already.ExistingCollector.(*prometheus.CounterVec)
		} else {
			r.logger.Warn("register mutation metrics", slog.Any("error", err))
			return r
		}
	}
	r.outcomes = outcomes
	return r
}

func (r *Runner) count(module, outcome string) {
	if r.outcomes != nil {
		r.outcomes.WithLabelValues(module, outcome).Inc()
	}
}

// Submit validates the form draft and runs m. Invalid drafts stay in
// editing with field messages and never reach m.Run. A failed run returns
// the form to editing with the submitted values, sends one error
// notification and invalidates nothing. A successful run invalidates the
// keys named by m, returns the form to viewing, notifies and redirects.
func Submit[T, R any](ctx context.Context, r *Runner, f *Form[T], m Mutation[T, R]) (R, error) {
	var zero R
	draft, err := f.begin()
	if err != nil {
		return zero, err
	}

	result, err := m.Run(ctx, draft)
	if err != nil {
		r.count(m.Module, "failure")
		r.logger.Debug("mutation failed", slog.String("module", m.Module), slog.Any("error", err))
		if f.fail(err) {
			r.notifier.Notify(ctx, m.Failure)
		}
		return zero, err
	}
	r.count(m.Module, "success")

	if m.Invalidate != nil {
		if err := r.queries.Invalidate(ctx, m.Invalidate(result)...); err != nil {
			r.logger.Warn("invalidate after mutation", slog.String("module", m.Module), slog.Any("error", err))
		}
	}
	if !f.succeed(draft) {
		return result, nil
	}
	r.notifier.Notify(ctx, m.Success)
	if m.RedirectTo != nil && r.navigator != nil {
		if path := m.RedirectTo(result); path != "" {
			r.navigator.Navigate(path)
		}
	}
	return result, nil
}
