package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/meta"
	"github.com/odyssey-erp/supplyhub/internal/observability"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/overview"
	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
	"github.com/odyssey-erp/supplyhub/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger     *slog.Logger
	Config     *Config
	Services   *Services
	JobHandler *jobs.Handler
	Metrics    *observability.Metrics
}

// NewRouter constructs the chi.Router with the API routes under /api.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	svc := params.Services
	r.Route("/api", func(r chi.Router) {
		masterdata.NewHandler(params.Logger, svc.MasterData).MountRoutes(r)
		inventory.NewHandler(params.Logger, svc.Inventory).MountRoutes(r)
		orders.NewHandler(params.Logger, svc.Orders).MountRoutes(r)
		suppliers.NewHandler(params.Logger, svc.Suppliers).MountRoutes(r)
		overview.NewHandler(params.Logger, svc.Overview).MountRoutes(r)
		meta.NewHandler().MountRoutes(r)
	})

	jobHandler := params.JobHandler
	if jobHandler == nil {
		jobHandler = jobs.NewHandler(nil, params.Logger)
	}
	r.Route("/jobs", jobHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no route for "+r.URL.Path)
	})
	return r
}
