// Package dashboard is the client side of the supply-chain dashboard: one
// view per module that loads its collection through the query cache,
// narrows it with the module's filter criteria, and edits records through
// validated forms and mutations.
package dashboard

import (
	"context"
	"net/url"

	"github.com/odyssey-erp/supplyhub/internal/dashboard/filterstore"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/workflow"
)

// API is the request surface views call into.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// Deps are the collaborators shared by every view.
type Deps struct {
	API     API
	Queries *query.Client
	Runner  *workflow.Runner
}

// moduleDef describes one module to the generic View.
type moduleDef[R, In any, F filterstore.Mergeable[F, P], P any] struct {
	module   string
	noun     string
	defaults func() F
	apply    func([]R, F) []R
	parse    func(url.Values) P
	id       func(R) string
	input    func(R) In
	validate func(In) shared.FieldErrors
	draft    func(ctx context.Context, api API) (In, error)
}

// View is the list, detail and form logic of one module.
type View[R, In any, F filterstore.Mergeable[F, P], P any] struct {
	deps    Deps
	def     moduleDef[R, In, F, P]
	Filters *filterstore.Store[F, P]
}

func newView[R, In any, F filterstore.Mergeable[F, P], P any](deps Deps, s moduleDef[R, In, F, P]) *View[R, In, F, P] {
	return &View[R, In, F, P]{deps: deps, def: s, Filters: filterstore.New[F, P](s.defaults)}
}

// Module returns the module name.
func (v *View[R, In, F, P]) Module() string {
	return v.def.module
}

// Mount resets the filter criteria to their defaults.
func (v *View[R, In, F, P]) Mount() {
	v.Filters.Reset()
}

// SetFilters merges a partial filter update.
func (v *View[R, In, F, P]) SetFilters(patch P) F {
	return v.Filters.Set(patch)
}

// SetFiltersFromQuery merges filters given as query parameters.
func (v *View[R, In, F, P]) SetFiltersFromQuery(values url.Values) F {
	return v.Filters.SetFromQuery(values, v.def.parse)
}

func (v *View[R, In, F, P]) collectionPath() string {
	return "/api/" + v.def.module
}

func (v *View[R, In, F, P]) recordPath(id string) string {
	return "/api/" + v.def.module + "/" + url.PathEscape(id)
}

// Collection loads every record of the module.
func (v *View[R, In, F, P]) Collection(ctx context.Context) query.Result[[]R] {
	return query.Fetch(ctx, v.deps.Queries, query.ModuleKey(v.def.module), func(ctx context.Context) ([]R, error) {
		var out []R
		err := v.deps.API.Get(ctx, v.collectionPath(), &out)
		return out, err
	})
}

// Visible loads the collection and narrows it with the current filters.
// The returned result keeps the collection's state.
func (v *View[R, In, F, P]) Visible(ctx context.Context) query.Result[[]R] {
	res := v.Collection(ctx)
	if res.HasData {
		res.Data = v.def.apply(res.Data, v.Filters.Get())
	}
	return res
}

// Record loads one record. A missing record yields StateError with an
// error matching transport.IsNotFound.
func (v *View[R, In, F, P]) Record(ctx context.Context, id string) query.Result[R] {
	return query.Fetch(ctx, v.deps.Queries, query.RecordKey(v.def.module, id), func(ctx context.Context) (R, error) {
		var out R
		err := v.deps.API.Get(ctx, v.recordPath(id), &out)
		return out, err
	})
}

// EditForm opens a read-only form on record.
func (v *View[R, In, F, P]) EditForm(record R) *workflow.Form[In] {
	return workflow.NewEditForm(v.def.input(record), v.def.validate)
}

// CreateForm opens a form in editing with the module's defaults.
func (v *View[R, In, F, P]) CreateForm(ctx context.Context) (*workflow.Form[In], error) {
	defaults, err := v.def.draft(ctx, v.deps.API)
	if err != nil {
		return nil, err
	}
	return workflow.NewCreateForm(defaults, v.def.validate), nil
}

// SubmitUpdate sends the form draft as the new values of record id.
func (v *View[R, In, F, P]) SubmitUpdate(ctx context.Context, id string, form *workflow.Form[In]) (R, error) {
	return workflow.Submit(ctx, v.deps.Runner, form, workflow.Mutation[In, R]{
		Module: v.def.module,
		Run: func(ctx context.Context, draft In) (R, error) {
			var out R
			err := v.deps.API.Put(ctx, v.recordPath(id), draft, &out)
			return out, err
		},
		Invalidate: func(R) []query.Key { return v.invalidation(id) },
		Success:    notify.Success(v.def.noun + " updated successfully"),
		Failure:    notify.Failure("Failed to update " + lowerFirst(v.def.noun) + ". Please try again."),
	})
}

// SubmitCreate sends the form draft as a new record and opens the list.
func (v *View[R, In, F, P]) SubmitCreate(ctx context.Context, form *workflow.Form[In]) (R, error) {
	return workflow.Submit(ctx, v.deps.Runner, form, workflow.Mutation[In, R]{
		Module: v.def.module,
		Run: func(ctx context.Context, draft In) (R, error) {
			var out R
			err := v.deps.API.Post(ctx, v.collectionPath(), draft, &out)
			return out, err
		},
		Invalidate: func(created R) []query.Key { return v.invalidation(v.def.id(created)) },
		Success:    notify.Success(v.def.noun + " created successfully"),
		Failure:    notify.Failure("Failed to create " + lowerFirst(v.def.noun) + ". Please try again."),
		RedirectTo: func(R) string { return workflow.ListPath(v.def.module) },
	})
}

func (v *View[R, In, F, P]) invalidation(id string) []query.Key {
	return []query.Key{
		query.ModuleKey(v.def.module),
		query.RecordKey(v.def.module, id),
		AlertsKey(v.def.module),
	}
}

// AlertsKey is the cache key of a module's alert groups.
func AlertsKey(module string) query.Key {
	return query.ModuleKey(module + "/alerts")
}

// fetchAlerts loads the alert groups of a module.
func fetchAlerts[A any](ctx context.Context, deps Deps, module string) query.Result[A] {
	return query.Fetch(ctx, deps.Queries, AlertsKey(module), func(ctx context.Context) (A, error) {
		var out A
		err := deps.API.Get(ctx, "/api/"+module+"/alerts", &out)
		return out, err
	})
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
