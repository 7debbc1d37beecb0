package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/dashboard/filterstore"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/transport"
	"github.com/odyssey-erp/supplyhub/internal/workflow"
)

// Exit codes shared by the record commands.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitNotFound   = 3
)

// Output selects where and how results are written.
type Output struct {
	JSON   bool
	Stdout io.Writer
	Stderr io.Writer
}

func (o Output) withDefaults() Output {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

// Table renders records as aligned columns.
type Table[R any] struct {
	Header []string
	Row    func(R) []string
}

// ListCommand prints the module records matching filter query parameters
// such as q=sensor&status=AVAILABLE.
func ListCommand[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, v *dashboard.View[R, In, F, P], filters url.Values, table Table[R], out Output) int {
	out = out.withDefaults()
	v.Mount()
	v.SetFiltersFromQuery(filters)
	res := v.Visible(ctx)
	if res.Err != nil && !res.HasData {
		_, _ = fmt.Fprintf(out.Stderr, "%s list: %v\n", v.Module(), res.Err)
		return ExitFailure
	}
	if out.JSON {
		return writeJSON(out, res.Data)
	}
	writeTable(out.Stdout, table.Header, res.Data, table.Row)
	return ExitOK
}

// ShowCommand prints one record.
func ShowCommand[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, v *dashboard.View[R, In, F, P], id string, out Output) int {
	out = out.withDefaults()
	res := v.Record(ctx, id)
	if res.Err != nil {
		return reportLoadError(out, v.Module(), id, res.Err)
	}
	return writeJSON(out, res.Data)
}

// UpdateCommand applies a JSON patch (a partial form value, e.g.
// {"quantity":40}) to the record's form and submits it.
func UpdateCommand[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, v *dashboard.View[R, In, F, P], id string, patch io.Reader, out Output) int {
	out = out.withDefaults()
	raw, err := io.ReadAll(patch)
	if err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s update: read patch: %v\n", v.Module(), err)
		return ExitFailure
	}
	res := v.Record(ctx, id)
	if res.Err != nil {
		return reportLoadError(out, v.Module(), id, res.Err)
	}
	form := v.EditForm(res.Data)
	if err := form.Edit(); err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s update: %v\n", v.Module(), err)
		return ExitFailure
	}
	if err := fillDraft(form, raw); err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s update: invalid patch: %v\n", v.Module(), err)
		return ExitFailure
	}
	updated, err := v.SubmitUpdate(ctx, id, form)
	if err != nil {
		return reportSubmitError(out, v.Module()+" update", form.Errors(), err)
	}
	return writeJSON(out, updated)
}

// CreateCommand fills the module's create form with the JSON in body and
// submits it. Fields missing from body keep the form defaults.
func CreateCommand[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, v *dashboard.View[R, In, F, P], body io.Reader, out Output) int {
	out = out.withDefaults()
	raw, err := io.ReadAll(body)
	if err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s create: read body: %v\n", v.Module(), err)
		return ExitFailure
	}
	form, err := v.CreateForm(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s create: load defaults: %v\n", v.Module(), err)
		return ExitFailure
	}
	if err := fillDraft(form, raw); err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s create: invalid body: %v\n", v.Module(), err)
		return ExitFailure
	}
	created, err := v.SubmitCreate(ctx, form)
	if err != nil {
		return reportSubmitError(out, v.Module()+" create", form.Errors(), err)
	}
	return writeJSON(out, created)
}

// DraftCommand prints the create form defaults.
func DraftCommand[R, In any, F filterstore.Mergeable[F, P], P any](ctx context.Context, v *dashboard.View[R, In, F, P], out Output) int {
	out = out.withDefaults()
	form, err := v.CreateForm(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "%s draft: %v\n", v.Module(), err)
		return ExitFailure
	}
	return writeJSON(out, form.Draft())
}

// fillDraft decodes raw over the form draft.
func fillDraft[In any](form *workflow.Form[In], raw []byte) error {
	var decodeErr error
	if err := form.Update(func(draft *In) {
		decodeErr = json.Unmarshal(raw, draft)
	}); err != nil {
		return err
	}
	return decodeErr
}

func reportLoadError(out Output, module, id string, err error) int {
	if transport.IsNotFound(err) {
		_, _ = fmt.Fprintf(out.Stderr, "%s %s: not found\n", module, id)
		return ExitNotFound
	}
	_, _ = fmt.Fprintf(out.Stderr, "%s %s: %v\n", module, id, err)
	return ExitFailure
}

func reportSubmitError(out Output, op string, fields shared.FieldErrors, err error) int {
	if errors.Is(err, shared.ErrValidation) {
		if len(fields) == 0 {
			fields = shared.FieldErrorsOf(err)
		}
		_, _ = fmt.Fprintf(out.Stderr, "%s: %d invalid field(s):\n", op, len(fields))
		for _, field := range fields.Fields() {
			_, _ = fmt.Fprintf(out.Stderr, " - %s: %s\n", field, fields[field])
		}
		return ExitValidation
	}
	if transport.IsNotFound(err) {
		_, _ = fmt.Fprintf(out.Stderr, "%s: not found\n", op)
		return ExitNotFound
	}
	_, _ = fmt.Fprintf(out.Stderr, "%s: %v\n", op, err)
	return ExitFailure
}

func writeJSON(out Output, v any) int {
	enc := json.NewEncoder(out.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_, _ = fmt.Fprintf(out.Stderr, "encode json: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}
