// Package workflow drives record forms through viewing, editing and
// submitting, and applies mutations with invalidate-on-success semantics.
package workflow

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// FormState is the state of a Form.
type FormState string

const (
	StateViewing    FormState = "viewing"
	StateEditing    FormState = "editing"
	StateSubmitting FormState = "submitting"
)

var (
	// ErrSubmitInFlight rejects a second submit or edit while one is pending.
	ErrSubmitInFlight = errors.New("workflow: submission in flight")
	// ErrNotEditing rejects changes while the form is read only.
	ErrNotEditing = errors.New("workflow: form is not editing")
)

// Validator checks a draft and returns nil when it is valid.
type Validator[T any] func(T) shared.FieldErrors

// Form holds the stored values of one record and the draft being edited.
type Form[T any] struct {
	mu       sync.Mutex
	state    FormState
	record   T
	draft    T
	errors   shared.FieldErrors
	validate Validator[T]
	detached bool
}

// NewEditForm starts read only on record.
func NewEditForm[T any](record T, validate Validator[T]) *Form[T] {
	return &Form[T]{state: StateViewing, record: clone(record), draft: clone(record), validate: validate}
}

// NewCreateForm starts editing from defaults.
func NewCreateForm[T any](defaults T, validate Validator[T]) *Form[T] {
	return &Form[T]{state: StateEditing, record: clone(defaults), draft: clone(defaults), validate: validate}
}

// State returns the current state.
func (f *Form[T]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft returns a copy of the values being edited.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clone(f.draft)
}

// Record returns a copy of the last stored values.
func (f *Form[T]) Record() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clone(f.record)
}

// Errors returns the field messages of the last rejected submit.
func (f *Form[T]) Errors() shared.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(shared.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Edit moves from viewing to editing with the draft seeded from the record.
func (f *Form[T]) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateViewing:
		f.draft = clone(f.record)
		f.errors = nil
		f.state = StateEditing
	}
	return nil
}

// Cancel drops the draft and returns to viewing.
func (f *Form[T]) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	f.draft = clone(f.record)
	f.errors = nil
	f.state = StateViewing
	return nil
}

// Update changes the draft. Only allowed while editing.
func (f *Form[T]) Update(fn func(*T)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateSubmitting:
		return ErrSubmitInFlight
	case StateViewing:
		return ErrNotEditing
	}
	fn(&f.draft)
	return nil
}

// Detach marks the owning view as gone. A pending submit still finishes
// its remote call and cache invalidation but no longer touches the form,
// the notifier or the navigator.
func (f *Form[T]) Detach() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = true
}

// begin validates the draft and moves to submitting. It returns a private
// copy of what is being submitted.
func (f *Form[T]) begin() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	switch f.state {
	case StateSubmitting:
		return zero, ErrSubmitInFlight
	case StateViewing:
		return zero, ErrNotEditing
	}
	if f.validate != nil {
		if errs := f.validate(f.draft); len(errs) > 0 {
			f.errors = errs
			return zero, errs.Err()
		}
	}
	f.errors = nil
	f.state = StateSubmitting
	return clone(f.draft), nil
}

// fail returns to editing keeping the submitted draft. It reports false when
// the form is detached.
func (f *Form[T]) fail(err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detached {
		return false
	}
	f.state = StateEditing
	f.errors = shared.FieldErrorsOf(err)
	return true
}

// succeed stores the submitted values and returns to viewing. It reports
// false when the form is detached.
func (f *Form[T]) succeed(submitted T) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detached {
		return false
	}
	f.record = clone(submitted)
	f.draft = clone(submitted)
	f.state = StateViewing
	return true
}

// clone deep copies v through its JSON form so drafts never share slices
// or pointers with the stored record.
func clone[T any](v T) T {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
