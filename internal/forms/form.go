package forms

import (
	"context"

	"github.com/ericstephens/scheduler/internal/errors"
)

// Form holds one in-progress payload of type T and gates its
// submission. Field edits revalidate immediately; Submit refuses to
// call the network while any rule is violated or a prior submission is
// still in flight. Forms belong to one logical caller and are not safe
// for concurrent use.
type Form[T any] struct {
	validator *Validator
	value     T
	errs      FieldErrors
	inFlight  bool
}

// NewForm starts a form at initial and validates it once, so
// CanSubmit is accurate before the first edit.
func NewForm[T any](v *Validator, initial T) *Form[T] {
	f := &Form[T]{validator: v, value: initial}
	f.errs = v.Check(f.value)
	return f
}

// Set applies an edit to the payload and revalidates.
func (f *Form[T]) Set(edit func(*T)) {
	edit(&f.value)
	f.errs = f.validator.Check(f.value)
}

// Value returns the current payload.
func (f *Form[T]) Value() T {
	return f.value
}

// Errors returns the current field violations, nil when valid.
func (f *Form[T]) Errors() FieldErrors {
	return f.errs
}

// FieldError returns the message for one field, empty when the field
// is valid.
func (f *Form[T]) FieldError(field string) string {
	return f.errs[field]
}

// CanSubmit reports whether Submit would attempt the network call.
func (f *Form[T]) CanSubmit() bool {
	return len(f.errs) == 0 && !f.inFlight
}

// Submit runs send with the current payload. An invalid payload
// returns its field errors without touching the network; a failed send
// leaves the form open with its values intact so the caller can retry.
func (f *Form[T]) Submit(ctx context.Context, send func(context.Context, T) error) error {
	if f.inFlight {
		return errors.ValidationError("a submission is already in flight")
	}

	f.errs = f.validator.Check(f.value)
	if len(f.errs) > 0 {
		return f.errs
	}

	f.inFlight = true
	defer func() { f.inFlight = false }()

	return send(ctx, f.value)
}
