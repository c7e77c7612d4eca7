// Package form holds the mutable state of the site's two submission forms.
package form

import (
	"errors"
	"fmt"
)

// Field names a single form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldBudget  Field = "budget"
	FieldMessage Field = "message"
)

// ErrUnknownField is returned by Set for a field the form does not own.
var ErrUnknownField = errors.New("unknown form field")

var (
	contactFields    = []Field{FieldName, FieldEmail, FieldPhone, FieldService, FieldBudget, FieldMessage}
	newsletterFields = []Field{FieldEmail}
)

// Holder maps field names to their current values for exactly one in-flight
// submission. It performs no validation; that is deferred to submit time.
type Holder struct {
	fields []Field
	values map[Field]string
}

// NewContact returns an empty contact form.
func NewContact() *Holder { return newHolder(contactFields) }

// NewNewsletter returns an empty newsletter form.
func NewNewsletter() *Holder { return newHolder(newsletterFields) }

func newHolder(fields []Field) *Holder {
	h := &Holder{fields: fields, values: make(map[Field]string, len(fields))}
	h.Reset()
	return h
}

// Fields returns the fields owned by the form in display order.
func (h *Holder) Fields() []Field {
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}

// Set replaces a single field's value. Other fields are untouched.
func (h *Holder) Set(f Field, value string) error {
	if _, ok := h.values[f]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	h.values[f] = value
	return nil
}

// Get returns the current value of f, or "" for a field the form does not own.
func (h *Holder) Get(f Field) string { return h.values[f] }

// Reset restores every field to the empty string.
func (h *Holder) Reset() {
	for _, f := range h.fields {
		h.values[f] = ""
	}
}

// IsEmpty reports whether every field is the empty string.
func (h *Holder) IsEmpty() bool {
	for _, v := range h.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Values copies the form state into a plain map, e.g. for storing in a session.
func (h *Holder) Values() map[string]string {
	out := make(map[string]string, len(h.values))
	for f, v := range h.values {
		out[string(f)] = v
	}
	return out
}

// Load replaces the form state from a map produced by Values. Keys the form
// does not own are ignored and missing keys become "".
func (h *Holder) Load(values map[string]string) {
	h.Reset()
	for _, f := range h.fields {
		if v, ok := values[string(f)]; ok {
			h.values[f] = v
		}
	}
}

// ContactSubmission snapshots the holder as a contact submission.
func (h *Holder) ContactSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    h.values[FieldName],
		Email:   h.values[FieldEmail],
		Phone:   h.values[FieldPhone],
		Service: h.values[FieldService],
		Budget:  h.values[FieldBudget],
		Message: h.values[FieldMessage],
	}
}

// NewsletterSubscription snapshots the holder as a newsletter subscription.
func (h *Holder) NewsletterSubscription() NewsletterSubscription {
	return NewsletterSubscription{Email: h.values[FieldEmail]}
}
