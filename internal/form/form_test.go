package form

import (
	"errors"
	"testing"
)

func TestHolder_SetLeavesOtherFieldsUntouched(t *testing.T) {
	h := NewContact()
	if err := h.Set(FieldName, "Jo"); err != nil {
		t.Fatalf("Set name: %v", err)
	}
	if err := h.Set(FieldEmail, "jo@x.com"); err != nil {
		t.Fatalf("Set email: %v", err)
	}
	if err := h.Set(FieldName, "Joanna"); err != nil {
		t.Fatalf("Set name again: %v", err)
	}

	if got := h.Get(FieldName); got != "Joanna" {
		t.Errorf("name = %q, want %q", got, "Joanna")
	}
	if got := h.Get(FieldEmail); got != "jo@x.com" {
		t.Errorf("email = %q, want %q", got, "jo@x.com")
	}
	if got := h.Get(FieldMessage); got != "" {
		t.Errorf("message = %q, want empty", got)
	}
}

func TestHolder_SetUnknownField(t *testing.T) {
	h := NewNewsletter()
	err := h.Set(FieldName, "Jo")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Set(name) on newsletter = %v, want ErrUnknownField", err)
	}
	if !h.IsEmpty() {
		t.Error("newsletter form should still be empty")
	}
}

func TestHolder_Reset(t *testing.T) {
	h := NewContact()
	for _, f := range h.Fields() {
		if err := h.Set(f, "x"); err != nil {
			t.Fatalf("Set %s: %v", f, err)
		}
	}
	h.Reset()
	for _, f := range h.Fields() {
		if got := h.Get(f); got != "" {
			t.Errorf("%s = %q after Reset, want empty", f, got)
		}
	}
	if !h.IsEmpty() {
		t.Error("IsEmpty() = false after Reset")
	}
}

func TestHolder_ValuesLoadRoundTrip(t *testing.T) {
	h := NewContact()
	_ = h.Set(FieldName, "Jo")
	_ = h.Set(FieldService, "seo")

	other := NewContact()
	_ = other.Set(FieldMessage, "stale")
	other.Load(h.Values())

	if got := other.Get(FieldName); got != "Jo" {
		t.Errorf("name = %q, want Jo", got)
	}
	if got := other.Get(FieldMessage); got != "" {
		t.Errorf("message = %q, want empty after Load", got)
	}
}

func TestHolder_LoadIgnoresForeignKeys(t *testing.T) {
	h := NewNewsletter()
	h.Load(map[string]string{"email": "a@b.com", "name": "ignored"})
	if got := h.Get(FieldEmail); got != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", got)
	}
	if _, ok := h.Values()["name"]; ok {
		t.Error("newsletter form picked up a foreign field")
	}
}

func TestContactSubmission_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		sub  ContactSubmission
		want []Field
	}{
		{
			name: "complete",
			sub:  ContactSubmission{Name: "Jo", Email: "jo@x.com", Service: "all", Message: "hello"},
			want: nil,
		},
		{
			name: "optional fields empty",
			sub:  ContactSubmission{Name: "Jo", Email: "jo@x.com", Service: "all", Message: "hello", Phone: "", Budget: ""},
			want: nil,
		},
		{
			name: "missing name",
			sub:  ContactSubmission{Email: "a@b.com", Service: "seo", Message: "hi"},
			want: []Field{FieldName},
		},
		{
			name: "empty",
			sub:  ContactSubmission{},
			want: []Field{FieldName, FieldEmail, FieldService, FieldMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sub.MissingRequired()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingRequired() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingRequired()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOptions(t *testing.T) {
	for _, v := range []string{"seo", "meta", "social", "all"} {
		if !IsService(v) {
			t.Errorf("IsService(%q) = false", v)
		}
	}
	if IsService("invalid_service") {
		t.Error("IsService(invalid_service) = true")
	}
	for _, v := range []string{"1k-3k", "3k-5k", "5k-10k", "10k+"} {
		if !IsBudget(v) {
			t.Errorf("IsBudget(%q) = false", v)
		}
	}
	if IsBudget("") {
		t.Error("IsBudget(\"\") = true")
	}
}
