package store

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/theimpacts/impacts/internal/form"
)

// ContactInput is an inquiry as received by the API, before persistence.
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Service string  `json:"service"`
	Budget  *string `json:"budget"`
	Message string  `json:"message"`
}

// Normalize trims surrounding whitespace and turns empty optional values into nil.
func (c *ContactInput) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Service = strings.TrimSpace(c.Service)
	c.Message = strings.TrimSpace(c.Message)
	c.Phone = trimOptional(c.Phone)
	c.Budget = trimOptional(c.Budget)
}

// Validate checks field lengths, the email shape and the enumerated values.
// The error is a validation.Errors keyed by JSON field name.
func (c ContactInput) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.RuneLength(2, 100)),
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.Phone, validation.RuneLength(0, 20)),
		validation.Field(&c.Service, validation.Required, validation.In(anySlice(form.ServiceValues())...)),
		validation.Field(&c.Budget, validation.In(anySlice(form.BudgetValues())...)),
		validation.Field(&c.Message, validation.Required, validation.RuneLength(10, 2000)),
	)
}

// SubscriberInput is a newsletter signup as received by the API.
type SubscriberInput struct {
	Email string `json:"email"`
}

// Normalize trims and lower-cases the email so it validates and compares the
// way it is stored.
func (s *SubscriberInput) Normalize() {
	s.Email = normalizeEmail(s.Email)
}

// Validate checks the email shape.
func (s SubscriberInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
	)
}

// StatusCheckInput is the body of POST /api/status.
type StatusCheckInput struct {
	ClientName string `json:"client_name"`
}

// Validate requires a client name.
func (s StatusCheckInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ClientName, validation.Required, validation.RuneLength(1, 255)),
	)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func anySlice(vs []string) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
