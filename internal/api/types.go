package api

import "github.com/theimpacts/impacts/internal/store"

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error  string            `json:"error" example:"validation failed"`
	Code   string            `json:"code" example:"VALIDATION_ERROR"`
	Fields map[string]string `json:"fields,omitempty"`
}

// RootResponse is returned by GET /api/.
type RootResponse struct {
	Message string `json:"message" example:"The Impacts API is running"`
}

// ContactListResponse wraps GET /api/contact.
type ContactListResponse struct {
	Contacts []*store.Contact `json:"contacts"`
}

// SubscriberListResponse wraps GET /api/newsletter.
type SubscriberListResponse struct {
	Subscribers []*store.Subscriber `json:"subscribers"`
	Total       int64               `json:"total"`
}

// StatusCheckListResponse wraps GET /api/status.
type StatusCheckListResponse struct {
	Checks []*store.StatusCheck `json:"checks"`
}
