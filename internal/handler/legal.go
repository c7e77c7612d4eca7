package handler

import (
	"net/http"

	"github.com/theimpacts/impacts/internal/content"
)

type legalPage struct {
	BasePage
	Doc content.Document
}

// LegalHandler serves the privacy policy and terms of service.
type LegalHandler struct {
	pages pages
	legal *content.Legal
}

// NewLegalHandler creates a new LegalHandler.
func NewLegalHandler(p pages, legal *content.Legal) *LegalHandler {
	return &LegalHandler{pages: p, legal: legal}
}

// Privacy serves GET /privacy-policy.
func (h *LegalHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, h.legal.Privacy)
}

// Terms serves GET /terms-of-service.
func (h *LegalHandler) Terms(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, h.legal.Terms)
}

func (h *LegalHandler) show(w http.ResponseWriter, r *http.Request, doc content.Document) {
	render(w, "legal.html", legalPage{BasePage: h.pages.base(w, r, doc.Title), Doc: doc})
}
