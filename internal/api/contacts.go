package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/metrics"
	"github.com/theimpacts/impacts/internal/store"
)

type contactsHandler struct {
	store store.ContactStoreIface
	log   *zap.Logger
}

// Create stores a contact inquiry.
//
// @Summary      Submit a contact inquiry
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        body  body      store.ContactInput  true  "Inquiry"
// @Success      201   {object}  store.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /contact [post]
func (h *contactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in store.ContactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		metrics.APIValidationErrorsTotal.WithLabelValues("contact").Inc()
		writeValidationError(w, err)
		return
	}

	c, err := h.store.Create(r.Context(), in)
	if err != nil {
		h.log.Error("create contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.ContactsCreatedTotal.Inc()
	h.log.Info("contact received", zap.String("id", c.ID), zap.String("service", c.Service))
	writeJSON(w, http.StatusCreated, c)
}

// List returns stored inquiries, newest first.
//
// @Summary      List contact inquiries
// @Tags         Contact
// @Produce      json
// @Success      200  {object}  ContactListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contact [get]
func (h *contactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.List(r.Context())
	if err != nil {
		h.log.Error("list contacts", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, ContactListResponse{Contacts: contacts})
}

// Get returns one inquiry.
//
// @Summary      Get a contact inquiry
// @Tags         Contact
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  store.Contact
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contact/{id} [get]
func (h *contactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "contact not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.log.Error("get contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete removes an inquiry.
//
// @Summary      Delete a contact inquiry
// @Tags         Contact
// @Param        id   path  string  true  "Contact ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /contact/{id} [delete]
func (h *contactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "contact not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.log.Error("delete contact", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
