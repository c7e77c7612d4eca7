package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/metrics"
	"github.com/theimpacts/impacts/internal/store"
)

type newsletterHandler struct {
	store store.SubscriberStoreIface
	log   *zap.Logger
}

// Subscribe adds an email to the newsletter list.
//
// @Summary      Subscribe to the newsletter
// @Tags         Newsletter
// @Accept       json
// @Produce      json
// @Param        body  body      store.SubscriberInput  true  "Subscriber"
// @Success      201   {object}  store.Subscriber
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /newsletter [post]
func (h *newsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in store.SubscriberInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		metrics.APIValidationErrorsTotal.WithLabelValues("newsletter").Inc()
		writeValidationError(w, err)
		return
	}

	sub, err := h.store.Subscribe(r.Context(), in.Email)
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, http.StatusConflict, "Email already subscribed", "ALREADY_SUBSCRIBED")
		return
	}
	if err != nil {
		h.log.Error("subscribe", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	h.refreshGauge(r.Context())
	writeJSON(w, http.StatusCreated, sub)
}

// List returns all subscribers.
//
// @Summary      List newsletter subscribers
// @Tags         Newsletter
// @Produce      json
// @Success      200  {object}  SubscriberListResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /newsletter [get]
func (h *newsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.store.List(r.Context())
	if err != nil {
		h.log.Error("list subscribers", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	total, err := h.store.Count(r.Context())
	if err != nil {
		h.log.Error("count subscribers", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, SubscriberListResponse{Subscribers: subs, Total: total})
}

// Unsubscribe removes an email from the list.
//
// @Summary      Unsubscribe from the newsletter
// @Tags         Newsletter
// @Param        email  path  string  true  "Subscriber email"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /newsletter/{email} [delete]
func (h *newsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	err := h.store.Unsubscribe(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "subscriber not found", "NOT_FOUND")
		return
	}
	if err != nil {
		h.log.Error("unsubscribe", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	h.refreshGauge(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *newsletterHandler) refreshGauge(ctx context.Context) {
	n, err := h.store.Count(ctx)
	if err != nil {
		h.log.Warn("count subscribers", zap.Error(err))
		return
	}
	metrics.SubscribersTotal.Set(float64(n))
}
