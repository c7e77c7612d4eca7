package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/theimpacts/impacts/internal/store"
)

type statusHandler struct {
	store *store.StatusCheckStore
	log   *zap.Logger
}

// Create records a status check.
//
// @Summary      Record a status check
// @Tags         Status
// @Accept       json
// @Produce      json
// @Param        body  body      store.StatusCheckInput  true  "Client"
// @Success      201   {object}  store.StatusCheck
// @Failure      422   {object}  ErrorResponse
// @Router       /status [post]
func (h *statusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in store.StatusCheckInput
	if !decodeJSON(w, r, &in) {
		return
	}
	in.ClientName = strings.TrimSpace(in.ClientName)
	if err := in.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	sc, err := h.store.Create(r.Context(), in.ClientName)
	if err != nil {
		h.log.Error("create status check", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

// List returns recorded status checks.
//
// @Summary      List status checks
// @Tags         Status
// @Produce      json
// @Success      200  {object}  StatusCheckListResponse
// @Router       /status [get]
func (h *statusHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.store.List(r.Context())
	if err != nil {
		h.log.Error("list status checks", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, StatusCheckListResponse{Checks: checks})
}
