package api

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 << 10

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// writeValidationError writes 422 with one message per offending field.
// Errors that are not validation.Errors are reported without fields.
func writeValidationError(w http.ResponseWriter, err error) {
	body := errorBody{Error: "validation failed", Code: "VALIDATION_ERROR"}
	var errs validation.Errors
	if errors.As(err, &errs) {
		body.Fields = make(map[string]string, len(errs))
		for field, fe := range errs {
			body.Fields[field] = fe.Error()
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, body)
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a bounded JSON body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return false
	}
	return true
}
