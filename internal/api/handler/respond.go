package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/remiblancher/qoid/internal/api/dto"
	apierrors "github.com/remiblancher/qoid/internal/api/errors"
)

// wantsCBOR reports whether the client asked for CBOR.
func wantsCBOR(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(mediaType), dto.MediaTypeCBOR) {
			return true
		}
	}
	return false
}

// respond writes data as CBOR or JSON depending on the Accept header.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if wantsCBOR(r) {
		respondCBOR(w, status, data)
		return
	}
	respondJSON(w, status, data)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// respondCBOR writes a canonical CBOR response.
func respondCBOR(w http.ResponseWriter, status int, data any) {
	body, err := dto.MarshalCBOR(data)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, &dto.APIError{
			Code:    apierrors.CodeInternal,
			Message: "failed to encode response",
		})
		return
	}
	w.Header().Set("Content-Type", dto.MediaTypeCBOR)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *dto.APIError) {
	respond(w, r, status, apiErr)
}

// handleError maps err to a status code and writes it.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := apierrors.MapError(err)
	respondError(w, r, status, apiErr)
}

// NotFound handles requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, apierrors.NewNotFound("route", r.URL.Path))
}

// MethodNotAllowed handles requests with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, apierrors.NewBadRequest("method "+r.Method+" not allowed"))
}
