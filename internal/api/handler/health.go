// Package handler provides HTTP handlers for the lookup API.
package handler

import (
	"net/http"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

// HealthHandler handles health and readiness endpoints.
type HealthHandler struct {
	version string
	table   string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version, table string) *HealthHandler {
	return &HealthHandler{
		version: version,
		table:   table,
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{
		Status:  "ok",
		Version: h.version,
		Table:   h.table,
	}

	respond(w, r, http.StatusOK, resp)
}

// Ready handles GET /ready. The server is ready once its default table
// resolves and holds entries.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db, err := oiddb.Table(h.table)
	checks := map[string]bool{
		"server": true,
		"table":  err == nil && db.Len() > 0,
	}

	allReady := true
	for _, ready := range checks {
		if !ready {
			allReady = false
			break
		}
	}

	resp := dto.ReadyResponse{
		Ready:  allReady,
		Checks: checks,
	}

	status := http.StatusOK
	if !allReady {
		status = http.StatusServiceUnavailable
	}

	respond(w, r, status, resp)
}
