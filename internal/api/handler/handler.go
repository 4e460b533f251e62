// Package handler provides HTTP handlers for the read-only data API.
// Handlers serve the JSON files the collector wrote — raw bytes pass
// through, no re-encoding.
package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/api/respond"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store *store.Store
	cfg   *config.Config
}

// New creates a Handler over the collector's data directory.
func New(st *store.Store, cfg *config.Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":     "Yellowstone Club Weather Stations API",
		"status":   "running",
		"stations": config.StationIDs(),
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetAllStations serves the aggregate file.
func (h *Handler) GetAllStations(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, h.store.ReadAll)
}

// GetMetadata serves the run metadata file.
func (h *Handler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, h.store.ReadMetadata)
}

// GetStation serves one station's file. Unknown site codes are rejected
// before touching the filesystem.
func (h *Handler) GetStation(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")
	if _, ok := config.StationByID(siteID); !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_STATION", "Station not in registry: "+siteID)
		return
	}
	h.serveFile(w, func() ([]byte, error) {
		return h.store.ReadStation(siteID)
	})
}

func (h *Handler) serveFile(w http.ResponseWriter, read func() ([]byte, error)) {
	data, err := read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			respond.WriteError(w, http.StatusNotFound, "NO_DATA", "No data collected yet; run a fetch first")
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "READ_FAILED", "Failed to read data file")
		return
	}
	respond.WriteRaw(w, http.StatusOK, data)
}
