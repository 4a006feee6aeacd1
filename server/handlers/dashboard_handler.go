package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	services "marketing-dashboard/service"
	"marketing-dashboard/util"
)

const (
	START_QUERY_ARG         = "start"
	END_QUERY_ARG           = "end"
	COMPARE_START_QUERY_ARG = "compare_start"
	COMPARE_END_QUERY_ARG   = "compare_end"
	FILE_NAME_PATH_ARG      = "name"
)

// MAX_UPLOAD_BYTES caps the body of a file upload.
const MAX_UPLOAD_BYTES = 32 << 20

// Dashboard is what the handler needs from the dashboard service.
type Dashboard interface {
	LoadAll(ctx context.Context) (models.LoadResult, error)
	ReplaceDataset(ctx context.Context, name string, data []byte) (models.FileStatus, error)
	Analyze(sel models.DateRangeSelection) (snapshot.PlatformSnapshots, error)
	Bounds() models.AvailableDateBounds
	Errors() map[string]string
}

type DashboardHandler struct {
	dashboard Dashboard
}

func NewDashboardHandler(dashboard Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Ping handles GET /ping
func (h *DashboardHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// GetBounds handles GET /v1/bounds
func (h *DashboardHandler) GetBounds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Bounds())
}

// GetErrors handles GET /v1/errors
func (h *DashboardHandler) GetErrors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.dashboard.Errors())
}

// Reload handles POST /v1/reload
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboard.LoadAll(r.Context())
	if err != nil {
		log.Println("[DashboardHandler] Error reloading datasets:", err)
		http.Error(w, "Reload failed: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// PutFile handles PUT /v1/files/{name} with the CSV export as body.
func (h *DashboardHandler) PutFile(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[FILE_NAME_PATH_ARG]

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MAX_UPLOAD_BYTES))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Upload too large: "+err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Could not read upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	status, err := h.dashboard.ReplaceDataset(r.Context(), name, data)
	switch {
	case errors.Is(err, services.ErrUnknownFile):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.Printf("[DashboardHandler] Upload of %s rejected: %v", name, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// GetSnapshots handles GET /v1/snapshots
// expects ?start={YYYY-MM-DD}&end={YYYY-MM-DD}[&compare_start=...&compare_end=...]
func (h *DashboardHandler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	snaps, ok := h.analyze(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snaps)
}

// GetCharts handles GET /v1/charts with the same query as GetSnapshots.
func (h *DashboardHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	snaps, ok := h.analyze(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderDashboardCharts(w, snaps); err != nil {
		log.Println("[DashboardHandler] Error rendering charts:", err)
	}
}

func (h *DashboardHandler) analyze(w http.ResponseWriter, r *http.Request) (snapshot.PlatformSnapshots, bool) {
	sel, err := h.parseSelection(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return snapshot.PlatformSnapshots{}, false
	}

	snaps, err := h.dashboard.Analyze(sel)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return snapshot.PlatformSnapshots{}, false
		}
		log.Println("[DashboardHandler] Error analyzing datasets:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return snapshot.PlatformSnapshots{}, false
	}
	return snaps, true
}

// parseSelection reads the query. Without start and end the available
// bounds are used. Comparison is on only when both of its bounds are given.
func (h *DashboardHandler) parseSelection(vals url.Values) (models.DateRangeSelection, error) {
	start, end := vals.Get(START_QUERY_ARG), vals.Get(END_QUERY_ARG)

	var current models.DateRange
	var err error
	if start == "" && end == "" {
		b := h.dashboard.Bounds()
		current, err = models.NewDateRange(b.Earliest, b.Latest)
	} else {
		current, err = models.ParseDateRange(start, end)
	}
	if err != nil {
		return models.DateRangeSelection{}, fmt.Errorf("invalid %s/%s: %w", START_QUERY_ARG, END_QUERY_ARG, err)
	}

	cStart, cEnd := vals.Get(COMPARE_START_QUERY_ARG), vals.Get(COMPARE_END_QUERY_ARG)
	if cStart == "" && cEnd == "" {
		return models.NewSelection(current), nil
	}
	comparison, err := models.ParseDateRange(cStart, cEnd)
	if err != nil {
		return models.DateRangeSelection{}, fmt.Errorf("invalid %s/%s: %w", COMPARE_START_QUERY_ARG, COMPARE_END_QUERY_ARG, err)
	}
	return models.NewComparisonSelection(current, comparison), nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("[DashboardHandler] Error encoding response:", err)
	}
}
