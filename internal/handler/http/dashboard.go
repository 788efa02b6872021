package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/raminfosys/attendance-backend-go/internal/domain/dashboard"
	"github.com/raminfosys/attendance-backend-go/internal/handler/http/response"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/export"
)

type DashboardHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// ListAttendance handles GET /dashboard/attendance?startDate=&endDate=
func (h *dashboardHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := dashboard.AttendanceFilter{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.dashboardService.ListAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, records)
}

// Summary handles GET /dashboard/summary
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, summary)
}

// Export handles POST /dashboard/export. An empty body exports everything.
func (h *dashboardHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var filter dashboard.AttendanceFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Export decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Render fully before writing so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.dashboardService.ExportAttendance(r.Context(), filter, &buf); err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
