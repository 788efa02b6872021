package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/domain/auth"
	"github.com/raminfosys/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// identity returns the caller set by middleware.AuthRequired.
func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
	}
	return id, ok
}

func decodeLocation(w http.ResponseWriter, r *http.Request) (attendance.LocationRequest, bool) {
	var req attendance.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	req, ok := decodeLocation(w, r)
	if !ok {
		return
	}

	if _, err := h.attendanceService.CheckIn(r.Context(), caller.UserID, req); err != nil {
		slog.Error("CheckIn service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Check-in successful")
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	req, ok := decodeLocation(w, r)
	if !ok {
		return
	}

	if _, err := h.attendanceService.CheckOut(r.Context(), caller.UserID, req); err != nil {
		slog.Error("CheckOut service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Check-out successful")
}

// GetStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	status, err := h.attendanceService.GetStatus(r.Context(), caller.UserID)
	if err != nil {
		slog.Error("GetStatus service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, status)
}
