package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/domain/auth"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Conflicts answer 400 like
// validation failures; unknown errors are logged and hidden from the client.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Error(w, http.StatusBadRequest, "ALREADY_CHECKED_IN", "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		Error(w, http.StatusBadRequest, "NO_OPEN_CHECK_IN", "No check-in found for today", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		Error(w, http.StatusBadRequest, "DUPLICATE_EMAIL", "User already exists with this email", nil)
	case errors.Is(err, user.ErrEmailInUse):
		Error(w, http.StatusBadRequest, "EMAIL_IN_USE", "Email already in use", nil)
	case errors.Is(err, user.ErrSelfDeletionForbidden):
		Error(w, http.StatusBadRequest, "SELF_DELETION_FORBIDDEN", "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
