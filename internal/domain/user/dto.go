package user

import (
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	validateName(&errs, r.Name)
	validateEmail(&errs, r.Email)

	if validator.IsEmpty(r.Password) {
		errs.Add("password", "password is required")
	} else if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}

	validateOptionalRole(&errs, r.Role)

	return errs.Err()
}

// UpdateUserRequest represents request to update user. An empty password keeps the
// stored hash; an empty role resets the account to employee.
type UpdateUserRequest struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}

	validateName(&errs, r.Name)
	validateEmail(&errs, r.Email)

	if len(r.Password) > 72 {
		errs.Add("password", "password must not exceed 72 characters")
	}

	validateOptionalRole(&errs, r.Role)

	return errs.Err()
}

// BootstrapHR describes the HR account ensured at startup.
type BootstrapHR struct {
	Name     string
	Email    string
	Password string
}

func validateName(errs *validator.ValidationErrors, name string) {
	if validator.IsEmpty(name) {
		errs.Add("name", "name is required")
	} else if len(name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
}

func validateEmail(errs *validator.ValidationErrors, email string) {
	if validator.IsEmpty(email) {
		errs.Add("email", "email is required")
	} else if len(email) > 100 {
		errs.Add("email", "email must not exceed 100 characters")
	} else if !validator.IsValidEmail(email) {
		errs.Add("email", "invalid email format")
	}
}

func validateOptionalRole(errs *validator.ValidationErrors, role string) {
	if role != "" && !validator.IsInSlice(role, ValidRoles()) {
		errs.Add("role", "role must be one of employee, hr, admin")
	}
}
