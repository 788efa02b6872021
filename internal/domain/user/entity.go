package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Checks in and out
	RoleHR       Role = "hr"       // Reporting and account administration
	RoleAdmin    Role = "admin"
)

// ValidRoles lists every assignable role as plain strings.
func ValidRoles() []string {
	return []string{string(RoleEmployee), string(RoleHR), string(RoleAdmin)}
}

// ParseRole returns RoleEmployee for an empty value.
func ParseRole(s string) Role {
	if s == "" {
		return RoleEmployee
	}
	return Role(s)
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
