package auth

import (
	"context"

	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
}
