package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/raminfosys/attendance-backend-go/internal/domain/auth"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/jwt"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/password"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	metrics metrics.Recorder
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, recorder metrics.Recorder) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		metrics:        recorder,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	resp, err := a.login(ctx, req)
	switch {
	case err == nil:
		a.metrics.RecordLogin(metrics.LoginSuccess)
	case errors.Is(err, auth.ErrInvalidCredentials):
		a.metrics.RecordLogin(metrics.LoginInvalid)
	default:
		a.metrics.RecordLogin(metrics.LoginError)
	}
	return resp, err
}

func (a *AuthServiceImpl) login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	// Unknown email and wrong password are indistinguishable to the caller
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := password.Verify(userData.PasswordHash, req.Password)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		User:      userData.ToResponse(),
		ExpiresAt: expiresAt,
	}, nil
}

// Register implements auth.AuthService. It does not log the new user in.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		ID:           id.String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         user.ParseRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, user.ErrUserEmailExists) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created.ToResponse(), nil
}
