package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/database"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/password"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/validator"
	"github.com/raminfosys/attendance-backend-go/internal/repository/postgresql"
)

// txRunner runs fn inside a transaction carried by its context.
type txRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type UserServiceImpl struct {
	user.UserRepository
	withTx txRunner
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, u.ToResponse())
	}
	return resp, nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
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

	created, err := s.UserRepository.Create(ctx, user.User{
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

// UpdateUser implements user.UserService. An omitted role resets the account to employee.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if !validator.IsValidUUID(req.ID) {
		return user.UserResponse{}, user.ErrUserNotFound
	}

	var hash string
	if req.Password != "" {
		var err error
		hash, err = password.Hash(req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	var updated user.User
	err := s.withTx(ctx, func(txCtx context.Context) error {
		existing, err := s.UserRepository.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return err
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		existing.Name = req.Name
		existing.Email = req.Email
		existing.Role = user.ParseRole(req.Role)
		if hash != "" {
			existing.PasswordHash = hash
		}

		updated, err = s.UserRepository.Update(txCtx, existing)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrEmailInUse) {
				return err
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return updated.ToResponse(), nil
}

// DeleteUser implements user.UserService. Callers cannot delete themselves.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, callerID, id string) error {
	if callerID == id {
		return user.ErrSelfDeletionForbidden
	}
	if !validator.IsValidUUID(id) {
		return user.ErrUserNotFound
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// EnsureBootstrapHR creates the configured HR account unless the email is already taken.
func (s *UserServiceImpl) EnsureBootstrapHR(ctx context.Context, hr user.BootstrapHR) error {
	_, err := s.CreateUser(ctx, user.CreateUserRequest{
		Name:     hr.Name,
		Email:    hr.Email,
		Password: hr.Password,
		Role:     string(user.RoleHR),
	})
	switch {
	case err == nil:
		slog.Info("bootstrap HR account created", "email", hr.Email)
		return nil
	case errors.Is(err, user.ErrUserEmailExists):
		slog.Debug("bootstrap HR account already present", "email", hr.Email)
		return nil
	default:
		return fmt.Errorf("failed to ensure bootstrap HR account: %w", err)
	}
}
