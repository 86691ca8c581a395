package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/store"
	"github.com/faganglass/inventory-auth/pkg/cryptox"
	"github.com/faganglass/inventory-auth/pkg/idx"
	"github.com/faganglass/inventory-auth/pkg/slogx"
)

// Response messages for expected business outcomes. The desktop client
// displays these verbatim, so they are part of the contract.
const (
	msgLoginSuccessful      = "Login successful"
	msgInvalidCredentials   = "Invalid credentials"
	msgCreatorNotFound      = "Creator not found"
	msgOnlyAdminsCreate     = "Only admins can create secretary accounts"
	msgUsernameExists       = "Username already exists"
	msgSecretaryCreated     = "Secretary account created successfully"
	msgUserNotFound         = "User not found"
	msgCurrentPasswordWrong = "Current password is incorrect"
	msgPasswordChanged      = "Password changed successfully"
	msgAdminNotFound        = "Admin not found"
	msgOnlyAdminsDeactivate = "Only admins can deactivate secretary accounts"
	msgOnlySecretariesLeave = "Only secretary accounts can be deactivated"
	msgSecretaryDeactivated = "Secretary account deactivated successfully"
)

// AccountService implements login verification and the role-gated account
// lifecycle operations. It holds no state beyond the store handle.
type AccountService struct {
	Store store.Store
}

// Login verifies a username/password pair. An unknown username and a
// wrong password produce identical responses so callers cannot probe
// which usernames exist.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.AuthResponse, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Failure(msgInvalidCredentials), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Failure(msgInvalidCredentials), nil
		}
		// Anything else means the stored hash is unusable.
		return domain.AuthResponse{}, fmt.Errorf("verify password: %w", err)
	}

	view := user.Summary()
	return domain.AuthResponse{
		Success: true,
		Message: msgLoginSuccessful,
		User:    &view,
	}, nil
}

// CreateSecretary creates a secretary account on behalf of an admin.
// The role is always secretary regardless of anything in the request.
func (s *AccountService) CreateSecretary(
	ctx context.Context,
	username, password, creatorUsername string,
) (domain.AuthResponse, error) {
	l := slogx.FromContext(ctx)

	// 1. The creator must exist and be an admin.
	creator, err := s.Store.Users().GetUserByUsername(ctx, creatorUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Failure(msgCreatorNotFound), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("lookup creator: %w", err)
	}
	if creator.Role != domain.RoleAdmin {
		return domain.Failure(msgOnlyAdminsCreate), nil
	}

	// 2. Build the new account.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleSecretary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 3. Insert; a username conflict is a business outcome, anything else
	// is infrastructure.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Failure(msgUsernameExists), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("secretary account created",
		slog.String("user_id", user.ID),
		slog.String("created_by", creator.ID),
	)

	view := user.Summary()
	return domain.AuthResponse{
		Success: true,
		Message: msgSecretaryCreated,
		User:    &view,
	}, nil
}

// ListUsers returns every account's public view in the store's order
// (role then username, ascending). Deciding who may call this belongs to
// the boundary layer, not here.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	return s.Store.Users().ListUsers(ctx)
}

// ChangePassword rotates a user's password after verifying the current one.
func (s *AccountService) ChangePassword(
	ctx context.Context,
	userID, oldPassword, newPassword string,
) (domain.AuthResponse, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Failure(msgUserNotFound), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Failure(msgCurrentPasswordWrong), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("verify password: %w", err)
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash, time.Now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Row vanished between lookup and update; same outcome.
			return domain.Failure(msgUserNotFound), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("update password: %w", err)
	}

	return domain.AuthResponse{Success: true, Message: msgPasswordChanged}, nil
}

// DeactivateSecretary removes a secretary account on behalf of an admin.
// Admin accounts can never be removed through this path.
func (s *AccountService) DeactivateSecretary(
	ctx context.Context,
	targetUserID, adminUsername string,
) (domain.AuthResponse, error) {
	l := slogx.FromContext(ctx)

	// 1. The requester must exist and be an admin.
	admin, err := s.Store.Users().GetUserByUsername(ctx, adminUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Failure(msgAdminNotFound), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("lookup admin: %w", err)
	}
	if admin.Role != domain.RoleAdmin {
		return domain.Failure(msgOnlyAdminsDeactivate), nil
	}

	// 2. The target must exist and be a secretary.
	target, err := s.Store.Users().GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Failure(msgUserNotFound), nil
		}
		return domain.AuthResponse{}, fmt.Errorf("lookup target: %w", err)
	}
	if target.Role != domain.RoleSecretary {
		return domain.Failure(msgOnlySecretariesLeave), nil
	}

	// 3. The delete re-checks the role in SQL in case it changed since
	// step 2. A zero-row delete still counts as success; step 2 already
	// established deletability.
	if err := s.Store.Users().DeleteSecretary(ctx, targetUserID); err != nil {
		return domain.AuthResponse{}, fmt.Errorf("delete secretary: %w", err)
	}

	l.Info("secretary account deactivated",
		slog.String("user_id", targetUserID),
		slog.String("deactivated_by", admin.ID),
	)

	return domain.AuthResponse{Success: true, Message: msgSecretaryDeactivated}, nil
}
