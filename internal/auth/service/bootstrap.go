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

// ReservedAdmin is a well-known administrator account guaranteed to
// exist after bootstrap. The credentials come from configuration so
// deployments can override the historical defaults.
type ReservedAdmin struct {
	Username string
	Password string
}

// BootstrapService seeds the reserved administrator accounts. A failure
// here is fatal at startup; the application refuses to run without them.
type BootstrapService struct {
	Store  store.Store
	Admins []ReservedAdmin
}

// EnsureReservedAdmins creates any reserved admin accounts that are
// missing. It only touches the store when fewer reserved accounts exist
// than configured, so calling it on every process start is safe.
func (s *BootstrapService) EnsureReservedAdmins(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	usernames := make([]string, len(s.Admins))
	for i, a := range s.Admins {
		usernames[i] = a.Username
	}

	count, err := s.Store.Users().CountUsers(ctx, usernames...)
	if err != nil {
		return fmt.Errorf("count reserved admins: %w", err)
	}
	if count >= int64(len(s.Admins)) {
		return nil
	}

	for _, admin := range s.Admins {
		_, err := s.Store.Users().GetUserByUsername(ctx, admin.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup reserved admin: %w", err)
		}

		hash, err := cryptox.HashPassword(admin.Password)
		if err != nil {
			return fmt.Errorf("hash reserved admin password: %w", err)
		}

		now := time.Now()
		user := domain.User{
			ID:           idx.New().String(),
			Username:     admin.Username,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		err = s.Store.Users().CreateUser(ctx, user)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Another process seeded this account first; fine.
			continue
		}
		if err != nil {
			return fmt.Errorf("create reserved admin: %w", err)
		}

		l.Info("reserved admin account created",
			slog.String("user_id", user.ID),
			slog.String("username", user.Username),
		)
	}

	return nil
}
