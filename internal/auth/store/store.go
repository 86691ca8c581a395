package store

import (
	"context"
	"errors"
	"time"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. The service layer only ever sees this interface so
// tests can supply an isolated in-memory database.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and authorization checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is already taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and updated_at.
	// Returns ErrNotFound when no row matched the id.
	UpdatePasswordHash(ctx context.Context, userID, newHash string, updatedAt time.Time) error

	// DeleteSecretary removes the row matching id AND role secretary.
	// Deleting zero rows is not an error at this layer; the caller has
	// already established deletability and decides what it means.
	DeleteSecretary(ctx context.Context, userID string) error

	// ListUsers returns public user views ordered by role then username,
	// ascending. Password hashes are excluded by construction.
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)

	// CountUsers counts users limited to the given usernames, or every
	// user when none are given.
	CountUsers(ctx context.Context, usernames ...string) (int64, error)
}
