package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/store"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// timeLayout is how timestamps are persisted. RFC 3339 text sorts
// chronologically, which listings and future tooling rely on.
const timeLayout = time.RFC3339

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a SQLite uniqueness violation into the store's
// structured conflict error. Everything else passes through untouched.
func mapConstraint(err error) error {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func mapUser(id, username, passwordHash, roleStr, createdAt, updatedAt string) (domain.User, error) {
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return domain.User{}, err
	}

	created, err := parseTime(createdAt)
	if err != nil {
		return domain.User{}, err
	}
	updated, err := parseTime(updatedAt)
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}, nil
}
