package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/faganglass/inventory-auth/internal/auth/domain"
	"github.com/faganglass/inventory-auth/internal/auth/store"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, role, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.Role.String(),
		formatTime(u.CreatedAt), formatTime(u.UpdatedAt))
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) UpdatePasswordHash(
	ctx context.Context,
	userID, newHash string,
	updatedAt time.Time,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, formatTime(updatedAt), userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteSecretary(ctx context.Context, userID string) error {
	// Role guard in SQL covers the window between the caller's role check
	// and the delete.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = ? AND role = ?`,
		userID, domain.RoleSecretary.String())
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, role FROM users ORDER BY role, username`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []domain.UserSummary
	for rows.Next() {
		var id, username, roleStr string
		if err := rows.Scan(&id, &username, &roleStr); err != nil {
			return nil, err
		}

		role, err := domain.ParseRole(roleStr)
		if err != nil {
			return nil, err
		}

		users = append(users, domain.UserSummary{
			ID:       id,
			Username: username,
			Role:     role,
		})
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context, usernames ...string) (int64, error) {
	query := `SELECT COUNT(*) FROM users`
	args := make([]any, 0, len(usernames))
	if len(usernames) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(usernames)), ",")
		query += fmt.Sprintf(` WHERE username IN (%s)`, placeholders)
		for _, u := range usernames {
			args = append(args, u)
		}
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var id, username, passwordHash, roleStr, createdAt, updatedAt string
	err := row.Scan(&id, &username, &passwordHash, &roleStr, &createdAt, &updatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(id, username, passwordHash, roleStr, createdAt, updatedAt)
}
