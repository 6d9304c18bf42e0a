package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookmarks/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?)`

	selectUserByEmailSQL = `SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users WHERE email = ?`

	selectUserByIDSQL = `SELECT id, email, password_hash, first_name, last_name, created_at, updated_at FROM users WHERE id = ?`

	updateUserSQL = `UPDATE users SET
		email = COALESCE(?, email),
		first_name = COALESCE(?, first_name),
		last_name = COALESCE(?, last_name),
		updated_at = ?
	WHERE id = ?`
)

// Create inserts a new user and returns its ID. A taken email yields ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertUserSQL, email, passwordHash, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", email, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user id=%d: %w", id, err)
	}
	return u, nil
}

// Update applies the non-nil fields and returns the fresh row.
// ErrNotFound when the user does not exist, ErrDuplicate on an email clash.
func (r *UserRepository) Update(ctx context.Context, id int, upd UserUpdate) (*models.User, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL,
		upd.Email, upd.FirstName, upd.LastName, time.Now().UTC(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update user id=%d: %w", id, ErrDuplicate)
		}
		return nil, fmt.Errorf("update user id=%d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for user id=%d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
