package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bookmarks/internal/models"
)

// Sentinel errors the store surfaces instead of driver-specific failures.
var (
	// ErrDuplicate signals a unique-constraint violation (email already taken).
	ErrDuplicate = errors.New("unique constraint violated")
	// ErrNotFound signals that no row matched the statement's conditions.
	ErrNotFound = errors.New("no matching row")
)

// UserUpdate carries the mutable user fields; nil means "leave unchanged".
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// BookmarkUpdate carries the mutable bookmark fields; nil means "leave unchanged".
type BookmarkUpdate struct {
	Title       *string
	Link        *string
	Description *string
}

type Users interface {
	Create(ctx context.Context, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) (*models.User, error)
}

type Bookmarks interface {
	ListByOwner(ctx context.Context, ownerID int) ([]models.Bookmark, error)
	GetByIDForOwner(ctx context.Context, ownerID, id int) (*models.Bookmark, error)
	Create(ctx context.Context, ownerID int, title, link, description string) (*models.Bookmark, error)
	// UpdateOwned and DeleteOwned mutate in a single conditional statement
	// scoped by both id and owner; ErrNotFound when nothing matched.
	UpdateOwned(ctx context.Context, ownerID, id int, upd BookmarkUpdate) (*models.Bookmark, error)
	DeleteOwned(ctx context.Context, ownerID, id int) error
	Exists(ctx context.Context, id int) (bool, error)
}

type Repository struct {
	Users     Users
	Bookmarks Bookmarks
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(conn),
		Bookmarks: NewBookmarkRepository(conn),
	}
}

// isUniqueViolation detects SQLite's unique-constraint failure. The modernc
// driver exposes it only through the message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
