package service

import (
	"context"
	"time"

	"bookmarks/internal/models"
	"bookmarks/internal/repository"
)

// Identity is the authenticated caller recovered from a verified token.
type Identity struct {
	UserID int
	Email  string
}

type Authorization interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// ProfileUpdate carries the mutable profile fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type Users interface {
	GetProfile(ctx context.Context, userID int) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*models.User, error)
}

// BookmarkPatch carries the mutable bookmark fields; nil means "leave unchanged".
type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

// Bookmarks exposes owner-scoped CRUD. Mutations addressing an id enforce the
// ownership check and report ErrBookmarkNotFound / ErrForbidden accordingly.
type Bookmarks interface {
	List(ctx context.Context, ownerID int) ([]models.Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int) (*models.Bookmark, error)
	Create(ctx context.Context, ownerID int, title, link, description string) (*models.Bookmark, error)
	UpdateByID(ctx context.Context, ownerID, id int, patch BookmarkPatch) (*models.Bookmark, error)
	DeleteByID(ctx context.Context, ownerID, id int) error
}

// AuthConfig is the auth tuning handed down from the process config.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

// Service aggregates all sub-services behind one dependency for the HTTP layer.
type Service struct {
	Authorization
	Users
	Bookmarks
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Users:         NewUserService(repos.Users),
		Bookmarks:     NewBookmarkService(repos.Bookmarks),
	}
}
