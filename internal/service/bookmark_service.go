package service

import (
	"context"
	"errors"

	"bookmarks/internal/models"
	"bookmarks/internal/repository"
)

// Domain errors for ownership-guarded bookmark access.
var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrForbidden        = errors.New("access denied")
)

// BookmarkService applies the ownership check to every mutation addressing a
// bookmark id. Existence is decided before ownership: a missing id reports
// not-found, an existing id owned by someone else reports forbidden.
type BookmarkService struct {
	bookmarks repository.Bookmarks
}

func NewBookmarkService(bookmarks repository.Bookmarks) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// List returns all bookmarks owned by the caller, possibly empty.
func (s *BookmarkService) List(ctx context.Context, ownerID int) ([]models.Bookmark, error) {
	return s.bookmarks.ListByOwner(ctx, ownerID)
}

// GetByID returns the caller's bookmark, or (nil, nil) when there is no match.
// Absence is not an error here; the handler decides how to present it.
func (s *BookmarkService) GetByID(ctx context.Context, ownerID, id int) (*models.Bookmark, error) {
	return s.bookmarks.GetByIDForOwner(ctx, ownerID, id)
}

// Create stores a new bookmark owned by the caller.
func (s *BookmarkService) Create(ctx context.Context, ownerID int, title, link, description string) (*models.Bookmark, error) {
	return s.bookmarks.Create(ctx, ownerID, title, link, description)
}

// UpdateByID merges the patch into the bookmark after the ownership check.
// The mutation itself is a single owner-conditional statement, so a concurrent
// delete or owner probe cannot slip between check and write.
func (s *BookmarkService) UpdateByID(ctx context.Context, ownerID, id int, patch BookmarkPatch) (*models.Bookmark, error) {
	b, err := s.bookmarks.UpdateOwned(ctx, ownerID, id, repository.BookmarkUpdate{
		Title:       patch.Title,
		Link:        patch.Link,
		Description: patch.Description,
	})
	if err != nil {
		return nil, s.guardError(ctx, id, err)
	}
	return b, nil
}

// DeleteByID removes the bookmark after the ownership check.
func (s *BookmarkService) DeleteByID(ctx context.Context, ownerID, id int) error {
	if err := s.bookmarks.DeleteOwned(ctx, ownerID, id); err != nil {
		return s.guardError(ctx, id, err)
	}
	return nil
}

// guardError translates a missed conditional mutation into the ownership-check
// outcome: not-found when the id does not exist at all, forbidden when it
// exists under another owner.
func (s *BookmarkService) guardError(ctx context.Context, id int, err error) error {
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	exists, exErr := s.bookmarks.Exists(ctx, id)
	if exErr != nil {
		return exErr
	}
	if !exists {
		return ErrBookmarkNotFound
	}
	return ErrForbidden
}
