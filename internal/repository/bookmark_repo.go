package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookmarks/internal/models"
)

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Ensure implementation of Bookmarks interface at compile time.
var _ Bookmarks = (*BookmarkRepository)(nil)

const (
	insertBookmarkSQL = `INSERT INTO bookmarks (owner_id, title, link, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectBookmarksByOwnerSQL = `SELECT id, owner_id, title, link, description, created_at, updated_at FROM bookmarks WHERE owner_id = ? ORDER BY id`

	selectBookmarkForOwnerSQL = `SELECT id, owner_id, title, link, description, created_at, updated_at FROM bookmarks WHERE id = ? AND owner_id = ?`

	// Conditional on owner so check and mutation happen in one statement.
	updateBookmarkSQL = `UPDATE bookmarks SET
		title = COALESCE(?, title),
		link = COALESCE(?, link),
		description = COALESCE(?, description),
		updated_at = ?
	WHERE id = ? AND owner_id = ?`

	deleteBookmarkSQL = `DELETE FROM bookmarks WHERE id = ? AND owner_id = ?`

	bookmarkExistsSQL = `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE id = ?)`
)

// ListByOwner returns the owner's bookmarks in insertion (id) order.
func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, selectBookmarksByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select bookmarks for owner=%d: %w", ownerID, err)
	}
	defer func() { _ = rows.Close() }()

	list := []models.Bookmark{}
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark for owner=%d: %w", ownerID, err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks for owner=%d: %w", ownerID, err)
	}
	return list, nil
}

// GetByIDForOwner fetches a bookmark matching both id and owner.
// Returns (nil, nil) if no such row; absence is not an error at this layer.
func (r *BookmarkRepository) GetByIDForOwner(ctx context.Context, ownerID, id int) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.QueryRowContext(ctx, selectBookmarkForOwnerSQL, id, ownerID).
		Scan(&b.ID, &b.OwnerID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select bookmark id=%d owner=%d: %w", id, ownerID, err)
	}
	return &b, nil
}

// Create inserts a bookmark owned by ownerID and returns the stored record.
func (r *BookmarkRepository) Create(ctx context.Context, ownerID int, title, link, description string) (*models.Bookmark, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertBookmarkSQL, ownerID, title, link, description, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark for owner=%d: %w", ownerID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for bookmark: %w", err)
	}
	return &models.Bookmark{
		ID:          int(lastID),
		OwnerID:     ownerID,
		Title:       title,
		Link:        link,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// UpdateOwned merges the non-nil fields into the bookmark, but only when it is
// owned by ownerID. ErrNotFound when no row matched either condition.
func (r *BookmarkRepository) UpdateOwned(ctx context.Context, ownerID, id int, upd BookmarkUpdate) (*models.Bookmark, error) {
	res, err := r.db.ExecContext(ctx, updateBookmarkSQL,
		upd.Title, upd.Link, upd.Description, time.Now().UTC(), id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("update bookmark id=%d owner=%d: %w", id, ownerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for bookmark id=%d: %w", id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	b, err := r.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// DeleteOwned removes the bookmark when it is owned by ownerID.
// ErrNotFound when no row matched.
func (r *BookmarkRepository) DeleteOwned(ctx context.Context, ownerID, id int) error {
	res, err := r.db.ExecContext(ctx, deleteBookmarkSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete bookmark id=%d owner=%d: %w", id, ownerID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for bookmark id=%d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether any user's bookmark has this id. Used to distinguish
// "gone" from "not yours" after a conditional mutation touched nothing.
func (r *BookmarkRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, bookmarkExistsSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check bookmark id=%d: %w", id, err)
	}
	return exists, nil
}
