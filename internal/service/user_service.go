package service

import (
	"context"
	"errors"

	"bookmarks/internal/models"
	"bookmarks/internal/repository"
)

// UserService serves profile reads and partial updates.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// GetProfile returns the caller's own user record. The password hash stays in
// the struct but is never serialized (json:"-").
func (s *UserService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile merges the non-nil fields into the caller's record and returns
// the result. An email clash yields ErrEmailTaken.
func (s *UserService) UpdateProfile(ctx context.Context, userID int, upd ProfileUpdate) (*models.User, error) {
	u, err := s.users.Update(ctx, userID, repository.UserUpdate{
		Email:     upd.Email,
		FirstName: upd.FirstName,
		LastName:  upd.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
