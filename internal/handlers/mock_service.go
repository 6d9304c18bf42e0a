package handlers

import (
	"context"

	"bookmarks/internal/models"
	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpErr   error
	signInToken string
	signInErr   error
	parseID     int
	parseEmail  string
	parseErr    error

	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInEmail    string
	lastSignInPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, email, password string) (string, error) {
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, password string) (string, error) {
	m.lastSignInEmail = email
	m.lastSignInPassword = password
	return m.signInToken, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return service.Identity{}, m.parseErr
	}
	return service.Identity{UserID: m.parseID, Email: m.parseEmail}, nil
}

type mockUsers struct {
	profile    *models.User
	profileErr error
	updated    *models.User
	updateErr  error

	lastProfileID int
	lastUpdateID  int
	lastUpdate    service.ProfileUpdate
}

func (m *mockUsers) GetProfile(_ context.Context, userID int) (*models.User, error) {
	m.lastProfileID = userID
	return m.profile, m.profileErr
}

func (m *mockUsers) UpdateProfile(_ context.Context, userID int, upd service.ProfileUpdate) (*models.User, error) {
	m.lastUpdateID = userID
	m.lastUpdate = upd
	return m.updated, m.updateErr
}

type mockBookmarks struct {
	list      []models.Bookmark
	listErr   error
	got       *models.Bookmark
	getErr    error
	created   *models.Bookmark
	createErr error
	updated   *models.Bookmark
	updateErr error
	deleteErr error

	lastOwnerID    int
	lastBookmarkID int
	lastPatch      service.BookmarkPatch
	deleteCalls    int
}

func (m *mockBookmarks) List(_ context.Context, ownerID int) ([]models.Bookmark, error) {
	m.lastOwnerID = ownerID
	return m.list, m.listErr
}

func (m *mockBookmarks) GetByID(_ context.Context, ownerID, id int) (*models.Bookmark, error) {
	m.lastOwnerID = ownerID
	m.lastBookmarkID = id
	return m.got, m.getErr
}

func (m *mockBookmarks) Create(_ context.Context, ownerID int, title, link, description string) (*models.Bookmark, error) {
	m.lastOwnerID = ownerID
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &models.Bookmark{ID: 1, OwnerID: ownerID, Title: title, Link: link, Description: description}, nil
}

func (m *mockBookmarks) UpdateByID(_ context.Context, ownerID, id int, patch service.BookmarkPatch) (*models.Bookmark, error) {
	m.lastOwnerID = ownerID
	m.lastBookmarkID = id
	m.lastPatch = patch
	return m.updated, m.updateErr
}

func (m *mockBookmarks) DeleteByID(_ context.Context, ownerID, id int) error {
	m.lastOwnerID = ownerID
	m.lastBookmarkID = id
	m.deleteCalls++
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
