package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"bookmarks/internal/models"
	"bookmarks/internal/repository"
	"bookmarks/internal/repository/db"
	"bookmarks/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const e2eSigningKey = "e2e-signing-key"

// newE2ERouter stands up the whole stack on a throwaway sqlite file.
func newE2ERouter(t *testing.T) (*gin.Engine, *service.Service) {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "e2e.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: e2eSigningKey,
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost, // keep hashing fast in tests
	})

	gin.SetMode(gin.TestMode)
	return NewHandler(services, nil).InitRoutes(), services
}

func request(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var m map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal token response: %v (body=%s)", err, w.Body.String())
	}
	if m["access_token"] == "" {
		t.Fatalf("missing access_token in %s", w.Body.String())
	}
	return m["access_token"]
}

func TestEndToEnd_SignupSigninAndOwnedCRUD(t *testing.T) {
	r, services := newE2ERouter(t)

	// signup → 201 with a usable token
	w := request(t, r, http.MethodPost, "/auth/signup", "", `{"email":"a@x.com","password":"pw123456"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status=%d, body=%s", w.Code, w.Body.String())
	}
	tokenA := tokenFrom(t, w)

	// duplicate signup → 400
	w = request(t, r, http.MethodPost, "/auth/signup", "", `{"email":"a@x.com","password":"other"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup status=%d, body=%s", w.Code, w.Body.String())
	}

	// signin → 200, token subject matches the signed-up user
	w = request(t, r, http.MethodPost, "/auth/signin", "", `{"email":"a@x.com","password":"pw123456"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signin status=%d, body=%s", w.Code, w.Body.String())
	}
	identity, err := services.ParseToken(tokenFrom(t, w))
	if err != nil {
		t.Fatalf("parse signin token: %v", err)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	// signin failures keep their distinct codes
	w = request(t, r, http.MethodPost, "/auth/signin", "", `{"email":"ghost@x.com","password":"pw123456"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown email status=%d", w.Code)
	}
	w = request(t, r, http.MethodPost, "/auth/signin", "", `{"email":"a@x.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status=%d", w.Code)
	}

	// empty collection reads as []
	w = request(t, r, http.MethodGet, "/bookmarks", tokenA, "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("empty list: status=%d body=%s", w.Code, w.Body.String())
	}

	// create, then round-trip by id
	w = request(t, r, http.MethodPost, "/bookmarks", tokenA, `{"title":"t","link":"https://x.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var created models.Bookmark
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}
	if created.ID == 0 || created.OwnerID != identity.UserID {
		t.Fatalf("unexpected created bookmark: %+v", created)
	}

	path := "/bookmarks/" + strconv.Itoa(created.ID)
	w = request(t, r, http.MethodGet, path, tokenA, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	var fetched models.Bookmark
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("unmarshal fetched: %v", err)
	}
	if fetched.Title != created.Title || fetched.Link != created.Link || fetched.Description != created.Description {
		t.Fatalf("round-trip mismatch: created=%+v fetched=%+v", created, fetched)
	}

	// a second user cannot see or touch it
	w = request(t, r, http.MethodPost, "/auth/signup", "", `{"email":"b@x.com","password":"pw123456"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("second signup status=%d", w.Code)
	}
	tokenB := tokenFrom(t, w)

	w = request(t, r, http.MethodGet, path, tokenB, "")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Fatalf("owner-scoped read: status=%d body=%s", w.Code, w.Body.String())
	}
	w = request(t, r, http.MethodPut, path, tokenB, `{"title":"stolen"}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update status=%d, body=%s", w.Code, w.Body.String())
	}
	w = request(t, r, http.MethodDelete, path, tokenB, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete status=%d", w.Code)
	}

	// the foreign attempts changed nothing
	w = request(t, r, http.MethodGet, path, tokenA, "")
	_ = json.Unmarshal(w.Body.Bytes(), &fetched)
	if fetched.Title != "t" {
		t.Fatalf("bookmark mutated by foreign caller: %+v", fetched)
	}

	// owner partial update merges fields
	w = request(t, r, http.MethodPut, path, tokenA, `{"description":"notes"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}
	var updated models.Bookmark
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Description != "notes" || updated.Title != "t" || updated.Link != "https://x.com" {
		t.Fatalf("merge mismatch: %+v", updated)
	}

	// delete → 204; repeat → 404; missing ids → 404
	w = request(t, r, http.MethodDelete, path, tokenA, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", w.Code)
	}
	w = request(t, r, http.MethodDelete, path, tokenA, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status=%d", w.Code)
	}
	w = request(t, r, http.MethodPut, "/bookmarks/9999", tokenA, `{"title":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("update of missing id status=%d", w.Code)
	}
}

func TestEndToEnd_Profile(t *testing.T) {
	r, _ := newE2ERouter(t)

	w := request(t, r, http.MethodPost, "/auth/signup", "", `{"email":"p@x.com","password":"pw123456"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status=%d", w.Code)
	}
	token := tokenFrom(t, w)

	w = request(t, r, http.MethodGet, "/users/profile", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("profile status=%d, body=%s", w.Code, w.Body.String())
	}
	if bytes.Contains(w.Body.Bytes(), []byte("password")) {
		t.Fatalf("hash leaked: %s", w.Body.String())
	}

	w = request(t, r, http.MethodPut, "/users", token, `{"first_name":"Ada","last_name":"Lovelace"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("profile update status=%d, body=%s", w.Code, w.Body.String())
	}
	var u models.User
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if u.FirstName == nil || *u.FirstName != "Ada" || u.Email != "p@x.com" {
		t.Fatalf("unexpected profile: %+v", u)
	}

	// without a token the profile surface is closed
	w = request(t, r, http.MethodGet, "/users/profile", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
