package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/internal/domain/repository/mocks"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/pkg/helpers"
	"github.com/oksasatya/cafehub/pkg/validation"
)

type mapStore struct {
	sessions map[string]int64
}

func (s *mapStore) Put(_ context.Context, sid string, userID int64, _ time.Duration) error {
	s.sessions[sid] = userID
	return nil
}

func (s *mapStore) Get(_ context.Context, sid string) (int64, bool, error) {
	uid, ok := s.sessions[sid]
	return uid, ok, nil
}

func (s *mapStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func newAuthHandler(users *mocks.UserRepository) *handlers.AuthHandler {
	logger := logrus.New()
	userSvc := application.NewUserService(users, nil, false, logger)
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	store := &mapStore{sessions: map[string]int64{}}
	sessions := application.NewSessionManager(users, store, tokens, time.Hour, logger)
	return handlers.NewAuthHandler(userSvc, sessions, logger, "", false)
}

func postForm(t *testing.T, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c, w
}

func TestLogin_UnknownEmailAndBadPasswordLookAlike(t *testing.T) {
	hash, err := helpers.HashPassword("right-password")
	require.NoError(t, err)

	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&entity.User{ID: 2, Email: "known@example.com", PasswordHash: hash}, nil)
	users.On("GetByEmail", mock.Anything, "unknown@example.com").
		Return(nil, repo.ErrNotFound)

	h := newAuthHandler(users)

	c, w := postForm(t, "/login", "email=unknown@example.com&password=right-password")
	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var unknownResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &unknownResp))

	c, w = postForm(t, "/login", "email=known@example.com&password=wrong-password")
	h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var badPwResp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &badPwResp))

	// Same message either way, so the endpoint does not reveal which
	// addresses have accounts.
	assert.Equal(t, unknownResp["message"], badPwResp["message"])
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	hash, err := helpers.HashPassword("right-password")
	require.NoError(t, err)

	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "known@example.com").
		Return(&entity.User{ID: 2, Email: "known@example.com", PasswordHash: hash}, nil)

	h := newAuthHandler(users)
	c, w := postForm(t, "/login", "email=known@example.com&password=right-password")
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, helpers.SessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestRegister_DuplicateRedirectsToLogin(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&entity.User{ID: 3, Email: "taken@example.com"}, nil)

	h := newAuthHandler(users)
	c, w := postForm(t, "/register", "email=taken@example.com&password=password123&name=Bob")
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	meta, _ := resp["meta"].(map[string]any)
	assert.Equal(t, "/login", meta["redirect"])
}

func TestRegister_ValidatesPayload(t *testing.T) {
	h := newAuthHandler(new(mocks.UserRepository))

	c, w := postForm(t, "/register", "email=not-an-email&password=short&name=")
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	details, _ := resp["error"].(map[string]any)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
	assert.Contains(t, details, "name")
}
