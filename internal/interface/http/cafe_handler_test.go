package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/cafehub/config"
	"github.com/oksasatya/cafehub/internal/application"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/internal/domain/repository/mocks"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
)

func newDeleteContext(t *testing.T, id string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/delete/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c, w
}

func newCafeHandler(cafes *mocks.CafeRepository) *handlers.CafeHandler {
	svc := application.NewCafeService(cafes, new(mocks.CommentRepository), nil, "", nil, "", nil)
	cfg := &config.Config{AdminUserID: 1}
	logger := logrus.New()
	return handlers.NewCafeHandler(svc, cfg, logger)
}

func TestDelete_AdminSucceeds(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("Delete", mock.Anything, int64(42)).Return(nil)
	h := newCafeHandler(cafes)

	c, w := newDeleteContext(t, "42")
	middleware.SetIdentity(c, application.Identity{UserID: 1, Email: "admin@example.com"})
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cafes.AssertExpectations(t)
}

func TestDelete_NonAdminForbidden(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	h := newCafeHandler(cafes)

	c, w := newDeleteContext(t, "42")
	middleware.SetIdentity(c, application.Identity{UserID: 2, Email: "b@example.com"})
	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	// The gate runs before storage: no delete was attempted.
	cafes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_AnonymousForbidden(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	h := newCafeHandler(cafes)

	c, w := newDeleteContext(t, "42")
	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	cafes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_MissingCafe(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	cafes.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)
	h := newCafeHandler(cafes)

	c, w := newDeleteContext(t, "99")
	middleware.SetIdentity(c, application.Identity{UserID: 1})
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_BadID(t *testing.T) {
	cafes := new(mocks.CafeRepository)
	h := newCafeHandler(cafes)

	c, w := newDeleteContext(t, "abc")
	middleware.SetIdentity(c, application.Identity{UserID: 1})
	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	cafes.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
