package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/pkg/helpers"
	"github.com/oksasatya/cafehub/pkg/response"
	"github.com/oksasatya/cafehub/pkg/validation"
)

type AuthHandler struct {
	Users    *application.UserService
	Sessions *application.SessionManager
	Logger   *logrus.Logger
	Cookies  *helpers.CookieManager
}

func NewAuthHandler(users *application.UserService, sessions *application.SessionManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,pwd"`
	Name     string `form:"name" json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Register creates an account and logs the new user straight in. A
// duplicate email points the client at the login page instead.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			resp := response.Error[any](c, http.StatusConflict, "email already registered, please log in", nil)
			resp.Meta = map[string]any{"redirect": "/login"}
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	token, exp, err := h.Sessions.Establish(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("session establish failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not establish session", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Cookies.SetSession(c, token, exp)

	resp := response.Success(c, http.StatusCreated, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}, "registered", map[string]any{"redirect": "/"})
	c.JSON(resp.Status, resp)
}

// Login verifies credentials and establishes a session. Unknown email and
// wrong password collapse into one message so the endpoint does not
// confirm which addresses have accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		c.JSON(resp.Status, resp)
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) || errors.Is(err, application.ErrBadCredentials) {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
			c.JSON(resp.Status, resp)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	token, exp, err := h.Sessions.Establish(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", u.ID).Error("session establish failed")
		resp := response.Error[any](c, http.StatusInternalServerError, "could not establish session", nil)
		c.JSON(resp.Status, resp)
		return
	}
	h.Cookies.SetSession(c, token, exp)

	resp := response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}, "login successful", map[string]any{"redirect": "/"})
	c.JSON(resp.Status, resp)
}

// Logout invalidates the session. Logging out without a session is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(helpers.SessionCookieName)
	h.Sessions.Invalidate(c.Request.Context(), token)
	h.Cookies.Clear(c)

	resp := response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", map[string]any{"redirect": "/"})
	c.JSON(resp.Status, resp)
}
