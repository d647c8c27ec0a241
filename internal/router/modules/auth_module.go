package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cafehub/internal/container"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
)

// AuthModule wires registration, login, and logout.
// Public: POST /register, POST /login
// Any caller: GET /logout (invalidating nothing is fine)
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
