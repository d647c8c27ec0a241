package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cafehub/internal/container"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
)

// ContactModule wires the public contact form.
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Tight per-IP limit: each submission triggers an outbound email.
	contactLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/contact", contactLimiter, m.Handler.Submit)
}
