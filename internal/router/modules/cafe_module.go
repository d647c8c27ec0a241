package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/cafehub/internal/container"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
)

// CafeModule wires the cafe pages.
// Public: GET /, GET /cafes, GET /cafes/search, GET /cafe_post/:id
// Authenticated (gated in the handlers): POST /new-place, POST /cafe_post/:id
// Admin (gated in the handler): GET /delete/:id
type CafeModule struct {
	Handler *handlers.CafeHandler
}

func NewCafeModule(h *handlers.CafeHandler) *CafeModule {
	return &CafeModule{Handler: h}
}

func (m *CafeModule) Register(rg *gin.RouterGroup) {
	mutateLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUser(), nil)

	rg.GET("/", m.Handler.Home)
	rg.GET("/cafes", m.Handler.List)
	rg.GET("/cafes/search", m.Handler.Search)
	rg.GET("/cafe_post/:id", m.Handler.Detail)

	rg.POST("/new-place", mutateLimiter, m.Handler.Create)
	rg.POST("/cafe_post/:id", mutateLimiter, m.Handler.AddComment)
	rg.GET("/delete/:id", m.Handler.Delete)
}
