package router

import (
	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/container"
	pginfra "github.com/oksasatya/cafehub/internal/infrastructure/postgres"
	"github.com/oksasatya/cafehub/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/cafehub/internal/interface/http"
	"github.com/oksasatya/cafehub/internal/interface/middleware"
	"github.com/oksasatya/cafehub/internal/router/modules"
	"github.com/oksasatya/cafehub/pkg/mailer"
)

// InitModules builds the application services from the container
// singletons and registers all feature modules with the router registry.
// This function should be called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	cafeRepo := pginfra.NewCafeRepository(pool)
	commentRepo := pginfra.NewCommentRepository(pool)

	sessions := application.NewSessionManager(
		userRepo,
		redisstore.NewSessionStore(container.GetRedis()),
		container.GetTokens(),
		cfg.SessionTTL,
		logger,
	)

	// Optional collaborators stay nil-safe: a typed nil assigned to the
	// interface would dodge the services' nil checks.
	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	var sender mailer.Sender
	if mg := container.GetMailgun(); mg != nil {
		sender = mg
	}

	users := application.NewUserService(userRepo, pub, cfg.MailSendEnabled, logger)
	cafes := application.NewCafeService(
		cafeRepo, commentRepo,
		container.GetGCS(), cfg.GCSBucket,
		container.GetES(), cfg.ESCafesIndex,
		logger,
	)
	contact := application.NewContactService(sender, cfg.ContactTo(), logger)

	authHandler := handlers.NewAuthHandler(users, sessions, logger, cfg.CookieDomain, cfg.CookieSecure)
	cafeHandler := handlers.NewCafeHandler(cafes, cfg, logger)
	contactHandler := handlers.NewContactHandler(contact, logger)

	// Every request resolves an identity (possibly Anonymous) up front.
	r.Use(middleware.ResolveIdentity(sessions))

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewCafeModule(cafeHandler))
	r.Add(modules.NewContactModule(contactHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
