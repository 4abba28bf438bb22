package router

import (
	"authservice/internal/application"
	"authservice/internal/container"
	pginfra "authservice/internal/infrastructure/postgres"
	handlers "authservice/internal/interface/http"
	"authservice/internal/interface/middleware"
	"authservice/internal/router/modules"
	"authservice/internal/session"
	"authservice/pkg/helpers"
)

// InitModules wires all application modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetLogger())
	sessions := session.NewRedisStore(container.GetRedis(), cfg.SessionTTL)
	cookies := helpers.NewCookie(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)

	// Resolve the session once per request; handlers read the immutable
	// principal from the context.
	r.Use(middleware.ResolveSession(sessions, cookies, container.GetLogger()))

	authHandler := handlers.NewAuthHandler(svc, sessions, cookies, container.GetLogger())
	r.Add(modules.NewAuthModule(authHandler, container.GetRedis(), cfg.LoginRateMax, cfg.LoginRateWindow))
	r.Add(modules.NewDiagModule(handlers.NewDiagHandler()))
}
