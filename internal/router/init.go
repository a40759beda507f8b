package router

import (
	"authapi/internal/application"
	"authapi/internal/container"
	pginfra "authapi/internal/infrastructure/postgres"
	handlers "authapi/internal/interface/http"
	"authapi/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// and registers every feature module. Called once during startup.
func InitModules(r *Registry, c *container.Container) {
	repo := pginfra.NewUserRepository(c.Pool)

	authSvc := application.NewAuthService(repo, c.JWT, c.Logger)
	userSvc := application.NewUserService(repo, c.Redis, c.Cfg.UserCacheTTL, c.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, c.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, c.Logger)))
}
