package router

import (
	"users-api/internal/application"
	"users-api/internal/container"
	"users-api/internal/domain/repository"
	"users-api/internal/infrastructure/cache"
	pginfra "users-api/internal/infrastructure/postgres"
	handlers "users-api/internal/interface/http"
	"users-api/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()

	var repo repository.UserRepository = pginfra.NewUserRepository(container.GetPGPool())
	if rdb := container.GetRedis(); rdb != nil {
		repo = cache.NewCachingUserRepository(rdb, cfg.CacheTTL, repo, "users")
	}

	fmtr := container.GetTimeFormatter()
	handler := handlers.NewUserHandler(
		application.NewCreateUser(repo, fmtr),
		application.NewGetUserByID(repo, fmtr),
		application.NewListUsers(repo, fmtr),
		application.NewUpdateUser(repo, fmtr),
		application.NewDeleteUserByID(repo),
	)

	return modules.NewUserModule(handler, container.GetRedis())
}

// InitModules wires every application module into the registry. Called once
// during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(modules.NewHealthModule())
}
