package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"authapi/config"
	"authapi/pkg/helpers"
)

// Container carries the process-wide singletons constructed in main and
// passes them by reference into the router wiring. Everything here is
// read-only after startup; there is no ambient global state.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client // nil when the lookup cache is disabled
	JWT    *helpers.JWTManager
}

func New(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client, jwt *helpers.JWTManager) *Container {
	return &Container{Cfg: cfg, Logger: logger, Pool: pool, Redis: rdb, JWT: jwt}
}
