// internal/app/app.go
package app

import (
	"github.com/codescope-coders/codescope-rework/config"
	"github.com/codescope-coders/codescope-rework/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate
	Logger      *zap.Logger
	Files       storage.FileStore
}
