package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/profolio/profolio/internal/config"
	"github.com/profolio/profolio/internal/health"
	"github.com/profolio/profolio/internal/observability"
)

// App bundles everything main needs to run and later tear down in order:
// HTTP first, then telemetry pipelines, then the backing connections.
type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
	Readiness     *health.ProbeRunner
}

func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	readiness *health.ProbeRunner,
) *App {
	return &App{
		Config:        cfg,
		Logger:        logger,
		Server:        server,
		Observability: runtime,
		DB:            db,
		Redis:         redisClient,
		Readiness:     readiness,
	}
}

// ShutdownTimeout is the budget for the whole teardown sequence.
func (a *App) ShutdownTimeout() time.Duration {
	if a.Config != nil && a.Config.ShutdownTimeout > 0 {
		return a.Config.ShutdownTimeout
	}
	return 20 * time.Second
}
