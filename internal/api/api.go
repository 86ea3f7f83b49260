package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"webhooks-api/internal/auth"
	"webhooks-api/internal/config"
	"webhooks-api/internal/metrics"
	"webhooks-api/internal/storage"
)

// Store is what the routes need from the database layer.
type Store interface {
	auth.UserStore
	storage.SessionOpener
	Ping(ctx context.Context) error
}

type API struct {
	Routers *chi.Mux
	Store   Store
	Cfg     *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

func NewAPI(store Store, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *API {
	return &API{
		Routers: chi.NewRouter(),
		Store:   store,
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
	}
}
