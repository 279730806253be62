package connection

import (
	"log/slog"

	"pindrop/config"
	"pindrop/internal/domain/constants"
	"pindrop/internal/domain/service"
	"pindrop/internal/infra/cache"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// SourceParams holds dependencies for ConnectionService, injected by Fx
type SourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewConnectionService creates a ConnectionService based on configuration.
// The source is wrapped with the Redis read-through cache when Redis is
// configured.
func NewConnectionService(params SourceParams) (service.ConnectionService, error) {
	cfg := params.Config.Connection
	logger := params.Logger

	var source service.ConnectionService

	switch {
	case cfg == nil || cfg.Source == "" || cfg.Source == constants.ConnectionSourcePostgres:
		logger.Info("Using postgres connection source")

		source = NewPostgresSource(params.DB)

	case cfg.Source == constants.ConnectionSourceHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http connection source")
		}
		logger.Info("Using http connection source",
			slog.String("endpoint", cfg.Endpoint),
		)

		source = NewHTTPSource(cfg.Endpoint, logger)

	default:
		return nil, errors.Errorf("unknown connection source: %s", cfg.Source)
	}

	return cache.WrapConnectionService(source, params.Config, logger)
}

// Module provides the connection source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewConnectionService),
)
