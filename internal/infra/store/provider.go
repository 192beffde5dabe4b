package store

import (
	"log/slog"

	"pinmap/config"
	"pinmap/internal/domain/repository"
	"pinmap/internal/domain/service"
	"pinmap/internal/errors"
	"pinmap/internal/infra/metrics"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of the pin store provider.
type Params struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	DB       *gorm.DB                 `optional:"true"`
	Repo     repository.PinRepository `optional:"true"`
	Supabase *supabase.Client         `optional:"true"`
}

// NewPinStore builds the configured backend, guarded by the circuit breaker
// when enabled. Metrics wrap the outside so fail-fast rejections are counted.
func NewPinStore(params Params) (service.PinStore, error) {
	backend := params.Config.Store.Backend

	var base service.PinStore
	switch backend {
	case config.StoreBackendPostgres:
		if params.DB == nil || params.Repo == nil {
			return nil, errors.New("store backend postgres requires a postgres section")
		}
		base = NewPostgresStore(params.Repo)
	case config.StoreBackendSupabase:
		if params.Supabase == nil {
			return nil, errors.New("store backend supabase requires a supabase section")
		}
		base = NewSupabaseStore(params.Supabase, params.Logger)
	default:
		return nil, errors.Errorf("unknown store backend %q", backend)
	}

	pinStore := base
	if params.Config.Store.Breaker.Enabled {
		pinStore = NewBreakerStore(pinStore, "pin-store-"+backend, params.Config.Store.Breaker, params.Logger, params.Metrics)
	}
	pinStore = NewInstrumentedStore(pinStore, backend, params.Metrics)

	params.Logger.Info("Pin store ready",
		slog.String("backend", backend),
		slog.Bool("breaker", params.Config.Store.Breaker.Enabled),
	)

	return pinStore, nil
}

// NewSupabaseClient creates the Supabase client, or returns nil when no
// supabase section is configured.
func NewSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, nil
	}

	client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Supabase client")
	}

	return client, nil
}
