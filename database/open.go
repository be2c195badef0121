package database

import (
	"context"

	"github.com/hpd-transportes/wash-registry/config"
)

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	switch cfg.Driver {
	case config.DriverMySQL, config.DriverSQLite:
		return OpenGorm(cfg.Driver, cfg.URL)
	default:
		return NewMongoStore(ctx, cfg.URL, cfg.Name)
	}
}
