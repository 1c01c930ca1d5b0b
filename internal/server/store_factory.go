package server

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/endzone-trade-service/internal/config"
	"github.com/preston-bernstein/endzone-trade-service/internal/store"
)

const driverMemory = "memory"

// OpenStore selects the account store for the configured driver.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (store.Store, error) {
	switch cfg.Driver {
	case driverMemory:
		return store.NewMemoryStore(), nil
	case store.DriverSQLite, store.DriverPostgres, "":
		driver := cfg.Driver
		if driver == "" {
			driver = store.DriverSQLite
		}
		s, err := store.Open(ctx, driver, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
