package store

import (
	"context"
	"fmt"

	"finledger/internal/config"
)

// Open builds the configured persistence backend. The returned cleanup
// func releases whatever the backend holds open.
func Open(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	switch cfg.StoreBackend {
	case "memory":
		return NewMemory(), func() {}, nil
	case "file":
		return NewJSONFile(cfg.LedgerFile), func() {}, nil
	case "sqlite":
		s, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, func() { s.Close() }, nil
	case "postgres":
		s, err := Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres store: %w", err)
		}
		return s, func() { s.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
