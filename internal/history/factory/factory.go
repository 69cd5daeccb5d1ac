package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/es"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/pg"
)

// NewStore creates a history.Store for the configured backend
func NewStore(ctx context.Context, cfg StoreConfig) (history.Store, error) {
	switch cfg.Type {
	case history.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		store, err := pg.NewStore(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL history store: %w", err)
		}
		return store, nil

	case history.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStore(ctx, *cfg.Es)

	case history.InMem:
		return in_mem.NewStore(), nil

	default:
		return nil, fmt.Errorf(string(history.ErrUnsupportedStore), cfg.Type)
	}
}
