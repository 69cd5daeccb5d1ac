package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/es"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/pg"
	"github.com/DjordjeVuckovic/rpncalc/pkg/utils"
)

type StoreConfig struct {
	history.Type
	Pg *pg.Config
	Es *es.ClientConfig
}

// LoadEnv reads HISTORY_TYPE and the backend specific variables. An unset
// HISTORY_TYPE selects the in-memory store.
func LoadEnv() (*StoreConfig, error) {
	storeType := history.Type(os.Getenv("HISTORY_TYPE"))
	if storeType == "" {
		slog.Info("HISTORY_TYPE is not set, using in-memory history")
		storeType = history.InMem
	}
	if storeType != history.ES && storeType != history.PG && storeType != history.InMem {
		return nil, fmt.Errorf(
			"invalid HISTORY_TYPE environment variable value: %s, expected one of %v",
			storeType,
			[]history.Type{history.ES, history.PG, history.InMem})
	}

	cfg := &StoreConfig{Type: storeType}

	switch storeType {
	case history.ES:
		var addresses []string
		for _, addr := range strings.Split(os.Getenv("ES_ADDRESSES"), ",") {
			addresses = append(addresses, strings.TrimSpace(addr))
		}
		cfg.Es = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(addresses),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 || cfg.Es.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
	case history.PG:
		cfg.Pg = &pg.Config{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}
