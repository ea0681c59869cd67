package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-digest/internal/storage"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/es"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	// Mirror is set when ES_ADDRESSES is configured.
	Mirror *es.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.PG
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		maxConns, err := env.PositiveInt("PG_MAX_CONNS", 10)
		if err != nil {
			return nil, err
		}
		pgCfg = &pg.PoolConfig{
			ConnStr:  os.Getenv("PG_CONNECTION_STRING"),
			MaxConns: int32(maxConns),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	var mirrorCfg *es.ClientConfig
	if addresses := env.List("ES_ADDRESSES"); len(addresses) > 0 {
		mirrorCfg = &es.ClientConfig{
			Addresses: addresses,
			IndexName: env.String("ES_INDEX_NAME", "news_digest_articles"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	}

	return &StorageConfig{
		Type:   storageType,
		Pg:     pgCfg,
		Mirror: mirrorCfg,
	}, nil
}
