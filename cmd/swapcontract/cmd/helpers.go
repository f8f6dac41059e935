package cmd

import (
	"github.com/rateleg/swap-contract/internal/platform/config"
	"github.com/rateleg/swap-contract/internal/platform/db"
)

// environmentDB opens the contract store configured through the
// environment.
func environmentDB() (*config.Config, *db.DB, error) {
	cfg, err := config.Environment()
	if err != nil {
		return nil, nil, err
	}

	dbConn, err := db.New(&db.StorageConfig{
		Bucket: cfg.Storage.Bucket,
		Root:   cfg.Storage.Root,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, dbConn, nil
}
