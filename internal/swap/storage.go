package swap

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/rateleg/swap-contract/internal/platform/db"
	"github.com/rateleg/swap-contract/internal/platform/state"
)

const storageKey = "swaps"

// Save a single swap in storage
func Save(ctx context.Context, dbConn *db.DB, s *state.Swap) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "Failed to marshal swap")
	}

	return dbConn.Put(ctx, buildStoragePath(s.ID), data)
}

// Fetch a single swap from storage
func Fetch(ctx context.Context, dbConn *db.DB, contractID string) (*state.Swap, error) {
	key := buildStoragePath(contractID)

	b, err := dbConn.Fetch(ctx, key)
	if err != nil {
		if err == db.ErrNotFound {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "Failed to fetch swap")
	}

	s := state.Swap{}
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal swap")
	}

	return &s, nil
}

// List returns the contract IDs of all stored swaps.
func List(ctx context.Context, dbConn *db.DB) ([]string, error) {
	keys, err := dbConn.List(ctx, storageKey)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list swaps")
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if len(key) > len(storageKey)+1 {
			ids = append(ids, key[len(storageKey)+1:])
		}
	}

	return ids, nil
}

// Returns the storage path for a given contract ID.
func buildStoragePath(contractID string) string {
	return fmt.Sprintf("%s/%s", storageKey, contractID)
}
