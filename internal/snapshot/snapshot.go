package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
)

// Read loads and decodes the collection stored under key. The error wraps
// ErrNotFound when the key is absent and ErrCorrupt when the stored value is
// not a valid JSON array of T.
func Read[T any](ctx context.Context, s Store, key string) ([]T, error) {
	data, err := s.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", key, ErrCorrupt, err)
	}

	return items, nil
}

// Write encodes items and saves them under key. A nil collection is stored
// as an empty array.
func Write[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.Save(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}

	return nil
}
