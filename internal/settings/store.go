package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
	"github.com/haulfront/haulfront-backend/pkg/redis"
)

// kvStore is the slice of the Redis client the store uses. Tests substitute
// an in-memory fake.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SettingsKey(userID string) string
}

// Store reads and writes settings documents.
type Store struct {
	kv kvStore
}

// NewStore builds the store over the shared Redis client.
func NewStore(kv kvStore) *Store {
	return &Store{kv: kv}
}

// Load returns the user's saved document, or the defaults when none exists.
func (s *Store) Load(ctx context.Context, userID string) (Document, error) {
	raw, err := s.kv.Get(ctx, s.kv.SettingsKey(userID))
	if errors.Is(err, redis.Nil) {
		return Defaults(), nil
	}
	if err != nil {
		return Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("load settings for %s", userID))
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Document{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("decode settings for %s", userID))
	}
	return doc, nil
}

// Save replaces the user's document. Documents persist without a TTL.
func (s *Store) Save(ctx context.Context, userID string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("encode settings for %s", userID))
	}
	if err := s.kv.Set(ctx, s.kv.SettingsKey(userID), string(raw), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("save settings for %s", userID))
	}
	return nil
}
