// Package cache implements the preference store on Redis: the catalog
// fallback snapshot and per-session admin flags. Keys carry no expiry; the
// snapshot is meant to outlive database outages and the admin flag lives
// until logout.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	snapshotKey        = "storefront:catalog-snapshot"
	adminSessionPrefix = "storefront:admin-session:"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type preferenceStore struct {
	client *redis.Client
}

// New creates the Redis-backed preference store.
func New(params Params) repository.PreferenceStore {
	var opts redis.Options
	if params.Config.Redis != nil {
		opts = redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		}
	}

	client := redis.NewClient(&opts)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &preferenceStore{client: client}
}

// NewWithClient wraps an existing client; used by tests.
func NewWithClient(client *redis.Client) repository.PreferenceStore {
	return &preferenceStore{client: client}
}

func (s *preferenceStore) SaveSnapshot(ctx context.Context, snapshot *repository.CatalogSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal catalog snapshot")
	}

	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save catalog snapshot")
	}

	return nil
}

func (s *preferenceStore) LoadSnapshot(ctx context.Context) (*repository.CatalogSnapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	var snapshot repository.CatalogSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal catalog snapshot")
	}

	return &snapshot, nil
}

func (s *preferenceStore) SetAdminSession(ctx context.Context, sessionID string, isAdmin bool) error {
	key := adminSessionKey(sessionID)

	if !isAdmin {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return errors.Wrap(err, "failed to clear admin session")
		}

		return nil
	}

	if err := s.client.Set(ctx, key, "true", 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save admin session")
	}

	return nil
}

func (s *preferenceStore) AdminSession(ctx context.Context, sessionID string) (bool, error) {
	value, err := s.client.Get(ctx, adminSessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read admin session")
	}

	return value == "true", nil
}

func adminSessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", adminSessionPrefix, sessionID)
}
