package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brsv-srg/qodefly-dashboard/internal/config"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
)

// ClientStorages groups the client-side storage the terminal client needs.
type ClientStorages struct {
	// TokenStore is the durable store selected by Session.Store.
	TokenStore TokenStore

	closeFn func() error
}

// NewClientStorages builds the token store selected by cfg.Store:
//   - memory: [NewMemoryTokenStore]
//   - file:   [NewFileTokenStore] at cfg.FilePath, sealed with cfg.FileSecret
//   - sqlite: opens cfg.SQLiteDSN, runs migrations, [NewSQLiteTokenStore]
//   - redis:  connects to cfg.RedisAddr, pings, [NewRedisTokenStore]
//
// Returns [ErrUnknownStore] for any other value.
func NewClientStorages(ctx context.Context, cfg config.Session, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("store", cfg.Store).Msg("creating new storages...")

	switch cfg.Store {
	case config.StoreMemory:
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil

	case config.StoreFile:
		return &ClientStorages{TokenStore: NewFileTokenStore(cfg.FilePath, cfg.Key, cfg.FileSecret)}, nil

	case config.StoreSQLite:
		db, err := NewConnectSQLite(ctx, cfg.SQLiteDSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{
			TokenStore: NewSQLiteTokenStore(db, cfg.Key, log),
			closeFn:    db.Close,
		}, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		return &ClientStorages{
			TokenStore: NewRedisTokenStore(client, cfg.Key),
			closeFn:    client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}

// Close releases the database or redis connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
