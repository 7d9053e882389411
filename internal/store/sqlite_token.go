package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
)

const sessionTokensTable = "session_tokens"

// sqlb renders queries with "?" placeholders as expected by go-sqlite3.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sqliteTokenStore struct {
	*DB
	key    string
	logger *logger.Logger
}

// NewSQLiteTokenStore returns a [TokenStore] keeping the token in the
// session_tokens row identified by key. db must already be migrated.
func NewSQLiteTokenStore(db *DB, key string, log *logger.Logger) TokenStore {
	log.Debug().Msg("creating sqlite token store")
	return &sqliteTokenStore{DB: db, key: key, logger: log}
}

func (s *sqliteTokenStore) Load(ctx context.Context) (string, bool, error) {
	query, args, err := sqlb.
		Select("token").
		From(sessionTokensTable).
		Where(sq.Eq{"session_key": s.key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Load").Msg("failed to query session token")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return "", false, nil
	}

	var token string
	if err = rows.Scan(&token); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Load").Msg("failed to read session token")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, token != "", nil
}

func (s *sqliteTokenStore) Save(ctx context.Context, token string) error {
	query, args, err := sqlb.
		Insert(sessionTokensTable).
		Columns("session_key", "token", "updated_at").
		Values(s.key, token, time.Now().UTC()).
		Suffix("ON CONFLICT(session_key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Save").Msg("failed to upsert session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	query, args, err := sqlb.
		Delete(sessionTokensTable).
		Where(sq.Eq{"session_key": s.key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.Clear").Msg("failed to delete session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
