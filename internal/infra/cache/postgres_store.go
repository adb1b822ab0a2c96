package cache

import (
	"context"
	"log/slog"
	"time"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const expiredSweepInterval = 10 * time.Minute

// postgresStore keeps cache entries in the cache_entries table for
// deployments without Redis. Reads filter on expires_at so an expired row
// is a miss even before the sweeper deletes it.
type postgresStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresStore creates a CacheStore backed by the cache_entries table.
func NewPostgresStore(db *gorm.DB) service.CacheStore {
	return newPostgresStore(db, time.Now)
}

func newPostgresStore(db *gorm.DB, now func() time.Time) *postgresStore {
	return &postgresStore{db: db, now: now}
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rows []*model.CacheEntryModel

	if err := s.db.WithContext(ctx).
		Where("cache_key = ? AND expires_at > ?", key, s.now()).
		Find(&rows).Error; err != nil {
		return nil, false, errors.Wrapf(err, "failed to read cache entry %s", key)
	}

	if len(rows) == 0 {
		return nil, false, nil
	}

	return rows[0].Value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.MSet(ctx, []service.CacheEntry{{Key: key, Value: value, TTL: ttl}})
}

func (s *postgresStore) MGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	found := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return found, nil
	}

	var rows []*model.CacheEntryModel
	if err := s.db.WithContext(ctx).
		Where("cache_key IN ? AND expires_at > ?", keys, s.now()).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read cache entries")
	}

	for _, row := range rows {
		found[row.CacheKey] = row.Value
	}

	return found, nil
}

func (s *postgresStore) MSet(ctx context.Context, entries []service.CacheEntry) error {
	if len(entries) == 0 {
		return nil
	}

	now := s.now()
	rows := make([]*model.CacheEntryModel, 0, len(entries))
	for _, entry := range entries {
		if entry.TTL <= 0 {
			return errors.Wrapf(ErrInvalidTTL, "key %s", entry.Key)
		}
		rows = append(rows, &model.CacheEntryModel{
			CacheKey:  entry.Key,
			Value:     entry.Value,
			ExpiresAt: now.Add(entry.TTL),
		})
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(&rows).Error

	return errors.Wrap(err, "failed to upsert cache entries")
}

// DeleteExpired removes rows that can no longer be read.
func (s *postgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", s.now()).
		Delete(&model.CacheEntryModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired cache entries")
	}

	return result.RowsAffected, nil
}

func (s *postgresStore) sweep(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.DeleteExpired(ctx)
			if err != nil {
				logger.Warn("Cache sweep failed", slog.Any("error", err))

				continue
			}
			if deleted > 0 {
				logger.Debug("Cache sweep removed expired entries", slog.Int64("deleted", deleted))
			}
		}
	}
}
