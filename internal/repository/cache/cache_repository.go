package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/epi-dashboard/internal/domain"
	"github.com/epi-dashboard/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyGenes     = "epi:genome:genes"
	keyGeoPoints = "epi:geography:points"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// GetGenes получает таблицу генов из кеша
func (r *cacheRepository) GetGenes(ctx context.Context) ([]domain.Gene, error) {
	var genes []domain.Gene
	found, err := r.getJSON(ctx, keyGenes, &genes)
	if err != nil || !found {
		return nil, err
	}
	return genes, nil
}

// SetGenes сохраняет таблицу генов в кеше
func (r *cacheRepository) SetGenes(ctx context.Context, genes []domain.Gene, ttl time.Duration) error {
	return r.setJSON(ctx, keyGenes, genes, ttl)
}

// GetGeoPoints получает точки карты из кеша
func (r *cacheRepository) GetGeoPoints(ctx context.Context) ([]domain.GeoPoint, error) {
	var points []domain.GeoPoint
	found, err := r.getJSON(ctx, keyGeoPoints, &points)
	if err != nil || !found {
		return nil, err
	}
	return points, nil
}

// SetGeoPoints сохраняет точки карты в кеше
func (r *cacheRepository) SetGeoPoints(ctx context.Context, points []domain.GeoPoint, ttl time.Duration) error {
	return r.setJSON(ctx, keyGeoPoints, points, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}
