package repository

import (
	"context"
	"time"

	"github.com/epi-dashboard/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, (nil, nil) при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetGenes получает таблицу генов из кеша
	GetGenes(ctx context.Context) ([]domain.Gene, error)

	// SetGenes сохраняет таблицу генов
	SetGenes(ctx context.Context, genes []domain.Gene, ttl time.Duration) error

	// GetGeoPoints получает точки карты из кеша
	GetGeoPoints(ctx context.Context) ([]domain.GeoPoint, error)

	// SetGeoPoints сохраняет точки карты
	SetGeoPoints(ctx context.Context, points []domain.GeoPoint, ttl time.Duration) error
}
