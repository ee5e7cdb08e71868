package usecase

import (
	"context"
	"time"

	"github.com/epi-dashboard/internal/domain"
	"github.com/epi-dashboard/internal/domain/repository"
	"github.com/epi-dashboard/internal/pkg/metrics"
	"go.uber.org/zap"
)

// Generator - источник синтетических данных
type Generator interface {
	Overview() domain.Overview
	TimeSeries(metric domain.Metric, smooth int) []domain.SeriesPoint
	LineageFrequencies() domain.LineageFrequencies
	GenomeGenes() []domain.Gene
	GenomeMutations(gene string) []domain.Mutation
	GeographyPoints() []domain.GeoPoint
}

// DashboardUseCase отдаёт данные для страниц дашборда.
// Через кеш идут только статические справочники (гены, точки карты).
type DashboardUseCase struct {
	generator Generator
	cacheRepo repository.CacheRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
// cacheRepo может быть nil - тогда справочники всегда берутся из генератора.
func NewDashboardUseCase(
	generator Generator,
	cacheRepo repository.CacheRepository,
	metrics *metrics.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DashboardUseCase {
	return &DashboardUseCase{
		generator: generator,
		cacheRepo: cacheRepo,
		metrics:   metrics,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (uc *DashboardUseCase) Overview(ctx context.Context) domain.Overview {
	uc.logger.Debug("Generating overview")
	uc.metrics.RecordPayload("overview")
	return uc.generator.Overview()
}

func (uc *DashboardUseCase) TimeSeries(ctx context.Context, metric domain.Metric, smooth int) []domain.SeriesPoint {
	uc.logger.Debug("Generating time series",
		zap.String("metric", metric.String()),
		zap.Int("smooth", smooth),
	)
	uc.metrics.RecordPayload("timeseries")
	return uc.generator.TimeSeries(metric, smooth)
}

func (uc *DashboardUseCase) LineageFrequencies(ctx context.Context) domain.LineageFrequencies {
	uc.logger.Debug("Generating lineage frequencies")
	uc.metrics.RecordPayload("lineage_frequencies")
	return uc.generator.LineageFrequencies()
}

func (uc *DashboardUseCase) GenomeMutations(ctx context.Context, gene string) []domain.Mutation {
	uc.logger.Debug("Generating genome mutations", zap.String("gene", gene))
	uc.metrics.RecordPayload("genome_mutations")
	return uc.generator.GenomeMutations(gene)
}

// GenomeGenes возвращает таблицу генов, используя кеш когда возможно
func (uc *DashboardUseCase) GenomeGenes(ctx context.Context) []domain.Gene {
	uc.metrics.RecordPayload("genome_genes")

	if uc.cacheRepo == nil {
		return uc.generator.GenomeGenes()
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetGenes(ctx)
	switch {
	case err != nil:
		uc.logger.Warn("Failed to get genes from cache", zap.Error(err))
		uc.metrics.RecordCacheLookup("genes", "error")
	case cached != nil:
		uc.logger.Debug("Genes fetched from cache")
		uc.metrics.RecordCacheLookup("genes", "hit")
		return cached
	default:
		uc.metrics.RecordCacheLookup("genes", "miss")
	}

	// 2. Берём из генератора и кешируем
	genes := uc.generator.GenomeGenes()
	if err := uc.cacheRepo.SetGenes(ctx, genes, uc.cacheTTL); err != nil {
		// Не возвращаем ошибку, т.к. данные уже получены
		uc.logger.Warn("Failed to cache genes", zap.Error(err))
	}
	return genes
}

// GeographyPoints возвращает точки карты, используя кеш когда возможно
func (uc *DashboardUseCase) GeographyPoints(ctx context.Context) []domain.GeoPoint {
	uc.metrics.RecordPayload("geography_points")

	if uc.cacheRepo == nil {
		return uc.generator.GeographyPoints()
	}

	cached, err := uc.cacheRepo.GetGeoPoints(ctx)
	switch {
	case err != nil:
		uc.logger.Warn("Failed to get geo points from cache", zap.Error(err))
		uc.metrics.RecordCacheLookup("geo_points", "error")
	case cached != nil:
		uc.logger.Debug("Geo points fetched from cache")
		uc.metrics.RecordCacheLookup("geo_points", "hit")
		return cached
	default:
		uc.metrics.RecordCacheLookup("geo_points", "miss")
	}

	points := uc.generator.GeographyPoints()
	if err := uc.cacheRepo.SetGeoPoints(ctx, points, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geo points", zap.Error(err))
	}
	return points
}
