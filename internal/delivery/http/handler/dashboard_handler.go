package handler

import (
	"github.com/epi-dashboard/internal/domain"
	"github.com/epi-dashboard/internal/pkg/utils"
	"github.com/epi-dashboard/internal/usecase"
	"github.com/epi-dashboard/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler обрабатывает запросы страниц дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// Overview godoc
// @Summary Overview KPIs
// @Description KPI, 20-дневный тренд, топ линий и регионов
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Overview
// @Router /api/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	return utils.SendJSON(c, h.dashboardUC.Overview(c.UserContext()))
}

// TimeSeries godoc
// @Summary Daily time series
// @Description 40 дневных точек, последняя - сегодня. smooth принимается, но не меняет данные
// @Tags Dashboard
// @Produce json
// @Param metric query string false "cases | positivity | tests" default(cases)
// @Param smooth query int false "Smoothing window (pass-through)" default(0)
// @Success 200 {object} dto.TimeSeriesResponse
// @Router /api/timeseries [get]
func (h *DashboardHandler) TimeSeries(c *fiber.Ctx) error {
	q := dto.TimeSeriesQuery{
		Metric: c.Query("metric"),
		Smooth: c.QueryInt("smooth", dto.DefaultSmooth),
	}
	if reset := q.ApplyDefaults(); len(reset) > 0 {
		h.logger.Debug("Invalid query params replaced with defaults", zap.Strings("fields", reset))
	}

	series := h.dashboardUC.TimeSeries(c.UserContext(), domain.ParseMetric(q.Metric), q.Smooth)
	return utils.SendJSON(c, dto.TimeSeriesResponse{Series: series})
}

// LineageFrequencies godoc
// @Summary Weekly lineage shares
// @Description Доли 5 линий по неделям, сумма за неделю равна 100
// @Tags Lineages
// @Produce json
// @Param norm query string false "Normalisation (pass-through)" default(pct)
// @Success 200 {object} domain.LineageFrequencies
// @Router /api/lineages/frequencies [get]
func (h *DashboardHandler) LineageFrequencies(c *fiber.Ctx) error {
	q := dto.LineageFrequenciesQuery{Norm: c.Query("norm")}
	if reset := q.ApplyDefaults(); len(reset) > 0 {
		h.logger.Debug("Invalid query params replaced with defaults", zap.Strings("fields", reset))
	}

	return utils.SendJSON(c, h.dashboardUC.LineageFrequencies(c.UserContext()))
}

// GenomeGenes godoc
// @Summary Genome annotation
// @Tags Genome
// @Produce json
// @Success 200 {object} dto.GenesResponse
// @Router /api/genome/genes [get]
func (h *DashboardHandler) GenomeGenes(c *fiber.Ctx) error {
	return utils.SendJSON(c, dto.GenesResponse{Genes: h.dashboardUC.GenomeGenes(c.UserContext())})
}

// GenomeMutations godoc
// @Summary Mutations within a gene window
// @Description 30 мутаций; для неизвестного гена используется окно Spike
// @Tags Genome
// @Produce json
// @Param gene query string false "Gene name" default(Spike)
// @Success 200 {object} dto.MutationsResponse
// @Router /api/genome/mutations [get]
func (h *DashboardHandler) GenomeMutations(c *fiber.Ctx) error {
	q := dto.GenomeMutationsQuery{Gene: c.Query("gene")}
	if reset := q.ApplyDefaults(); len(reset) > 0 {
		h.logger.Debug("Invalid query params replaced with defaults", zap.Strings("fields", reset))
	}

	muts := h.dashboardUC.GenomeMutations(c.UserContext(), q.Gene)
	return utils.SendJSON(c, dto.MutationsResponse{Mutations: muts})
}

// GeographyPoints godoc
// @Summary City case counts
// @Tags Geography
// @Produce json
// @Success 200 {object} dto.FeatureCollection
// @Router /api/geography/points [get]
func (h *DashboardHandler) GeographyPoints(c *fiber.Ctx) error {
	points := h.dashboardUC.GeographyPoints(c.UserContext())
	return utils.SendJSON(c, dto.NewFeatureCollection(points))
}
