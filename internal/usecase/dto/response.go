package dto

import "github.com/epi-dashboard/internal/domain"

// TimeSeriesResponse - ответ GET /api/timeseries
type TimeSeriesResponse struct {
	Series []domain.SeriesPoint `json:"series"`
}

// GenesResponse - ответ GET /api/genome/genes
type GenesResponse struct {
	Genes []domain.Gene `json:"genes"`
}

// MutationsResponse - ответ GET /api/genome/mutations
type MutationsResponse struct {
	Mutations []domain.Mutation `json:"mutations"`
}
