package dto

import "github.com/epi-dashboard/internal/pkg/validator"

// Значения query параметров по умолчанию
const (
	DefaultMetric = "cases"
	DefaultSmooth = 0
	DefaultNorm   = "pct"
	DefaultGene   = "Spike"
)

// TimeSeriesQuery - параметры GET /api/timeseries
type TimeSeriesQuery struct {
	Metric string `validate:"omitempty,oneof=cases positivity tests"`
	Smooth int    `validate:"min=0,max=30"`
}

// ApplyDefaults сбрасывает невалидные поля к значениям по умолчанию
// и возвращает список сброшенных полей
func (q *TimeSeriesQuery) ApplyDefaults() []string {
	reset := sanitize(q, map[string]func(){
		"Metric": func() { q.Metric = DefaultMetric },
		"Smooth": func() { q.Smooth = DefaultSmooth },
	})
	if q.Metric == "" {
		q.Metric = DefaultMetric
	}
	return reset
}

// LineageFrequenciesQuery - параметры GET /api/lineages/frequencies
type LineageFrequenciesQuery struct {
	Norm string `validate:"omitempty,oneof=pct"`
}

func (q *LineageFrequenciesQuery) ApplyDefaults() []string {
	reset := sanitize(q, map[string]func(){
		"Norm": func() { q.Norm = DefaultNorm },
	})
	if q.Norm == "" {
		q.Norm = DefaultNorm
	}
	return reset
}

// GenomeMutationsQuery - параметры GET /api/genome/mutations.
// Неизвестные имена генов допустимы: генератор подставит окно Spike, имя сохранится.
type GenomeMutationsQuery struct {
	Gene string `validate:"omitempty,max=256,printascii"`
}

func (q *GenomeMutationsQuery) ApplyDefaults() []string {
	reset := sanitize(q, map[string]func(){
		"Gene": func() { q.Gene = DefaultGene },
	})
	if q.Gene == "" {
		q.Gene = DefaultGene
	}
	return reset
}

func sanitize(q interface{}, defaults map[string]func()) []string {
	fields, err := validator.InvalidFields(q)
	if err != nil {
		for _, apply := range defaults {
			apply()
		}
		return nil
	}
	for _, f := range fields {
		if apply, ok := defaults[f]; ok {
			apply()
		}
	}
	return fields
}
