// Package generator производит синтетические эпидемиологические данные для дашборда.
//
// Generator владеет единственным генератором псевдослучайных чисел. Каждый вызов
// продвигает его состояние, поэтому повторяемость гарантируется только для всей
// последовательности вызовов от свежего экземпляра с тем же seed.
package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/epi-dashboard/internal/domain"
)

const (
	trendDays       = 20
	seriesDays      = 40
	mutationsPerRun = 30

	positivityStart = 5.0
	positivityFloor = 1.0
	positivityStep  = 0.3

	maxMutationPct = 0.9
)

// Generator - потокобезопасный источник синтетических данных
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// Option настраивает Generator
type Option func(*Generator)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New создаёт генератор с фиксированным seed
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Overview возвращает KPI, 20-дневный тренд и топ линий/регионов
func (g *Generator) Overview() domain.Overview {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.now()
	trend := make([]domain.TrendPoint, trendDays)
	pos := positivityStart
	for i := range trend {
		pos += g.rng.Float64()*2*positivityStep - positivityStep
		if pos < positivityFloor {
			pos = positivityFloor
		}
		trend[i] = domain.TrendPoint{
			Date:       dayOffset(today, i-(trendDays-1)),
			Cases:      2000 + i*80 + g.rng.Intn(200),
			Positivity: pos,
		}
	}

	return domain.Overview{
		KPIs:        copyOf(overviewKPIs),
		Trend:       trend,
		TopLineages: copyOf(topLineages),
		TopRegions:  copyOf(topRegions),
	}
}

// TimeSeries возвращает 40 дневных точек, последняя - сегодня.
// smooth принимается для совместимости с клиентом и на данные не влияет.
func (g *Generator) TimeSeries(metric domain.Metric, smooth int) []domain.SeriesPoint {
	_ = smooth
	metric = domain.ParseMetric(string(metric))

	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.now()
	series := make([]domain.SeriesPoint, seriesDays)
	for i := range series {
		x := float64(i)
		var val float64
		switch metric {
		case domain.MetricPositivity:
			val = 3 + 0.1*x + float64(g.rng.Intn(20))/10.0
		case domain.MetricTests:
			val = 10000 + 50*x + float64(g.rng.Intn(400))
		default:
			val = 500 + 15*x + float64(g.rng.Intn(100))
		}
		series[i] = domain.SeriesPoint{
			Date:  dayOffset(today, i-(seriesDays-1)),
			Value: val,
		}
	}
	return series
}

// LineageFrequencies возвращает недельные доли линий, нормированные к 100%.
// Значение каждой линии - накопительное блуждание с шагом ±1 п.п. и полом 0.
func (g *Generator) LineageFrequencies() domain.LineageFrequencies {
	g.mu.Lock()
	defer g.mu.Unlock()

	running := copyOf(lineageBaseline)
	data := make([]domain.LineageWeek, 0, len(lineageWeeks))

	for _, week := range lineageWeeks {
		var sum float64
		for i := range running {
			p := running[i] + g.rng.Float64()*2 - 1
			if p < 0 {
				p = 0
			}
			running[i] = p
			sum += p
		}

		shares := make([]domain.LineageShare, len(lineageNames))
		for i, name := range lineageNames {
			pct := 100.0 / float64(len(lineageNames))
			if sum > 0 {
				pct = running[i] / sum * 100.0
			}
			shares[i] = domain.LineageShare{Name: name, Pct: pct}
		}
		data = append(data, domain.LineageWeek{Date: week, Shares: shares})
	}

	return domain.LineageFrequencies{
		Data:     data,
		Lineages: copyOf(lineageNames),
	}
}

// GenomeGenes возвращает копию референсной таблицы генов
func (g *Generator) GenomeGenes() []domain.Gene {
	return copyOf(geneTable)
}

// GenomeMutations возвращает 30 мутаций внутри окна гена.
// Пустое имя означает Spike; для неизвестного имени берётся окно Spike,
// но в поле gene остаётся запрошенное имя.
func (g *Generator) GenomeMutations(gene string) []domain.Mutation {
	if gene == "" {
		gene = defaultGene
	}
	window, _ := geneWindow(gene)

	g.mu.Lock()
	defer g.mu.Unlock()

	span := window.End - window.Start + 1
	muts := make([]domain.Mutation, mutationsPerRun)
	for i := range muts {
		pos := window.Start + g.rng.Intn(span)
		pct := g.rng.Float64() * maxMutationPct
		muts[i] = domain.Mutation{
			Pos:      pos,
			Gene:     gene,
			AAChange: g.aminoAcidCode(),
			Pct:      pct,
		}
	}
	return muts
}

// GeographyPoints возвращает фиксированный набор городов
func (g *Generator) GeographyPoints() []domain.GeoPoint {
	return copyOf(geoPoints)
}

// aminoAcidCode вызывается под g.mu
func (g *Generator) aminoAcidCode() string {
	code := make([]byte, 3)
	for i := range code {
		code[i] = aminoAcids[g.rng.Intn(len(aminoAcids))]
	}
	return string(code)
}

func dayOffset(t time.Time, days int) string {
	return t.AddDate(0, 0, days).Format(domain.DateLayout)
}
