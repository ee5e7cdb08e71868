package generator_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epi-dashboard/internal/domain"
	"github.com/epi-dashboard/internal/pkg/utils"
	"github.com/epi-dashboard/internal/usecase/generator"
)

var fixedNow = time.Date(2026, time.March, 1, 15, 30, 0, 0, time.UTC)

func newTestGenerator() *generator.Generator {
	return generator.New(42, generator.WithClock(func() time.Time { return fixedNow }))
}

func TestGenerator_Overview(t *testing.T) {
	g := newTestGenerator()

	ov := g.Overview()

	require.Len(t, ov.KPIs, 3)
	assert.Equal(t, domain.KPI{Label: "Total cases", Value: 1234567}, ov.KPIs[0])
	assert.Equal(t, domain.KPI{Label: "Weekly cases", Value: 3456}, ov.KPIs[1])
	assert.Equal(t, domain.KPI{Label: "Positivity %", Value: 6.7}, ov.KPIs[2])

	require.Len(t, ov.Trend, 20)
	assert.Equal(t, "2026-02-10", ov.Trend[0].Date)
	assert.Equal(t, "2026-03-01", ov.Trend[19].Date)

	prev := 5.0
	for i, p := range ov.Trend {
		assert.GreaterOrEqual(t, p.Positivity, 1.0, "positivity floor at %d", i)
		if prev > 1.3 {
			assert.InDelta(t, prev, p.Positivity, 0.3+1e-9, "walk step at %d", i)
		}
		prev = p.Positivity

		base := 2000 + i*80
		assert.GreaterOrEqual(t, p.Cases, base)
		assert.Less(t, p.Cases, base+200)
	}

	require.Len(t, ov.TopLineages, 5)
	assert.Equal(t, domain.LineageShare{Name: "XBB", Pct: 38}, ov.TopLineages[0])
	assert.Equal(t, domain.LineageShare{Name: "Others", Pct: 5}, ov.TopLineages[4])

	require.Len(t, ov.TopRegions, 5)
	assert.Equal(t, domain.RegionValue{Region: "Madrid", Value: 18230}, ov.TopRegions[0])
	assert.Equal(t, domain.RegionValue{Region: "Euskadi", Value: 6200}, ov.TopRegions[4])
}

func TestGenerator_OverviewPositivityFloorOverManyCalls(t *testing.T) {
	g := generator.New(1)

	for n := 0; n < 200; n++ {
		for _, p := range g.Overview().Trend {
			require.GreaterOrEqual(t, p.Positivity, 1.0)
		}
	}
}

func TestGenerator_TimeSeries(t *testing.T) {
	cases := []struct {
		metric   domain.Metric
		min, max func(i int) float64
	}{
		{
			metric: domain.MetricCases,
			min:    func(i int) float64 { return 500 + 15*float64(i) },
			max:    func(i int) float64 { return 500 + 15*float64(i) + 99 },
		},
		{
			metric: domain.MetricPositivity,
			min:    func(i int) float64 { return 3 + 0.1*float64(i) },
			max:    func(i int) float64 { return 3 + 0.1*float64(i) + 1.9 },
		},
		{
			metric: domain.MetricTests,
			min:    func(i int) float64 { return 10000 + 50*float64(i) },
			max:    func(i int) float64 { return 10000 + 50*float64(i) + 399 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.metric.String(), func(t *testing.T) {
			series := newTestGenerator().TimeSeries(tc.metric, 0)

			require.Len(t, series, 40)
			for i, p := range series {
				assert.GreaterOrEqual(t, p.Value, tc.min(i)-1e-9)
				assert.LessOrEqual(t, p.Value, tc.max(i)+1e-9)
			}
		})
	}
}

func TestGenerator_TimeSeriesConsecutiveDatesEndingToday(t *testing.T) {
	series := newTestGenerator().TimeSeries(domain.MetricCases, 3)

	require.Len(t, series, 40)
	assert.Equal(t, fixedNow.Format(domain.DateLayout), series[39].Date)

	for i := 1; i < len(series); i++ {
		prev, err := time.Parse(domain.DateLayout, series[i-1].Date)
		require.NoError(t, err)
		cur, err := time.Parse(domain.DateLayout, series[i].Date)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev), "dates %s -> %s", series[i-1].Date, series[i].Date)
	}
}

func TestGenerator_TimeSeriesUnknownMetricFallsBackToCases(t *testing.T) {
	unknown := newTestGenerator().TimeSeries(domain.Metric("unknown"), 0)
	cases := newTestGenerator().TimeSeries(domain.MetricCases, 0)

	assert.Equal(t, cases, unknown)
}

func TestGenerator_TimeSeriesSmoothDoesNotAlterOutput(t *testing.T) {
	raw := newTestGenerator().TimeSeries(domain.MetricTests, 0)
	smoothed := newTestGenerator().TimeSeries(domain.MetricTests, 7)

	assert.Equal(t, raw, smoothed)
}

func TestGenerator_LineageFrequencies(t *testing.T) {
	g := generator.New(7)

	for run := 0; run < 50; run++ {
		freq := g.LineageFrequencies()

		assert.Equal(t, []string{"BA.2", "BA.5", "XBB", "EG.5", "JN.1"}, freq.Lineages)
		require.Len(t, freq.Data, 8)
		assert.Equal(t, "2025-05-25", freq.Data[0].Date)
		assert.Equal(t, "2025-07-13", freq.Data[7].Date)

		for _, week := range freq.Data {
			require.Len(t, week.Shares, 5)
			assert.InDelta(t, 100.0, week.Total(), 1e-6, "week %s", week.Date)
			for _, s := range week.Shares {
				assert.GreaterOrEqual(t, s.Pct, 0.0)
			}
		}
	}
}

func TestGenerator_LineageFrequenciesStaysNearBaseline(t *testing.T) {
	freq := newTestGenerator().LineageFrequencies()

	// За 8 недель с шагом ±1 п.п. XBB (35) не может опуститься ниже JN.1 (5)
	for _, week := range freq.Data {
		xbb, ok := week.Share("XBB")
		require.True(t, ok)
		jn1, ok := week.Share("JN.1")
		require.True(t, ok)
		assert.Greater(t, xbb, jn1)
	}
}

func TestGenerator_GenomeGenesIsStatic(t *testing.T) {
	g := newTestGenerator()

	first := g.GenomeGenes()
	g.Overview()
	g.GenomeMutations("N")
	second := g.GenomeGenes()

	require.Len(t, first, 11)
	assert.Equal(t, first, second)

	for _, gene := range first {
		assert.Less(t, gene.Start, gene.End, gene.Name)
		assert.LessOrEqual(t, gene.End, domain.GenomeLength, gene.Name)
	}

	first[0].Name = "mutated"
	assert.Equal(t, "ORF1a", g.GenomeGenes()[0].Name, "callers must receive a copy")
}

func TestGenerator_GenomeMutations(t *testing.T) {
	g := newTestGenerator()
	windows := make(map[string]domain.Gene)
	for _, gene := range g.GenomeGenes() {
		windows[gene.Name] = gene
	}

	for name, window := range windows {
		t.Run(name, func(t *testing.T) {
			muts := g.GenomeMutations(name)

			require.Len(t, muts, 30)
			for _, m := range muts {
				assert.Equal(t, name, m.Gene)
				assert.True(t, window.Contains(m.Pos), "pos %d outside %s [%d,%d]", m.Pos, name, window.Start, window.End)
				assert.GreaterOrEqual(t, m.Pct, 0.0)
				assert.Less(t, m.Pct, 0.9)
				require.Len(t, m.AAChange, 3)
				for _, r := range m.AAChange {
					assert.Contains(t, "ACDEFGHIKLMNPQRSTVWY", string(r))
				}
			}
		})
	}
}

func TestGenerator_GenomeMutationsN(t *testing.T) {
	for _, m := range newTestGenerator().GenomeMutations("N") {
		assert.Equal(t, "N", m.Gene)
		assert.GreaterOrEqual(t, m.Pos, 28274)
		assert.LessOrEqual(t, m.Pos, 29533)
	}
}

func TestGenerator_GenomeMutationsFallbackToSpikeWindow(t *testing.T) {
	g := newTestGenerator()

	t.Run("empty name", func(t *testing.T) {
		for _, m := range g.GenomeMutations("") {
			assert.Equal(t, "Spike", m.Gene)
			assert.GreaterOrEqual(t, m.Pos, 21563)
			assert.LessOrEqual(t, m.Pos, 25384)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		for _, m := range g.GenomeMutations("ORF42") {
			assert.Equal(t, "ORF42", m.Gene)
			assert.GreaterOrEqual(t, m.Pos, 21563)
			assert.LessOrEqual(t, m.Pos, 25384)
		}
	})
}

func TestGenerator_GeographyPoints(t *testing.T) {
	g := newTestGenerator()

	points := g.GeographyPoints()

	require.Len(t, points, 5)
	assert.Equal(t, domain.GeoPoint{Name: "Madrid", Value: 18000, Lon: -3.7038, Lat: 40.4168}, points[0])
	assert.Equal(t, domain.GeoPoint{Name: "Bilbao", Value: 6100, Lon: -2.9350, Lat: 43.2630}, points[4])
	for _, p := range points {
		assert.True(t, utils.ValidateCoordinates(p.Lat, p.Lon), p.Name)
		assert.GreaterOrEqual(t, p.Value, 0)
	}
	assert.Equal(t, points, g.GeographyPoints())
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	a := newTestGenerator()
	b := newTestGenerator()

	assert.Equal(t, a.Overview(), b.Overview())
	assert.Equal(t, a.TimeSeries(domain.MetricPositivity, 0), b.TimeSeries(domain.MetricPositivity, 0))
	assert.Equal(t, a.LineageFrequencies(), b.LineageFrequencies())
	assert.Equal(t, a.GenomeMutations("M"), b.GenomeMutations("M"))
}

func TestGenerator_CallsAdvanceSharedState(t *testing.T) {
	g := newTestGenerator()

	first := g.TimeSeries(domain.MetricCases, 0)
	second := g.TimeSeries(domain.MetricCases, 0)

	assert.NotEqual(t, first, second)
}

func TestGenerator_ConcurrentAccess(t *testing.T) {
	g := generator.New(42)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for n := 0; n < 20; n++ {
				switch (i + n) % 4 {
				case 0:
					g.Overview()
				case 1:
					g.TimeSeries(domain.MetricTests, 0)
				case 2:
					for _, w := range g.LineageFrequencies().Data {
						assert.InDelta(t, 100.0, w.Total(), 1e-6)
					}
				case 3:
					for _, m := range g.GenomeMutations("ORF8") {
						assert.True(t, m.Pos >= 27894 && m.Pos <= 28259)
					}
				}
			}
		}(i)
	}
	wg.Wait()
}
