package generator

import "github.com/epi-dashboard/internal/domain"

// defaultGene - ген, окно которого используется для пустых и неизвестных имён
const defaultGene = "Spike"

// aminoAcids - однобуквенные коды 20 стандартных аминокислот
const aminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// geneTable - аннотация генома SARS-CoV-2 (NC_045512.2)
var geneTable = []domain.Gene{
	{Name: "ORF1a", Start: 266, End: 13468},
	{Name: "ORF1b", Start: 13468, End: 21555},
	{Name: "Spike", Start: 21563, End: 25384},
	{Name: "ORF3a", Start: 25393, End: 26220},
	{Name: "M", Start: 26523, End: 27191},
	{Name: "ORF6", Start: 27202, End: 27387},
	{Name: "ORF7a", Start: 27394, End: 27759},
	{Name: "ORF7b", Start: 27756, End: 27887},
	{Name: "ORF8", Start: 27894, End: 28259},
	{Name: "N", Start: 28274, End: 29533},
	{Name: "ORF10", Start: 29558, End: 29674},
}

var geoPoints = []domain.GeoPoint{
	{Name: "Madrid", Value: 18000, Lon: -3.7038, Lat: 40.4168},
	{Name: "Barcelona", Value: 15000, Lon: 2.1734, Lat: 41.3851},
	{Name: "Valencia", Value: 9500, Lon: -0.3763, Lat: 39.4699},
	{Name: "Sevilla", Value: 8200, Lon: -5.9845, Lat: 37.3891},
	{Name: "Bilbao", Value: 6100, Lon: -2.9350, Lat: 43.2630},
}

var overviewKPIs = []domain.KPI{
	{Label: "Total cases", Value: 1234567},
	{Label: "Weekly cases", Value: 3456},
	{Label: "Positivity %", Value: 6.7},
}

var topLineages = []domain.LineageShare{
	{Name: "XBB", Pct: 38},
	{Name: "BA.5", Pct: 27},
	{Name: "EG.5", Pct: 18},
	{Name: "BA.2", Pct: 12},
	{Name: "Others", Pct: 5},
}

var topRegions = []domain.RegionValue{
	{Region: "Madrid", Value: 18230},
	{Region: "Cataluña", Value: 15900},
	{Region: "Andalucía", Value: 14820},
	{Region: "C. Valenciana", Value: 9900},
	{Region: "Euskadi", Value: 6200},
}

// Недели (воскресенья) и линии для графика частот
var (
	lineageWeeks = []string{
		"2025-05-25", "2025-06-01", "2025-06-08", "2025-06-15",
		"2025-06-22", "2025-06-29", "2025-07-06", "2025-07-13",
	}
	lineageNames    = []string{"BA.2", "BA.5", "XBB", "EG.5", "JN.1"}
	lineageBaseline = []float64{20, 30, 35, 10, 5}
)

// geneWindow возвращает окно гена по имени, для неизвестных имён - окно Spike
func geneWindow(name string) (domain.Gene, bool) {
	var fallback domain.Gene
	for _, g := range geneTable {
		if g.Name == name {
			return g, true
		}
		if g.Name == defaultGene {
			fallback = g
		}
	}
	return fallback, false
}

func copyOf[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
