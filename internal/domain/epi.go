package domain

import (
	"bytes"
	"encoding/json"
)

// GenomeLength - длина референсного генома SARS-CoV-2 (Wuhan-Hu-1)
const GenomeLength = 29903

// DateLayout - формат дат во всех ответах API
const DateLayout = "2006-01-02"

// KPI - ключевой показатель для карточек на главной
type KPI struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TrendPoint - точка дневного тренда на главной
type TrendPoint struct {
	Date       string  `json:"date"`
	Cases      int     `json:"cases"`
	Positivity float64 `json:"positivity"`
}

// LineageShare - доля линии в процентах
type LineageShare struct {
	Name string  `json:"name"`
	Pct  float64 `json:"pct"`
}

// RegionValue - число случаев в регионе
type RegionValue struct {
	Region string `json:"region"`
	Value  int    `json:"value"`
}

// Overview - агрегированные данные главной страницы
type Overview struct {
	KPIs        []KPI          `json:"kpis"`
	Trend       []TrendPoint   `json:"trend"`
	TopLineages []LineageShare `json:"top_lineages"`
	TopRegions  []RegionValue  `json:"top_regions"`
}

// SeriesPoint - точка временного ряда
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// LineageWeek - доли линий за одну неделю.
// В JSON сериализуется плоско: {"date": "...", "BA.2": 20.1, ...}
type LineageWeek struct {
	Date   string
	Shares []LineageShare
}

// Total - сумма долей за неделю
func (w LineageWeek) Total() float64 {
	var sum float64
	for _, s := range w.Shares {
		sum += s.Pct
	}
	return sum
}

// Share возвращает долю линии и признак её наличия
func (w LineageWeek) Share(name string) (float64, bool) {
	for _, s := range w.Shares {
		if s.Name == name {
			return s.Pct, true
		}
	}
	return 0, false
}

func (w LineageWeek) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"date":`)
	date, err := json.Marshal(w.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(date)

	for _, s := range w.Shares {
		name, err := json.Marshal(s.Name)
		if err != nil {
			return nil, err
		}
		pct, err := json.Marshal(s.Pct)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(pct)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// LineageFrequencies - недельные доли линий и их порядок для легенды
type LineageFrequencies struct {
	Data     []LineageWeek `json:"data"`
	Lineages []string      `json:"lineages"`
}

// Gene - аннотированный участок генома, [Start, End] в нуклеотидах
type Gene struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Contains проверяет, попадает ли позиция в окно гена
func (g Gene) Contains(pos int) bool {
	return pos >= g.Start && pos <= g.End
}

// Mutation - мутация в окне гена
type Mutation struct {
	Pos      int     `json:"pos"`
	Gene     string  `json:"gene"`
	AAChange string  `json:"aa_change"`
	Pct      float64 `json:"pct"`
}

// GeoPoint - город с числом случаев
type GeoPoint struct {
	Name  string  `json:"name"`
	Value int     `json:"value"`
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
}
