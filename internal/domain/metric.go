package domain

// Metric - эпидемиологический показатель временного ряда
type Metric string

const (
	MetricCases      Metric = "cases"
	MetricPositivity Metric = "positivity"
	MetricTests      Metric = "tests"
)

// ParseMetric возвращает метрику по имени; неизвестные и пустые значения дают cases
func ParseMetric(s string) Metric {
	switch m := Metric(s); m {
	case MetricCases, MetricPositivity, MetricTests:
		return m
	default:
		return MetricCases
	}
}

func (m Metric) String() string {
	return string(m)
}
