package domain

import "time"

// MonthRecord representa uma linha do csv de timeline agregada por mês.
type MonthRecord struct {
	Month  time.Time
	Count  int
	SumBTC float64
	SumUSD float64
}

// Value retorna o valor do registro para a métrica informada.
func (r MonthRecord) Value(metric Metric) float64 {
	switch metric {
	case MetricCount:
		return float64(r.Count)
	case MetricSumBTC:
		return r.SumBTC
	default:
		return r.SumUSD
	}
}

// MonthTimeline é a série agregada de transações por mês, na ordem do
// arquivo.
type MonthTimeline struct {
	Records []MonthRecord
}

// Months retorna os meses da série, na ordem do arquivo.
func (t *MonthTimeline) Months() []time.Time {
	months := make([]time.Time, len(t.Records))
	for i, record := range t.Records {
		months[i] = record.Month
	}
	return months
}

// Values retorna os valores da série para a métrica informada.
func (t *MonthTimeline) Values(metric Metric) []float64 {
	values := make([]float64, len(t.Records))
	for i, record := range t.Records {
		values[i] = record.Value(metric)
	}
	return values
}

// Period retorna o primeiro e o último mês da série.
func (t *MonthTimeline) Period() (time.Time, time.Time) {
	if len(t.Records) == 0 {
		return time.Time{}, time.Time{}
	}
	return t.Records[0].Month, t.Records[len(t.Records)-1].Month
}
