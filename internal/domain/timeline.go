package domain

import "time"

// TimelineRecord representa uma linha do csv de timeline por família.
// Imutável depois da ingestão.
type TimelineRecord struct {
	Family string
	Month  time.Time
	Count  int
	SumBTC float64
	SumUSD float64
}

// FamilySeries é a série temporal de uma família, na ordem em que as
// linhas aparecem no arquivo (o csv já vem ordenado por mês).
type FamilySeries struct {
	Family  string
	Records []TimelineRecord
}

// Months retorna os meses da série, na ordem do arquivo.
func (s *FamilySeries) Months() []time.Time {
	months := make([]time.Time, len(s.Records))
	for i, record := range s.Records {
		months[i] = record.Month
	}
	return months
}

// Values retorna os valores da série para a métrica informada.
func (s *FamilySeries) Values(metric Metric) []float64 {
	values := make([]float64, len(s.Records))
	for i, record := range s.Records {
		values[i] = record.Value(metric)
	}
	return values
}

// MaxSumUSD retorna a maior soma mensal em USD observada na série.
func (s *FamilySeries) MaxSumUSD() float64 {
	max := 0.0
	for _, record := range s.Records {
		if record.SumUSD > max {
			max = record.SumUSD
		}
	}
	return max
}

// Total retorna o total acumulado da métrica ao longo de todos os meses.
func (s *FamilySeries) Total(metric Metric) float64 {
	total := 0.0
	for _, record := range s.Records {
		total += record.Value(metric)
	}
	return total
}

// Value retorna o valor do registro para a métrica informada.
func (r TimelineRecord) Value(metric Metric) float64 {
	switch metric {
	case MetricCount:
		return float64(r.Count)
	case MetricSumBTC:
		return r.SumBTC
	default:
		return r.SumUSD
	}
}

// Timeline agrupa as séries por família, preservando a ordem de primeira
// aparição no arquivo. A ordem é usada como desempate estável nos rankings.
type Timeline struct {
	families map[string]*FamilySeries
	order    []string
	minMonth time.Time
	maxMonth time.Time
}

func NewTimeline() *Timeline {
	return &Timeline{
		families: make(map[string]*FamilySeries),
	}
}

// Append adiciona um registro à série da família, criando a série na
// primeira aparição.
func (t *Timeline) Append(record TimelineRecord) {
	series, ok := t.families[record.Family]
	if !ok {
		series = &FamilySeries{Family: record.Family}
		t.families[record.Family] = series
		t.order = append(t.order, record.Family)
	}
	series.Records = append(series.Records, record)

	if t.minMonth.IsZero() || record.Month.Before(t.minMonth) {
		t.minMonth = record.Month
	}
	if t.maxMonth.IsZero() || record.Month.After(t.maxMonth) {
		t.maxMonth = record.Month
	}
}

// Family retorna a série da família, ou nil se não existir.
func (t *Timeline) Family(name string) *FamilySeries {
	return t.families[name]
}

// Families retorna os nomes das famílias na ordem de primeira aparição.
func (t *Timeline) Families() []string {
	return t.order
}

// Len retorna o número de famílias distintas.
func (t *Timeline) Len() int {
	return len(t.families)
}

// Period retorna o primeiro e o último mês observados na timeline.
func (t *Timeline) Period() (time.Time, time.Time) {
	return t.minMonth, t.maxMonth
}
