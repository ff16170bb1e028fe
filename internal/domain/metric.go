package domain

// Metric identifica uma das três métricas plotadas em cada painel.
type Metric string

const (
	MetricCount  Metric = "count"
	MetricSumBTC Metric = "sum_btc"
	MetricSumUSD Metric = "sum_usd"
)

// Metrics lista as métricas na ordem dos painéis dos gráficos.
func Metrics() []Metric {
	return []Metric{MetricCount, MetricSumBTC, MetricSumUSD}
}

// Title retorna o título do painel da métrica.
func (m Metric) Title() string {
	switch m {
	case MetricCount:
		return "Number of transactions"
	case MetricSumBTC:
		return "Payment sum in BTC"
	default:
		return "Payment sum in USD"
	}
}

func (m Metric) String() string {
	return string(m)
}
