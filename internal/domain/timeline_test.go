package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Append(t *testing.T) {
	timeline := NewTimeline()
	january := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	timeline.Append(TimelineRecord{Family: "Conti", Month: january, Count: 5, SumBTC: 0.5, SumUSD: 500})
	timeline.Append(TimelineRecord{Family: "Locky", Month: january.AddDate(0, 1, 0), Count: 2, SumBTC: 0.1, SumUSD: 100})
	timeline.Append(TimelineRecord{Family: "Conti", Month: january.AddDate(0, 2, 0), Count: 7, SumBTC: 0.9, SumUSD: 900})

	assert.Equal(t, 2, timeline.Len())
	// Ordem de primeira aparição, não alfabética
	assert.Equal(t, []string{"Conti", "Locky"}, timeline.Families())

	conti := timeline.Family("Conti")
	require.NotNil(t, conti)
	assert.Equal(t, []float64{5, 7}, conti.Values(MetricCount))
	assert.Equal(t, 900.0, conti.MaxSumUSD())
	assert.Equal(t, 12.0, conti.Total(MetricCount))
	assert.Equal(t, 1400.0, conti.Total(MetricSumUSD))

	minMonth, maxMonth := timeline.Period()
	assert.Equal(t, january, minMonth)
	assert.Equal(t, january.AddDate(0, 2, 0), maxMonth)

	assert.Nil(t, timeline.Family("REvil"))
}

func TestMonthTimeline_Values(t *testing.T) {
	january := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	timeline := &MonthTimeline{
		Records: []MonthRecord{
			{Month: january, Count: 10, SumBTC: 1.5, SumUSD: 1000},
			{Month: january.AddDate(0, 1, 0), Count: 20, SumBTC: 2.5, SumUSD: 2000},
		},
	}

	assert.Equal(t, []float64{10, 20}, timeline.Values(MetricCount))
	assert.Equal(t, []float64{1.5, 2.5}, timeline.Values(MetricSumBTC))
	assert.Equal(t, []float64{1000, 2000}, timeline.Values(MetricSumUSD))

	firstMonth, lastMonth := timeline.Period()
	assert.Equal(t, january, firstMonth)
	assert.Equal(t, january.AddDate(0, 1, 0), lastMonth)
}

func TestMetric_Title(t *testing.T) {
	assert.Equal(t, "Number of transactions", MetricCount.Title())
	assert.Equal(t, "Payment sum in BTC", MetricSumBTC.Title())
	assert.Equal(t, "Payment sum in USD", MetricSumUSD.Title())
}
