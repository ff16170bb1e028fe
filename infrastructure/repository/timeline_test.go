package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "timeline.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTimelineRepository_GetFamilyTimeline(t *testing.T) {
	csv := "Family,Month,Count,Sum (BTC),Sum (USD)\n" +
		"Conti,2017-12,1,0.166500,1940.923832\n" +
		"Conti,2018-01,3,0.500000,8000.000000\n" +
		"Locky,2018-01,10,2.000000,30000.000000\n" +
		"Conti,Total,4,0.666500,9940.923832\n"

	repo := NewTimelineRepository(writeCSV(t, csv))
	timeline, err := repo.GetFamilyTimeline()
	require.NoError(t, err)

	// Uma família distinta por rótulo distinto, ignorando cabeçalho e Total
	assert.Equal(t, 2, timeline.Len())
	assert.Equal(t, []string{"Conti", "Locky"}, timeline.Families())

	conti := timeline.Family("Conti")
	require.NotNil(t, conti)
	require.Len(t, conti.Records, 2)
	assert.Equal(t, time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC), conti.Records[0].Month)
	assert.Equal(t, 1, conti.Records[0].Count)
	assert.Equal(t, 0.1665, conti.Records[0].SumBTC)
	assert.Equal(t, 1940.923832, conti.Records[0].SumUSD)

	minMonth, maxMonth := timeline.Period()
	assert.Equal(t, time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC), minMonth)
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), maxMonth)
}

func TestTimelineRepository_AcmeRoundTrip(t *testing.T) {
	csv := "Family,Month,Count,Sum (BTC),Sum (USD)\n" +
		"Acme,2021-01,5,0.01,500\n" +
		"Acme,2021-02,7,0.02,700\n" +
		"Acme,2021-03,3,0.01,300\n"

	repo := NewTimelineRepository(writeCSV(t, csv))
	timeline, err := repo.GetFamilyTimeline()
	require.NoError(t, err)

	require.Equal(t, 1, timeline.Len())

	acme := timeline.Family("Acme")
	require.NotNil(t, acme)
	require.Len(t, acme.Records, 3)
	assert.Equal(t, []float64{5, 7, 3}, acme.Values(domain.MetricCount))
	assert.Equal(t, 700.0, acme.MaxSumUSD())
}

func TestTimelineRepository_MalformedRows(t *testing.T) {
	header := "Family,Month,Count,Sum (BTC),Sum (USD)\n"

	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "mês fora do formato YYYY-MM",
			csv:  header + "Conti,12/2017,1,0.5,100\n",
		},
		{
			name: "count não numérico",
			csv:  header + "Conti,2017-12,abc,0.5,100\n",
		},
		{
			name: "soma em BTC não numérica",
			csv:  header + "Conti,2017-12,1,x,100\n",
		},
		{
			name: "soma em USD não numérica",
			csv:  header + "Conti,2017-12,1,0.5,x\n",
		},
		{
			name: "linha com campos faltando",
			csv:  header + "Conti,2017-12,1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewTimelineRepository(writeCSV(t, tt.csv))
			_, err := repo.GetFamilyTimeline()
			assert.Error(t, err)
		})
	}
}

func TestTimelineRepository_FileNotFound(t *testing.T) {
	repo := NewTimelineRepository(filepath.Join(t.TempDir(), "nao-existe.csv"))
	_, err := repo.GetFamilyTimeline()
	assert.Error(t, err)
}

func TestTimelineRepository_EmptyFile(t *testing.T) {
	repo := NewTimelineRepository(writeCSV(t, ""))
	timeline, err := repo.GetFamilyTimeline()
	require.NoError(t, err)
	assert.Equal(t, 0, timeline.Len())
}
