package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
)

func testConfig(outputDir string, enabled bool) *config.Config {
	return &config.Config{
		Buckets: config.Buckets{
			SmallThresholdUSD:  1000,
			MediumThresholdUSD: 50000,
		},
		Chart:  config.Chart{OutputDir: outputDir},
		Report: config.Report{Enabled: enabled},
	}
}

func TestService_WriteBucketReport(t *testing.T) {
	dir := t.TempDir()
	partition := &domain.BucketPartition{
		Small:  []string{"Acme"},
		Medium: []string{"Locky"},
		Large:  []string{"Conti", "REvil"},
	}

	service := NewService(testConfig(dir, true))
	require.NoError(t, service.WriteBucketReport(partition))

	data, err := os.ReadFile(filepath.Join(dir, "timeline_families_report.json"))
	require.NoError(t, err)

	var report BucketReport
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, 1000.0, report.SmallThresholdUSD)
	assert.Equal(t, []string{"Conti", "REvil"}, report.Groups[domain.BucketLarge].Families)
	assert.Equal(t, 2, report.Groups[domain.BucketLarge].Count)
	assert.Equal(t, 1, report.Groups[domain.BucketSmall].Count)
}

func TestService_WriteBucketReport_DisabledWritesNothing(t *testing.T) {
	dir := t.TempDir()

	service := NewService(testConfig(dir, false))
	require.NoError(t, service.WriteBucketReport(&domain.BucketPartition{}))

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_WriteTopFamiliesReport(t *testing.T) {
	dir := t.TempDir()

	timeline := domain.NewTimeline()
	month := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	timeline.Append(domain.TimelineRecord{Family: "Conti", Month: month, Count: 7, SumBTC: 1.5, SumUSD: 30000})
	timeline.Append(domain.TimelineRecord{Family: "Conti", Month: month.AddDate(0, 1, 0), Count: 3, SumBTC: 0.5, SumUSD: 10000})

	tops := map[domain.Metric][]string{
		domain.MetricCount:  {"Conti"},
		domain.MetricSumBTC: {"Conti"},
		domain.MetricSumUSD: {"Conti"},
	}

	service := NewService(testConfig(dir, true))
	require.NoError(t, service.WriteTopFamiliesReport(tops, timeline))

	data, err := os.ReadFile(filepath.Join(dir, "timeline_top_families_report.json"))
	require.NoError(t, err)

	var report map[domain.Metric][]TopFamilyEntry
	require.NoError(t, json.Unmarshal(data, &report))

	require.Len(t, report[domain.MetricCount], 1)
	assert.Equal(t, "Conti", report[domain.MetricCount][0].Family)
	assert.Equal(t, 10.0, report[domain.MetricCount][0].Total)
	assert.Equal(t, 40000.0, report[domain.MetricSumUSD][0].Total)
}
