package reporting

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Reporter interface {
	WriteBucketReport(partition *domain.BucketPartition) error
	WriteTopFamiliesReport(tops map[domain.Metric][]string, timeline *domain.Timeline) error
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Reporter {
	return &Service{
		cfg: cfg,
	}
}

// BucketGroupReport resume um dos três grupos de famílias.
type BucketGroupReport struct {
	Families []string `json:"families"`
	Count    int      `json:"count"`
}

// BucketReport é o artefato json com a partição das famílias.
type BucketReport struct {
	SmallThresholdUSD  float64                             `json:"small_threshold_usd"`
	MediumThresholdUSD float64                             `json:"medium_threshold_usd"`
	Groups             map[domain.Bucket]BucketGroupReport `json:"groups"`
}

// TopFamilyEntry é uma posição do ranking com o total acumulado da métrica.
type TopFamilyEntry struct {
	Family string  `json:"family"`
	Total  float64 `json:"total"`
}

// WriteBucketReport escreve o resumo da partição em json ao lado dos
// gráficos. Desabilitado por padrão, como o savefig do script original.
func (s *Service) WriteBucketReport(partition *domain.BucketPartition) error {
	if !s.cfg.Report.Enabled {
		logrus.Debug("Relatório json desabilitado por configuração")
		return nil
	}

	report := BucketReport{
		SmallThresholdUSD:  s.cfg.Buckets.SmallThresholdUSD,
		MediumThresholdUSD: s.cfg.Buckets.MediumThresholdUSD,
		Groups:             make(map[domain.Bucket]BucketGroupReport, 3),
	}
	for _, bucket := range domain.Buckets() {
		families := partition.Group(bucket)
		report.Groups[bucket] = BucketGroupReport{
			Families: families,
			Count:    len(families),
		}
	}

	return s.write("timeline_families_report.json", report)
}

// WriteTopFamiliesReport escreve o ranking por métrica em json, com os
// totais acumulados que definiram as posições.
func (s *Service) WriteTopFamiliesReport(tops map[domain.Metric][]string, timeline *domain.Timeline) error {
	if !s.cfg.Report.Enabled {
		logrus.Debug("Relatório json desabilitado por configuração")
		return nil
	}

	report := make(map[domain.Metric][]TopFamilyEntry, len(tops))
	for metric, families := range tops {
		entries := make([]TopFamilyEntry, 0, len(families))
		for _, family := range families {
			entries = append(entries, TopFamilyEntry{
				Family: family,
				Total:  timeline.Family(family).Total(metric),
			})
		}
		report[metric] = entries
	}

	return s.write("timeline_top_families_report.json", report)
}

func (s *Service) write(name string, report interface{}) error {
	path := filepath.Join(s.cfg.Chart.OutputDir, name)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o relatório")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao escrever o relatório %s", name)
	}

	logrus.WithField("report", path).Info("Relatório gerado")
	return nil
}
