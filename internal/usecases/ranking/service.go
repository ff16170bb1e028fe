package ranking

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/infrastructure/repository"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
)

type Ranker interface {
	TopFamilies() (*domain.Timeline, map[domain.Metric][]string, error)
}

type Service struct {
	timelineRepo repository.TimelineRepository
	topN         int
	excluded     map[string]struct{}
}

func NewService(timelineRepo repository.TimelineRepository, cfg *config.Config) Ranker {
	excluded := make(map[string]struct{}, len(cfg.TopFamilies.Excluded))
	for _, family := range cfg.TopFamilies.Excluded {
		excluded[family] = struct{}{}
	}

	return &Service{
		timelineRepo: timelineRepo,
		topN:         cfg.TopFamilies.TopN,
		excluded:     excluded,
	}
}

// TopFamilies carrega a timeline e monta, para cada métrica, o ranking
// das topN famílias em ordem decrescente do total acumulado. Famílias da
// lista de exclusão nunca entram no ranking; empates mantêm a ordem de
// primeira aparição no arquivo.
func (s *Service) TopFamilies() (*domain.Timeline, map[domain.Metric][]string, error) {
	timeline, err := s.timelineRepo.GetFamilyTimeline()
	if err != nil {
		return nil, nil, err
	}

	tops := make(map[domain.Metric][]string, 3)
	for _, metric := range domain.Metrics() {
		tops[metric] = s.rank(timeline, metric)
	}

	return timeline, tops, nil
}

func (s *Service) rank(timeline *domain.Timeline, metric domain.Metric) []string {
	candidates := make([]string, 0, timeline.Len())
	totals := make(map[string]float64, timeline.Len())

	for _, family := range timeline.Families() {
		if _, skip := s.excluded[family]; skip {
			logrus.WithField("family", family).Debug("Família excluída do ranking por configuração")
			continue
		}
		candidates = append(candidates, family)
		totals[family] = timeline.Family(family).Total(metric)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return totals[candidates[i]] > totals[candidates[j]]
	})

	if len(candidates) > s.topN {
		candidates = candidates[:s.topN]
	}

	return candidates
}
