package bucketing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/infrastructure/repository"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
)

type Bucketer interface {
	GroupFamilies() (*domain.Timeline, *domain.BucketPartition, error)
}

type Service struct {
	timelineRepo       repository.TimelineRepository
	smallThresholdUSD  float64
	mediumThresholdUSD float64
}

func NewService(timelineRepo repository.TimelineRepository, cfg *config.Config) Bucketer {
	return &Service{
		timelineRepo:       timelineRepo,
		smallThresholdUSD:  cfg.Buckets.SmallThresholdUSD,
		mediumThresholdUSD: cfg.Buckets.MediumThresholdUSD,
	}
}

// GroupFamilies carrega a timeline e separa as famílias em três grupos
// pela maior soma mensal em USD observada na série. A partição é
// estrita: cada família cai em exatamente um grupo.
func (s *Service) GroupFamilies() (*domain.Timeline, *domain.BucketPartition, error) {
	timeline, err := s.timelineRepo.GetFamilyTimeline()
	if err != nil {
		return nil, nil, err
	}

	partition := &domain.BucketPartition{}
	for _, family := range timeline.Families() {
		maxSumUSD := timeline.Family(family).MaxSumUSD()

		switch {
		case maxSumUSD < s.smallThresholdUSD:
			partition.Small = append(partition.Small, family)
		case maxSumUSD < s.mediumThresholdUSD:
			partition.Medium = append(partition.Medium, family)
		default:
			partition.Large = append(partition.Large, family)
		}
	}

	logrus.WithFields(logrus.Fields{
		"small":  len(partition.Small),
		"medium": len(partition.Medium),
		"large":  len(partition.Large),
	}).Infof("Famílias separadas em grupos (limiares de %.0f e %.0f USD)", s.smallThresholdUSD, s.mediumThresholdUSD)

	return timeline, partition, nil
}
