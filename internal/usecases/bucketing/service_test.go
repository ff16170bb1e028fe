package bucketing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ransom-timeline-charts/infrastructure/repository/mocks"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Buckets: config.Buckets{
			SmallThresholdUSD:  1000,
			MediumThresholdUSD: 50000,
		},
	}
}

func timelineWith(sumsByFamily map[string][]float64, order []string) *domain.Timeline {
	timeline := domain.NewTimeline()
	month := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, family := range order {
		for i, sumUSD := range sumsByFamily[family] {
			timeline.Append(domain.TimelineRecord{
				Family: family,
				Month:  month.AddDate(0, i, 0),
				Count:  1,
				SumBTC: sumUSD / 20000,
				SumUSD: sumUSD,
			})
		}
	}

	return timeline
}

func TestService_GroupFamilies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		sums           map[string][]float64
		order          []string
		expectedSmall  []string
		expectedMedium []string
		expectedLarge  []string
	}{
		{
			name: "partição pelos máximos mensais",
			sums: map[string][]float64{
				"Tiny":   {100, 999.99},
				"Middle": {500, 20000},
				"Huge":   {100, 75000, 30000},
			},
			order:          []string{"Tiny", "Middle", "Huge"},
			expectedSmall:  []string{"Tiny"},
			expectedMedium: []string{"Middle"},
			expectedLarge:  []string{"Huge"},
		},
		{
			name: "limiar é fechado no grupo de cima",
			sums: map[string][]float64{
				"AtSmall":  {1000},
				"AtMedium": {50000},
			},
			order:          []string{"AtSmall", "AtMedium"},
			expectedMedium: []string{"AtSmall"},
			expectedLarge:  []string{"AtMedium"},
		},
		{
			name: "família do cenário Acme cai no grupo small",
			sums: map[string][]float64{
				"Acme": {500, 700, 300},
			},
			order:         []string{"Acme"},
			expectedSmall: []string{"Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockTimelineRepository(ctrl)
			mockRepo.EXPECT().
				GetFamilyTimeline().
				Return(timelineWith(tt.sums, tt.order), nil)

			service := NewService(mockRepo, testConfig())
			timeline, partition, err := service.GroupFamilies()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSmall, partition.Small)
			assert.Equal(t, tt.expectedMedium, partition.Medium)
			assert.Equal(t, tt.expectedLarge, partition.Large)

			// Partição estrita: toda família em exatamente um grupo
			assert.Equal(t, timeline.Len(), partition.Len())
		})
	}
}

func TestService_GroupFamilies_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTimelineRepository(ctrl)
	mockRepo.EXPECT().
		GetFamilyTimeline().
		Return(nil, errors.New("arquivo inacessível"))

	service := NewService(mockRepo, testConfig())
	_, _, err := service.GroupFamilies()
	assert.Error(t, err)
}
