package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/infrastructure/repository"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/usecases/bucketing"
	"github.com/vfg2006/ransom-timeline-charts/internal/usecases/rendering"
	"github.com/vfg2006/ransom-timeline-charts/internal/usecases/reporting"
	"github.com/vfg2006/ransom-timeline-charts/pkg/log"
)

// Plota a timeline de todas as famílias de ransomware encontradas no
// arquivo timeline_families.csv, separadas em três grupos pela maior
// soma mensal de pagamentos em USD.
func main() {
	configureLogger()

	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s timeline_families.csv\n\n       Run run_stats.sh to get timeline_families.csv file\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	applyLogLevel(cfg)

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	timelineRepo := repository.NewTimelineRepository(os.Args[1])

	bucketer := bucketing.NewService(timelineRepo, cfg)
	timeline, partition, err := bucketer.GroupFamilies()
	if err != nil {
		logger.WithError(err).Fatal("Erro ao ler a timeline de famílias")
	}
	logger.WithField("families", timeline.Len()).Info("Timeline de famílias carregada")

	renderer := rendering.NewService(cfg)
	if err := renderer.RenderFamilyGroups(partition, timeline); err != nil {
		logger.WithError(err).Fatal("Erro ao gerar os gráficos dos grupos de famílias")
	}

	reporter := reporting.NewService(cfg)
	if err := reporter.WriteBucketReport(partition); err != nil {
		logger.WithError(err).Fatal("Erro ao escrever o relatório dos grupos")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// applyLogLevel define o nível de log com base na configuração
func applyLogLevel(cfg *config.Config) {
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}
