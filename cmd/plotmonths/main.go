package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/infrastructure/repository"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/usecases/rendering"
	"github.com/vfg2006/ransom-timeline-charts/pkg/log"
)

// Plota a timeline de transações de resgate por mês, a partir do
// arquivo timeline_months.csv.
func main() {
	configureLogger()

	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s timeline_months.csv\n\n       Run run_stats.sh to get timeline_months.csv file\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	applyLogLevel(cfg)

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	monthRepo := repository.NewMonthTimelineRepository(os.Args[1])
	timeline, err := monthRepo.GetMonthTimeline()
	if err != nil {
		logger.WithError(err).Fatal("Erro ao ler a timeline mensal")
	}
	logger.WithField("months", len(timeline.Records)).Info("Timeline mensal carregada")

	renderer := rendering.NewService(cfg)
	if err := renderer.RenderMonthTimeline(timeline); err != nil {
		logger.WithError(err).Fatal("Erro ao gerar os gráficos da timeline mensal")
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
