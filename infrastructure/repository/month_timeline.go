package repository

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
	"github.com/vfg2006/ransom-timeline-charts/pkg/utils"
)

type MonthTimelineRepository interface {
	GetMonthTimeline() (*domain.MonthTimeline, error)
}

type monthTimelineRepository struct {
	path string
}

// NewMonthTimelineRepository cria um repositório da timeline agregada
// por mês, a partir de um csv no formato Month,Count,Sum (BTC),Sum (USD).
func NewMonthTimelineRepository(path string) MonthTimelineRepository {
	return &monthTimelineRepository{
		path: path,
	}
}

func (r *monthTimelineRepository) GetMonthTimeline() (*domain.MonthTimeline, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo de timeline mensal")
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Pular o cabeçalho
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return &domain.MonthTimeline{}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do csv")
	}

	timeline := &domain.MonthTimeline{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d do csv", line+1)
		}
		line++

		month, err := utils.ParseMonth(record[0])
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter o mês na linha %d", line)
		}

		count, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter o campo count na linha %d", line)
		}

		sumBTC, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter a soma em BTC na linha %d", line)
		}

		sumUSD, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter a soma em USD na linha %d", line)
		}

		timeline.Records = append(timeline.Records, domain.MonthRecord{
			Month:  month,
			Count:  count,
			SumBTC: sumBTC,
			SumUSD: sumUSD,
		})
	}

	return timeline, nil
}
