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

// totalSentinel marca linhas de totais pré-calculados no csv, que não
// são pontos da série e devem ser ignoradas.
const totalSentinel = "Total"

type TimelineRepository interface {
	GetFamilyTimeline() (*domain.Timeline, error)
}

type timelineRepository struct {
	path string
}

// NewTimelineRepository cria um repositório de timeline por família a
// partir de um csv no formato Family,Month,Count,Sum (BTC),Sum (USD).
func NewTimelineRepository(path string) TimelineRepository {
	return &timelineRepository{
		path: path,
	}
}

func (r *timelineRepository) GetFamilyTimeline() (*domain.Timeline, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir o arquivo de timeline")
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Pular o cabeçalho
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return domain.NewTimeline(), nil
		}
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do csv")
	}

	timeline := domain.NewTimeline()
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

		// Formato: Family,Month,Count,Sum (BTC),Sum (USD)
		// Exemplo: Conti,2017-12,1,0.166500,1940.923832
		family := record[0]
		if record[1] == totalSentinel {
			continue
		}

		month, err := utils.ParseMonth(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter o mês na linha %d", line)
		}

		count, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter o campo count na linha %d", line)
		}

		sumBTC, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter a soma em BTC na linha %d", line)
		}

		sumUSD, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao converter a soma em USD na linha %d", line)
		}

		timeline.Append(domain.TimelineRecord{
			Family: family,
			Month:  month,
			Count:  count,
			SumBTC: sumBTC,
			SumUSD: sumUSD,
		})
	}

	return timeline, nil
}
