package rendering

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ransom-timeline-charts/internal/config"
	"github.com/vfg2006/ransom-timeline-charts/internal/domain"
	"github.com/vfg2006/ransom-timeline-charts/pkg/utils"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Renderer interface {
	RenderFamilyGroups(partition *domain.BucketPartition, timeline *domain.Timeline) error
	RenderTopFamilies(tops map[domain.Metric][]string, timeline *domain.Timeline) error
	RenderMonthTimeline(timeline *domain.MonthTimeline) error
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Renderer {
	return &Service{
		cfg: cfg,
	}
}

// RenderFamilyGroups gera um painel por métrica para cada um dos três
// grupos de famílias, com uma linha por família.
func (s *Service) RenderFamilyGroups(partition *domain.BucketPartition, timeline *domain.Timeline) error {
	for _, bucket := range domain.Buckets() {
		families := partition.Group(bucket)
		if len(families) == 0 {
			logrus.WithField("group", bucket).Warn("Grupo sem famílias, nenhum gráfico gerado")
			continue
		}

		for _, metric := range domain.Metrics() {
			series := make([]chart.Series, 0, len(families))
			for _, family := range families {
				familySeries := timeline.Family(family)
				series = append(series, timeSeries(
					family,
					familySeries.Months(),
					familySeries.Values(metric),
					pointStyle(familyColor(family)),
				))
			}

			title := fmt.Sprintf("Timeline of transactions of different ransomware families (%s) - %s", bucket, metric.Title())
			panel := s.newPanel(title, series)

			// Em small e medium a escala de BTC fica abaixo de 1, então o
			// separador de milhar só entra no grupo large
			if metric == domain.MetricSumBTC && bucket != domain.BucketLarge {
				panel.YAxis.ValueFormatter = decimalFormatter
			}

			panel.Elements = []chart.Renderable{chart.Legend(&panel)}

			filename := fmt.Sprintf("timeline_families_%s_%s.png", bucket, metric)
			if err := s.writePNG(filename, panel); err != nil {
				return err
			}
		}
	}

	return nil
}

// RenderTopFamilies gera um painel por métrica, cada um com as linhas
// das famílias mais bem ranqueadas naquela métrica.
func (s *Service) RenderTopFamilies(tops map[domain.Metric][]string, timeline *domain.Timeline) error {
	minMonth, maxMonth := timeline.Period()

	for _, metric := range domain.Metrics() {
		families := tops[metric]
		if len(families) == 0 {
			logrus.WithField("metric", metric).Warn("Ranking vazio, nenhum gráfico gerado")
			continue
		}

		series := make([]chart.Series, 0, len(families))
		for rank, family := range families {
			familySeries := timeline.Family(family)
			series = append(series, timeSeries(
				family,
				familySeries.Months(),
				familySeries.Values(metric),
				pointStyle(rankColor(rank)),
			))
		}

		title := fmt.Sprintf(
			"Top %d families in %s (%s until %s)",
			len(families),
			metricPhrase(metric),
			utils.FormatMonthLong(minMonth),
			utils.FormatMonthLong(maxMonth),
		)
		panel := s.newPanel(title, series)
		panel.XAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(minMonth),
			Max: chart.TimeToFloat64(maxMonth.AddDate(0, 0, 10)),
		}
		panel.Elements = []chart.Renderable{chart.Legend(&panel)}

		filename := fmt.Sprintf("timeline_top_families_%s.png", metric)
		if err := s.writePNG(filename, panel); err != nil {
			return err
		}
	}

	return nil
}

// RenderMonthTimeline gera os três painéis da timeline agregada por mês,
// com anotações nos picos e nos extremos da série.
func (s *Service) RenderMonthTimeline(timeline *domain.MonthTimeline) error {
	if len(timeline.Records) < 2 {
		return errors.New("timeline mensal com menos de dois meses, nada a plotar")
	}

	months := timeline.Months()
	firstMonth, lastMonth := timeline.Period()

	for _, metric := range domain.Metrics() {
		values := s.monthValues(timeline, metric)

		series := timeSeries(metric.String(), months, values, pointStyle(monthPanelColor(metric)))

		annotations := make([]chart.Value2, 0, len(values))
		for _, i := range PeakIndexes(values, s.peakEpsilon(metric)) {
			annotations = append(annotations, annotationAt(months[i], values[i]))
		}
		annotations = append(annotations, annotationAt(months[0], values[0]))
		annotations = append(annotations, annotationAt(months[len(months)-1], values[len(values)-1]))

		title := fmt.Sprintf(
			"%s - ransom transactions per month (%s until %s)",
			s.monthPanelTitle(metric),
			utils.FormatMonthLong(firstMonth),
			utils.FormatMonthLong(lastMonth),
		)
		panel := s.newPanel(title, []chart.Series{
			series,
			chart.AnnotationSeries{
				Annotations: annotations,
				Style: chart.Style{
					FontSize:    12.0,
					StrokeColor: monthPanelColor(metric),
					FillColor:   drawing.ColorWhite,
				},
			},
		})
		panel.XAxis.Range = &chart.ContinuousRange{
			Min: chart.TimeToFloat64(firstMonth),
			Max: chart.TimeToFloat64(lastMonth),
		}

		filename := fmt.Sprintf("timeline_months_%s.png", metric)
		if err := s.writePNG(filename, panel); err != nil {
			return err
		}
	}

	return nil
}

// monthValues aplica as transformações de escala do gráfico mensal:
// BTC com 4 casas, USD em milhões com 2 casas.
func (s *Service) monthValues(timeline *domain.MonthTimeline, metric domain.Metric) []float64 {
	values := timeline.Values(metric)

	switch metric {
	case domain.MetricSumBTC:
		for i, v := range values {
			values[i] = utils.RoundWithDecimalPlaces(v, 4)
		}
	case domain.MetricSumUSD:
		factor := s.cfg.MonthsChart.USDFactor
		if factor <= 0 {
			factor = 1
		}
		for i, v := range values {
			values[i] = utils.RoundWithTwoDecimalPlace(v / factor)
		}
	}

	return values
}

func (s *Service) monthPanelTitle(metric domain.Metric) string {
	if metric == domain.MetricSumUSD && s.cfg.MonthsChart.USDFactor == 1000000 {
		return "Payment sum in USD (in millions)"
	}
	return metric.Title()
}

func (s *Service) peakEpsilon(metric domain.Metric) float64 {
	switch metric {
	case domain.MetricCount:
		return s.cfg.MonthsChart.PeakEpsilonCount
	case domain.MetricSumBTC:
		return s.cfg.MonthsChart.PeakEpsilonBTC
	default:
		return s.cfg.MonthsChart.PeakEpsilonUSDMillions
	}
}

// newPanel monta um painel com as convenções comuns: eixo de tempo com
// ticks em intervalo fixo de meses, eixo y sem notação científica e com
// separador de milhar, e grade.
func (s *Service) newPanel(title string, series []chart.Series) chart.Chart {
	minMonth, maxMonth := seriesPeriod(series)

	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 18.0},
		Width:      s.cfg.Chart.Width,
		Height:     s.cfg.Chart.Height,
		Background: chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 36}},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontSize: 14.0, TextRotationDegrees: 25.0},
			ValueFormatter: chart.TimeValueFormatterWithFormat(utils.MonthLayout),
			Ticks:          s.monthTicks(minMonth, maxMonth),
			GridMajorStyle: chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1.0},
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontSize: 14.0},
			ValueFormatter: thousandsFormatter,
			GridMajorStyle: chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1.0},
		},
		Series: series,
	}
}

// monthTicks gera os ticks do eixo de tempo, um a cada intervalo fixo de
// meses a partir do primeiro mês plotado.
func (s *Service) monthTicks(minMonth, maxMonth time.Time) []chart.Tick {
	interval := s.cfg.Chart.TickIntervalMonths
	if interval < 1 {
		interval = 1
	}

	var ticks []chart.Tick
	for t := minMonth; !t.After(maxMonth); t = t.AddDate(0, interval, 0) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: utils.FormatMonth(t)})
	}

	// go-chart precisa de pelo menos dois ticks para montar o eixo
	if len(ticks) < 2 {
		next := minMonth.AddDate(0, interval, 0)
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(next), Label: utils.FormatMonth(next)})
	}

	return ticks
}

func (s *Service) writePNG(name string, panel chart.Chart) error {
	path := filepath.Join(s.cfg.Chart.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar o arquivo do gráfico %s", name)
	}
	defer file.Close()

	if err := panel.Render(chart.PNG, file); err != nil {
		return errors.Wrapf(err, "erro ao renderizar o gráfico %s", name)
	}

	logrus.WithField("chart", path).Info("Gráfico gerado")
	return nil
}

// timeSeries monta a série de uma linha do gráfico. Séries de um único
// ponto ganham um ponto duplicado, já que o go-chart exige ao menos dois.
func timeSeries(name string, months []time.Time, values []float64, style chart.Style) chart.TimeSeries {
	if len(months) == 1 {
		months = append(months, months[0].AddDate(0, 0, 1))
		values = append(values, values[0])
	}

	return chart.TimeSeries{
		Name:    name,
		XValues: months,
		YValues: values,
		Style:   style,
	}
}

func pointStyle(color drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: color,
		StrokeWidth: 1.5,
		DotColor:    color,
		DotWidth:    3.0,
	}
}

func annotationAt(month time.Time, value float64) chart.Value2 {
	return chart.Value2{
		XValue: chart.TimeToFloat64(month),
		YValue: value,
		Label:  strconv.FormatFloat(value, 'f', -1, 64),
	}
}

// thousandsFormatter formata o eixo y com separador de milhar e sem
// notação científica.
func thousandsFormatter(v interface{}) string {
	if value, ok := v.(float64); ok {
		return humanize.Comma(int64(math.Round(value)))
	}
	return fmt.Sprintf("%v", v)
}

// decimalFormatter é usado nos painéis de BTC com escala pequena.
func decimalFormatter(v interface{}) string {
	if value, ok := v.(float64); ok {
		return humanize.CommafWithDigits(value, 4)
	}
	return fmt.Sprintf("%v", v)
}

func metricPhrase(metric domain.Metric) string {
	switch metric {
	case domain.MetricCount:
		return "the number of transactions"
	case domain.MetricSumBTC:
		return "the payment sum in BTC"
	default:
		return "the payment sum in USD"
	}
}

func monthPanelColor(metric domain.Metric) drawing.Color {
	switch metric {
	case domain.MetricCount:
		return drawing.Color{B: 0xFF, A: 0xFF} // blue
	case domain.MetricSumBTC:
		return drawing.Color{G: 0x80, A: 0xFF} // green
	default:
		return drawing.Color{R: 0xFF, A: 0xFF} // red
	}
}

// seriesPeriod extrai o primeiro e o último mês entre todas as séries do
// painel, para posicionar os ticks do eixo de tempo.
func seriesPeriod(series []chart.Series) (time.Time, time.Time) {
	var minMonth, maxMonth time.Time

	for _, s := range series {
		ts, ok := s.(chart.TimeSeries)
		if !ok || len(ts.XValues) == 0 {
			continue
		}
		first := ts.XValues[0]
		last := ts.XValues[len(ts.XValues)-1]
		if minMonth.IsZero() || first.Before(minMonth) {
			minMonth = first
		}
		if maxMonth.IsZero() || last.After(maxMonth) {
			maxMonth = last
		}
	}

	return minMonth, maxMonth
}
