// Package charts exports deck statistics as standalone HTML charts.
package charts

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ramonehamilton/deckforge/internal/deck"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string // Chart title
	Subtitle string // Chart subtitle
	Width    string // Chart width (e.g., "900px")
	Height   string // Chart height (e.g., "500px")
	Theme    string // Chart theme
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

// DataPoint represents a single data point in a chart.
type DataPoint struct {
	Label string
	Value float64
}

// RenderManaCurve writes the deck's mana curve as a bar chart HTML file.
// Cost buckets are sorted numerically.
func RenderManaCurve(stats deck.Statistics, config ChartConfig, outputPath string) error {
	buckets := make([]string, 0, len(stats.ManaCurve))
	for bucket := range stats.ManaCurve {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		a, _ := strconv.Atoi(buckets[i])
		b, _ := strconv.Atoi(buckets[j])
		return a < b
	})

	data := make([]DataPoint, len(buckets))
	for i, bucket := range buckets {
		data[i] = DataPoint{Label: bucket, Value: float64(stats.ManaCurve[bucket])}
	}

	if config.Title == "" {
		config.Title = "Mana Curve"
	}
	return renderBarChart(data, config, outputPath)
}

// RenderTypeBreakdown writes the deck's card-type distribution as a bar
// chart HTML file, in the grouped-view category order.
func RenderTypeBreakdown(stats deck.Statistics, config ChartConfig, outputPath string) error {
	data := make([]DataPoint, 0, len(stats.Types))
	for _, category := range deck.GroupOrder {
		if count, ok := stats.Types[category]; ok {
			data = append(data, DataPoint{Label: category, Value: float64(count)})
		}
	}

	if config.Title == "" {
		config.Title = "Card Types"
	}
	return renderBarChart(data, config, outputPath)
}

// RenderColorBreakdown writes the deck's color distribution as a pie
// chart HTML file.
func RenderColorBreakdown(stats deck.Statistics, config ChartConfig, outputPath string) error {
	colors := make([]string, 0, len(stats.Colors))
	for color := range stats.Colors {
		colors = append(colors, color)
	}
	sort.Strings(colors)

	items := make([]opts.PieData, len(colors))
	for i, color := range colors {
		items[i] = opts.PieData{Name: color, Value: stats.Colors[color]}
	}

	if config.Title == "" {
		config.Title = "Color Distribution"
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	pie.AddSeries("Cards", items)

	return renderToFile(pie, outputPath)
}

func renderBarChart(data []DataPoint, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.BarData{Value: point.Value}
	}

	bar.SetXAxis(xLabels).
		AddSeries("Cards", yData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	return renderToFile(bar, outputPath)
}

type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(chart renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := chart.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}
	return nil
}
