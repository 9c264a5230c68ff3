package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/craigloewen-msft/buy-vs-rent-calculator/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws one or more line series on a character grid. The
// results scene uses it for the two net-worth curves; the sensitivity
// scene uses it for the sweep curve, with the zero line showing where the
// verdict flips.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string

	zeroLine  bool
	markerIdx int // sample index to highlight on the first series, -1 for none
}

// NewASCIIChart creates a new ASCII chart.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Series:     []*DataSeries{},
		Labels:     []string{},
		Width:      60,
		Height:     15,
		ShowLegend: true,
		markerIdx:  -1,
	}
}

// AddSeries adds a data series to the chart.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithLabels sets the X-axis labels.
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithXAxisLabel sets the label under the chart.
func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// WithZeroLine draws a dotted line at value zero when zero is inside the
// plotted range.
func (c *ASCIIChart) WithZeroLine() *ASCIIChart {
	c.zeroLine = true
	return c
}

// WithMarkerAt highlights one sample of the first series.
func (c *ASCIIChart) WithMarkerAt(index int) *ASCIIChart {
	c.markerIdx = index
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	globalMin, globalMax := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(globalMin, globalMax))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(labelStyle.Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// getGlobalMinMax finds the plotted range across all series, padded 10%.
// An enabled zero line forces zero into the range.
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			if point < globalMin {
				globalMin = point
			}
			if point > globalMax {
				globalMax = point
			}
		}
	}

	if globalMin > globalMax {
		return 0, 0
	}

	if c.zeroLine {
		globalMin = math.Min(globalMin, 0)
		globalMax = math.Max(globalMax, 0)
	}

	padding := (globalMax - globalMin) * 0.1
	if padding == 0 {
		padding = 1
	}
	return globalMin - padding, globalMax + padding
}

// renderGrid renders the chart grid with data points.
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 12
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	toY := func(value float64) int {
		return c.Height - 1 - int((value-minVal)/(maxVal-minVal)*float64(c.Height-1))
	}

	if c.zeroLine && minVal < 0 && maxVal > 0 {
		zeroY := toY(0)
		if zeroY >= 0 && zeroY < c.Height {
			for x := 0; x < chartWidth; x++ {
				grid[zeroY][x] = '┈'
			}
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) < 2 {
			continue
		}

		pointChar := c.getSeriesChar(seriesIdx)
		toX := func(i int) int {
			return int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
		}

		for i, point := range series.Points {
			x, y := toX(i), toY(point)
			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}
			if i > 0 {
				c.drawLine(grid, toX(i-1), toY(series.Points[i-1]), x, y, pointChar)
			}
		}

		if seriesIdx == 0 && c.markerIdx >= 0 && c.markerIdx < len(series.Points) {
			x, y := toX(c.markerIdx), toY(series.Points[c.markerIdx])
			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = '◉'
			}
		}
	}

	var output strings.Builder
	valueRange := maxVal - minVal

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		yAxisStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Width(yAxisWidth).
			Align(lipgloss.Right)

		output.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		output.WriteString(" │ ")
		output.WriteString(string(row))
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return output.String()
}

// getSeriesChar returns the character to use for a series.
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two points using Bresenham's algorithm. Plotted
// points are never overwritten by connecting segments.
func (c *ASCIIChart) drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' || grid[y][x] == '┈' {
				grid[y][x] = char
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels renders up to five evenly spaced X-axis labels.
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	if len(c.Labels) == 0 {
		return ""
	}

	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	var output strings.Builder

	output.WriteString(strings.Repeat(" ", yAxisWidth+3))

	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth/maxLabels - len(c.Labels[i-step])
			if spacing > 0 {
				output.WriteString(strings.Repeat(" ", spacing))
			}
		}
		output.WriteString(labelStyle.Render(c.Labels[i]))
	}

	return output.String()
}

// renderLegend renders the chart legend.
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}

	legendStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return legendStyle.Render("Legend: " + strings.Join(items, " • "))
}

// formatChartValue formats a Y-axis value.
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("$%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.0fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
