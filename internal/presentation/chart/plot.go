package chart

import (
	"math"
	"strings"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/util"
)

const (
	markPoint = "•"
	markLevel = "●"
)

// LineChart scatters values left to right over a height-row grid, labelling
// the top and bottom rows with the value range. Points are spread evenly by
// index; when there are more points than columns the later point wins.
func LineChart(values []float64, width, height int, format func(float64) string) []string {
	if len(values) == 0 || height < 2 {
		return nil
	}
	if format == nil {
		format = func(v float64) string { return util.FormatNumber(v, 1) }
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	top, bottom := format(hi), format(lo)
	labelW := max(util.GetDisplayWidth(top), util.GetDisplayWidth(bottom))
	plotW := max(width-labelW-2, 1)

	grid := newGrid(height, plotW)
	for i, v := range values {
		row := height / 2
		if span > 0 {
			row = int(math.Round((v - lo) / span * float64(height-1)))
		}
		grid[height-1-row][column(i, len(values), plotW)] = markPoint
	}

	lines := make([]string, 0, height+1)
	for r := 0; r < height; r++ {
		label := ""
		switch r {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		lines = append(lines, padLeft(label, labelW)+" ┤"+strings.Join(grid[r], ""))
	}
	lines = append(lines, strings.Repeat(" ", labelW)+" └"+strings.Repeat("─", plotW))
	return lines
}

// LevelChart plots integer levels 0..len(labels)-1 on fixed rows, highest
// level on top, each row labelled from labels.
func LevelChart(levels []int, labels []string, width int) []string {
	if len(levels) == 0 || len(labels) == 0 {
		return nil
	}

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, util.GetDisplayWidth(l))
	}
	plotW := max(width-labelW-2, 1)
	rows := len(labels)

	grid := newGrid(rows, plotW)
	for i, lvl := range levels {
		lvl = min(max(lvl, 0), rows-1)
		grid[rows-1-lvl][column(i, len(levels), plotW)] = markLevel
	}

	lines := make([]string, 0, rows+1)
	for r := 0; r < rows; r++ {
		lines = append(lines, util.PadRight(labels[rows-1-r], labelW)+" ┤"+strings.Join(grid[r], ""))
	}
	lines = append(lines, strings.Repeat(" ", labelW)+" └"+strings.Repeat("─", plotW))
	return lines
}

// TimeAxis labels the first and last instants under a plot whose axis starts
// after a label column of labelW cells.
func TimeAxis(first, last time.Time, width, labelW int, format func(time.Time) string) string {
	left, right := format(first), format(last)
	plotW := max(width-labelW-2, 1)
	indent := strings.Repeat(" ", labelW+2)

	if first.Equal(last) {
		return indent + left
	}
	gap := plotW - util.GetDisplayWidth(left) - util.GetDisplayWidth(right)
	if gap < 1 {
		return indent + left
	}
	return indent + left + strings.Repeat(" ", gap) + right
}

// LabelWidth returns the label column width LineChart uses for values.
func LabelWidth(values []float64, format func(float64) string) int {
	if len(values) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return max(util.GetDisplayWidth(format(hi)), util.GetDisplayWidth(format(lo)))
}

func newGrid(rows, cols int) [][]string {
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	return grid
}

// column spreads index i of n points over cols columns.
func column(i, n, cols int) int {
	if n <= 1 || cols <= 1 {
		return 0
	}
	return i * (cols - 1) / (n - 1)
}

func padLeft(s string, width int) string {
	w := util.GetDisplayWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
