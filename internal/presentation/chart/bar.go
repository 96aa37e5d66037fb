// Package chart draws small text charts for the terminal dashboard.
// Every function returns plain lines of at most the requested display width
// and leaves colouring to the caller.
package chart

import (
	"math"
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/util"
)

const (
	barFull  = "█"
	barEmpty = " "
)

// BarItem is one labelled horizontal bar.
type BarItem struct {
	Label string
	Value float64
}

// BarChart draws one horizontal bar per item, scaled to the largest value:
//
//	low      │██████████           625.0 g
func BarChart(items []BarItem, width int, format func(float64) string) []string {
	if len(items) == 0 {
		return nil
	}
	if format == nil {
		format = func(v float64) string { return util.FormatNumber(v, 1) }
	}

	labelW, valueW := 0, 0
	maxV := 0.0
	values := make([]string, len(items))
	for i, it := range items {
		labelW = max(labelW, util.GetDisplayWidth(it.Label))
		values[i] = format(it.Value)
		valueW = max(valueW, util.GetDisplayWidth(values[i]))
		maxV = math.Max(maxV, it.Value)
	}

	barW := width - labelW - valueW - 3
	if barW < 1 {
		barW = 1
	}

	lines := make([]string, 0, len(items))
	for i, it := range items {
		filled := 0
		if maxV > 0 && it.Value > 0 {
			filled = int(math.Round(it.Value / maxV * float64(barW)))
			filled = max(filled, 1)
		}
		filled = min(filled, barW)

		var b strings.Builder
		b.WriteString(util.PadRight(it.Label, labelW))
		b.WriteString(" │")
		b.WriteString(strings.Repeat(barFull, filled))
		b.WriteString(strings.Repeat(barEmpty, barW-filled))
		b.WriteString(" ")
		b.WriteString(padLeft(values[i], valueW))
		lines = append(lines, b.String())
	}
	return lines
}
