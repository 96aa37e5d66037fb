package layout

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/presentation/chart"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// PanelBodyHeight is the number of content rows inside every panel box
const PanelBodyHeight = 8

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// Header returns the title line, the log source line and, when the live
// endpoint is configured, the current intensity line.
func (b *BaseStrategy) Header(snap *dashboard.Snapshot, param Param) []string {
	width := param.Sizer.Width
	title := "🌿 " + dashboard.DashboardTitle
	clock := b.FormatTime(snap.GeneratedAt, param)

	gap := max(width-util.GetDisplayWidth(title)-util.GetDisplayWidth(clock), 1)
	lines := []string{
		util.FormatHeaderTitle(title) + strings.Repeat(" ", gap) + clock,
		util.PadRight(b.sourceLine(snap, param), width),
	}

	if live := b.liveLine(snap, param); live != "" {
		lines = append(lines, util.PadRight(live, width))
	}
	return lines
}

func (b *BaseStrategy) sourceLine(snap *dashboard.Snapshot, param Param) string {
	src := snap.Source
	if !src.Exists {
		return fmt.Sprintf("Log: %s %s", src.Path, util.Colorize(util.ColorYellow, "(not found)"))
	}
	return fmt.Sprintf("Log: %s  %s  modified %s",
		src.Path, util.FormatBytes(src.Size), b.FormatTime(src.ModTime, param))
}

func (b *BaseStrategy) liveLine(snap *dashboard.Snapshot, param Param) string {
	switch {
	case snap.Live != nil:
		return fmt.Sprintf("Live intensity: %s %d gCO₂/kWh, window until %s",
			util.Colorize(levelColor(snap.Live.Level), snap.Live.Level.Label()),
			snap.Live.Forecast,
			b.FormatTime(snap.Live.To, param))
	case snap.LiveErr != "":
		return "Live intensity: " + util.Colorize(util.ColorDim, "unavailable ("+snap.LiveErr+")")
	}
	return ""
}

// Footer returns the parse statistics line and the key help
func (b *BaseStrategy) Footer(snap *dashboard.Snapshot, param Param) []string {
	stats := fmt.Sprintf("Events: %d  Completions: %d  Intensity: %d  Ignored: %d  Rejected: %d",
		snap.EventCount, snap.Completions, snap.Intensities,
		snap.Stats.Ignored, snap.Stats.Rejected+snap.Stats.BadTimestamp)
	return []string{
		util.PadRight(stats, param.Sizer.Width),
		util.FormatPlaceholder("q quit · r refresh"),
	}
}

// FormatTime formats t in the display timezone
func (b *BaseStrategy) FormatTime(t time.Time, param Param) string {
	if t.IsZero() {
		return "-"
	}
	layout := "15:04:05"
	if param.TimeFormat == "12h" {
		layout = "3:04:05 PM"
	}
	return util.GetTimeProvider().Format(t, layout)
}

// PanelBox draws a rounded box of the given width around body
func (b *BaseStrategy) PanelBox(title string, body []string, width int) []string {
	inner := max(width-4, 1)

	maxTitle := max(width-6, 1)
	if util.GetDisplayWidth(title) > maxTitle {
		title = util.PadRight(title, maxTitle)
	}
	dashes := max(width-5-util.GetDisplayWidth(title), 0)

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, "╭─ "+util.FormatPanelTitle(title)+" "+strings.Repeat("─", dashes)+"╮")
	for _, l := range body {
		lines = append(lines, "│ "+util.PadRight(l, inner)+" │")
	}
	lines = append(lines, "╰"+strings.Repeat("─", max(width-2, 0))+"╯")
	return lines
}

// JoinColumns places two equally tall blocks side by side
func (b *BaseStrategy) JoinColumns(left, right []string, leftWidth, gap int) []string {
	rows := max(len(left), len(right))
	lines := make([]string, rows)
	spacer := strings.Repeat(" ", gap)
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		lines[i] = util.PadRight(l, leftWidth) + spacer + r
	}
	return lines
}

// Panel renders one panel of the snapshot as a box of the given width
func (b *BaseStrategy) Panel(snap *dashboard.Snapshot, id dashboard.PanelID, width int, param Param) []string {
	var header dashboard.Panel
	for _, p := range snap.Panels() {
		if p.ID == id {
			header = p
		}
	}

	inner := max(width-4, 1)
	var body []string
	if header.NoData {
		body = placeholderBody(header.Placeholder, inner, PanelBodyHeight)
	} else {
		body = b.panelBody(snap, id, inner, PanelBodyHeight, param)
	}
	return b.PanelBox(header.Title, fitHeight(body, PanelBodyHeight), width)
}

func (b *BaseStrategy) panelBody(snap *dashboard.Snapshot, id dashboard.PanelID, width, height int, param Param) []string {
	switch id {
	case dashboard.PanelEmissions:
		items := make([]chart.BarItem, 0, len(snap.Emissions.Values))
		for _, v := range snap.Emissions.Values {
			items = append(items, chart.BarItem{Label: titleCase(string(v.Scenario)), Value: v.Grams})
		}
		lines := chart.BarChart(items, width, util.FormatGrams)
		return append(lines, "", util.FormatPlaceholder("simulated gCO₂ emitted per grid scenario"))

	case dashboard.PanelDelayTrend:
		points := snap.DelayTrend.Points
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		lines := chart.LineChart(values, width, height-2, util.FormatSeconds)
		labelW := chart.LabelWidth(values, util.FormatSeconds)
		return append(lines, chart.TimeAxis(points[0].Time, points[len(points)-1].Time, width, labelW,
			func(t time.Time) string { return b.FormatTime(t, param) }))

	case dashboard.PanelUrgency:
		items := make([]chart.BarItem, 0, len(snap.Urgency.Buckets))
		for _, bk := range snap.Urgency.Buckets {
			items = append(items, chart.BarItem{Label: titleCase(string(bk.Urgency)), Value: bk.Average})
		}
		lines := chart.BarChart(items, width, util.FormatSeconds)
		return append(lines, "", util.FormatPlaceholder("mean delay "+util.FormatSeconds(snap.MeanDelay)+" scaled per urgency"))

	case dashboard.PanelHistogram:
		items := make([]chart.BarItem, 0, len(snap.Histogram.Bins))
		for _, bin := range snap.Histogram.Bins {
			items = append(items, chart.BarItem{
				Label: util.FormatNumber(bin.Lower, 1) + "-" + util.FormatNumber(bin.Upper, 1) + "s",
				Value: float64(bin.Count),
			})
		}
		return chart.BarChart(items, width, func(v float64) string { return fmt.Sprintf("%.0f", v) })

	case dashboard.PanelIntensity:
		points := snap.Intensity.Points
		ordinals := make([]int, len(points))
		for i, p := range points {
			ordinals[i] = p.Ordinal
		}
		labels := intensityLabels()
		lines := chart.LevelChart(ordinals, labels, width)
		labelW := 0
		for _, l := range labels {
			labelW = max(labelW, util.GetDisplayWidth(l))
		}
		return append(lines, chart.TimeAxis(points[0].Time, points[len(points)-1].Time, width, labelW,
			func(t time.Time) string { return b.FormatTime(t, param) }))
	}
	return nil
}

// intensityLabels names the rows of the intensity chart, ordinal 0 first
func intensityLabels() []string {
	labels := []string{model.IntensityUnknown.Label()}
	for _, l := range model.OrdinalLevels {
		labels = append(labels, l.Label())
	}
	return labels
}

func placeholderBody(text string, width, height int) []string {
	body := make([]string, height)
	pad := max((width-util.GetDisplayWidth(text))/2, 0)
	body[height/2-1] = strings.Repeat(" ", pad) + util.FormatPlaceholder(text)
	return body
}

// fitHeight pads or truncates lines to exactly height rows
func fitHeight(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func levelColor(level model.IntensityLevel) string {
	switch level {
	case model.IntensityLow:
		return util.ColorGreen
	case model.IntensityModerate:
		return util.ColorYellow
	case model.IntensityHigh, model.IntensityVeryHigh:
		return util.ColorRed
	default:
		return util.ColorDim
	}
}
