package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/data/aggregator"
	"github.com/penwyp/go-carbon-monitor/internal/data/parser"
	"github.com/penwyp/go-carbon-monitor/internal/data/source"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// Formatter writes a Report in one output format
type Formatter interface {
	Format(w io.Writer, report *Report) error
}

// NewFormatter returns the formatter for an --output value
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "", "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (valid: table, json, csv, summary)", name)
	}
}

// TaskRow is one completed task with its simulated emissions
type TaskRow struct {
	Time         time.Time          `json:"time"`
	Task         string             `json:"task"`
	DelaySeconds float64            `json:"delaySeconds"`
	Emissions    emissions.Estimate `json:"emissions"`
}

// IntensityRow is one logged intensity reading
type IntensityRow struct {
	Time    time.Time            `json:"time"`
	Level   model.IntensityLevel `json:"level"`
	Ordinal int                  `json:"ordinal"`
}

// Report is the one-shot view of a snapshot used by the report command
type Report struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Source      source.Info         `json:"source"`
	Stats       parser.ParseStats   `json:"stats"`
	Tasks       []TaskRow           `json:"tasks"`
	Intensity   []IntensityRow      `json:"intensity"`
	Totals      emissions.Estimate  `json:"totals"`
	TotalDelay  float64             `json:"totalDelaySeconds"`
	MeanDelay   float64             `json:"meanDelaySeconds"`
	Urgency     []aggregator.Bucket `json:"urgency"`
	Histogram   []aggregator.Bin    `json:"histogram"`
	Live        *intensity.Forecast `json:"live,omitempty"`
}

// NewReport flattens a snapshot into report rows. Per-task emissions use
// the same projection as the totals, so rows sum to Totals.
func NewReport(snap *dashboard.Snapshot) *Report {
	report := &Report{
		GeneratedAt: snap.GeneratedAt,
		Source:      snap.Source,
		Stats:       snap.Stats,
		Tasks:       make([]TaskRow, 0, len(snap.DelayTrend.Points)),
		Intensity:   make([]IntensityRow, 0, len(snap.Intensity.Points)),
		MeanDelay:   snap.MeanDelay,
		Urgency:     snap.Urgency.Buckets,
		Histogram:   snap.Histogram.Bins,
		Live:        snap.Live,
	}

	delays := make([]float64, 0, len(snap.DelayTrend.Points))
	for _, p := range snap.DelayTrend.Points {
		report.Tasks = append(report.Tasks, TaskRow{
			Time:         p.Time,
			Task:         p.Task,
			DelaySeconds: p.Value,
			Emissions:    emissions.Simulate([]float64{p.Value}),
		})
		delays = append(delays, p.Value)
		report.TotalDelay += p.Value
	}
	report.Totals = emissions.Simulate(delays)

	for _, p := range snap.Intensity.Points {
		report.Intensity = append(report.Intensity, IntensityRow{Time: p.Time, Level: p.Level, Ordinal: p.Ordinal})
	}

	return report
}

func formatTime(t time.Time) string {
	return util.GetTimeProvider().Format(t, "2006-01-02 15:04:05")
}
