package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// SummaryFormatter is responsible for formatting plain text summary reports.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format writes the report sections: source, tasks, emissions, urgency,
// delay distribution and intensity readings.
func (f *SummaryFormatter) Format(w io.Writer, report *Report) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Green Scheduler Carbon Summary Report")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Log: %s\n", report.Source.Path)
	fmt.Fprintf(&b, "Lines: %d (accepted %d, ignored %d, rejected %d)\n",
		report.Stats.Lines, report.Stats.Accepted, report.Stats.Ignored,
		report.Stats.Rejected+report.Stats.BadTimestamp)
	fmt.Fprintln(&b)

	if len(report.Tasks) == 0 && len(report.Intensity) == 0 {
		fmt.Fprintln(&b, "No data to summarize")
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, rule)
		_, err := io.WriteString(w, b.String())
		return err
	}

	if n := len(report.Tasks); n > 0 {
		first, last := report.Tasks[0].Time, report.Tasks[n-1].Time
		if first.Equal(last) {
			fmt.Fprintf(&b, "Date Range: %s\n", formatTime(first))
		} else {
			fmt.Fprintf(&b, "Date Range: %s to %s\n", formatTime(first), formatTime(last))
		}
		fmt.Fprintln(&b)

		fmt.Fprintln(&b, "Task Delays:")
		fmt.Fprintf(&b, "  Completed Tasks:  %d\n", n)
		fmt.Fprintf(&b, "  Total Delay:      %s\n", util.FormatSeconds(report.TotalDelay))
		fmt.Fprintf(&b, "  Mean Delay:       %s\n", util.FormatSeconds(report.MeanDelay))
		fmt.Fprintln(&b)

		fmt.Fprintln(&b, "Simulated Emissions:")
		for _, sc := range emissions.Scenarios {
			fmt.Fprintf(&b, "  %-10s %s (x%.1f)\n", sc+":", util.FormatGrams(report.Totals[sc]), emissions.Multiplier(sc))
		}
		fmt.Fprintln(&b)

		fmt.Fprintln(&b, "Average Delay by Urgency:")
		for _, bucket := range report.Urgency {
			fmt.Fprintf(&b, "  %-10s %s\n", string(bucket.Urgency)+":", util.FormatSeconds(bucket.Average))
		}
		fmt.Fprintln(&b)

		fmt.Fprintln(&b, "Delay Distribution:")
		for _, bin := range report.Histogram {
			fmt.Fprintf(&b, "  %8s - %-8s %d\n", util.FormatNumber(bin.Lower, 1), util.FormatNumber(bin.Upper, 1), bin.Count)
		}
		fmt.Fprintln(&b)
	}

	if len(report.Intensity) > 0 {
		counts := make(map[model.IntensityLevel]int)
		for _, r := range report.Intensity {
			counts[r.Level]++
		}

		fmt.Fprintln(&b, "Carbon Intensity Readings:")
		levels := append(append([]model.IntensityLevel{}, model.OrdinalLevels...), model.IntensityUnknown)
		for _, level := range levels {
			if counts[level] == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %-10s %d\n", level.Label()+":", counts[level])
		}
		latest := report.Intensity[len(report.Intensity)-1]
		fmt.Fprintf(&b, "  Latest:    %s at %s\n", latest.Level.Label(), formatTime(latest.Time))
		fmt.Fprintln(&b)
	}

	if report.Live != nil {
		fmt.Fprintf(&b, "Live Intensity: %s, %d gCO2/kWh\n\n", report.Live.Level.Label(), report.Live.Forecast)
	}

	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}
