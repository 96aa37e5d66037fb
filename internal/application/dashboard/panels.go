package dashboard

import (
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/data/aggregator"
	"github.com/penwyp/go-carbon-monitor/internal/data/parser"
	"github.com/penwyp/go-carbon-monitor/internal/data/source"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
)

// PanelID identifies one of the five dashboard panels
type PanelID string

const (
	PanelEmissions  PanelID = "emissions"
	PanelDelayTrend PanelID = "delay_trend"
	PanelUrgency    PanelID = "urgency"
	PanelHistogram  PanelID = "delay_histogram"
	PanelIntensity  PanelID = "intensity_trend"
)

// Placeholder texts shown in place of a chart
const (
	PlaceholderWaiting    = "Waiting for log data..."
	PlaceholderEmissions  = "No completed tasks yet"
	PlaceholderDelayTrend = "No delay data yet"
	PlaceholderUrgency    = "Awaiting tasks"
	PlaceholderHistogram  = "No completions yet"
	PlaceholderIntensity  = "No intensity data yet"
)

// DashboardTitle heads the whole screen
const DashboardTitle = "Green Scheduler Live Analytics Dashboard"

const (
	titleEmissions  = "Carbon Emission Comparison (Simulated)"
	titleDelayTrend = "Task Delay Over Time"
	titleUrgency    = "Average Delay by Urgency"
	titleHistogram  = "Task Completion Delay Distribution"
	titleIntensity  = "Carbon Intensity Trend Over Time"
)

// Panel is the common header of every panel
type Panel struct {
	ID          PanelID `json:"id"`
	Title       string  `json:"title"`
	NoData      bool    `json:"noData"`
	Placeholder string  `json:"placeholder,omitempty"`
}

// ScenarioValue is one bar of the emissions panel
type ScenarioValue struct {
	Scenario emissions.Scenario `json:"scenario"`
	Grams    float64            `json:"grams"`
}

type EmissionsPanel struct {
	Panel
	Values []ScenarioValue `json:"values"`
}

type DelayTrendPanel struct {
	Panel
	Points []aggregator.TimePoint `json:"points"`
}

type UrgencyPanel struct {
	Panel
	Buckets []aggregator.Bucket `json:"buckets"`
}

type HistogramPanel struct {
	Panel
	Delays []float64        `json:"delays"`
	Bins   []aggregator.Bin `json:"bins"`
}

type IntensityPanel struct {
	Panel
	Points []aggregator.OrdinalPoint `json:"points"`
}

// Snapshot is everything one refresh tick produced. It is built from scratch
// on every tick and never mutated after being handed to a RenderSink.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Source      source.Info       `json:"source"`
	Stats       parser.ParseStats `json:"stats"`
	EventCount  int               `json:"eventCount"`
	Completions int               `json:"completions"`
	Intensities int               `json:"intensities"`
	MeanDelay   float64           `json:"meanDelay"`

	// Live is the current window from the intensity endpoint, when configured
	Live    *intensity.Forecast `json:"live,omitempty"`
	LiveErr string              `json:"liveError,omitempty"`

	Emissions  EmissionsPanel  `json:"emissions"`
	DelayTrend DelayTrendPanel `json:"delayTrend"`
	Urgency    UrgencyPanel    `json:"urgency"`
	Histogram  HistogramPanel  `json:"histogram"`
	Intensity  IntensityPanel  `json:"intensity"`
}

// Empty reports whether the tick saw no events at all
func (s *Snapshot) Empty() bool {
	return s.EventCount == 0
}

// Panels returns the panel headers in display order
func (s *Snapshot) Panels() []Panel {
	return []Panel{
		s.Emissions.Panel,
		s.DelayTrend.Panel,
		s.Urgency.Panel,
		s.Histogram.Panel,
		s.Intensity.Panel,
	}
}

// BuildSnapshot assembles the five panels from one tick's derived data.
// An empty collection turns every panel into the waiting placeholder;
// otherwise each panel falls back to its own placeholder when its backing
// events are missing.
func BuildSnapshot(now time.Time, events *model.EventCollection, estimate emissions.Estimate, summary *aggregator.Summary) *Snapshot {
	if summary == nil {
		summary = &aggregator.Summary{}
	}

	snap := &Snapshot{
		GeneratedAt: now,
		EventCount:  events.Len(),
		Completions: len(summary.Delays),
		Intensities: len(summary.IntensitySeries),
		MeanDelay:   summary.MeanDelay,
	}

	snap.Emissions.Panel = newPanel(PanelEmissions, titleEmissions)
	snap.DelayTrend.Panel = newPanel(PanelDelayTrend, titleDelayTrend)
	snap.Urgency.Panel = newPanel(PanelUrgency, titleUrgency)
	snap.Histogram.Panel = newPanel(PanelHistogram, titleHistogram)
	snap.Intensity.Panel = newPanel(PanelIntensity, titleIntensity)

	if events.Empty() {
		for _, p := range []*Panel{
			&snap.Emissions.Panel,
			&snap.DelayTrend.Panel,
			&snap.Urgency.Panel,
			&snap.Histogram.Panel,
			&snap.Intensity.Panel,
		} {
			p.markEmpty(PlaceholderWaiting)
		}
		return snap
	}

	if summary.HasCompletions() {
		for _, sc := range emissions.Scenarios {
			snap.Emissions.Values = append(snap.Emissions.Values, ScenarioValue{Scenario: sc, Grams: estimate[sc]})
		}
		snap.DelayTrend.Points = summary.DelaySeries
		snap.Histogram.Delays = summary.Delays
		snap.Histogram.Bins = aggregator.Histogram(summary.Delays, constants.DelayHistogramBins)
	} else {
		snap.Emissions.markEmpty(PlaceholderEmissions)
		snap.DelayTrend.markEmpty(PlaceholderDelayTrend)
		snap.Histogram.markEmpty(PlaceholderHistogram)
	}

	if summary.UrgencyBuckets != nil {
		snap.Urgency.Buckets = summary.UrgencyBuckets
	} else {
		snap.Urgency.markEmpty(PlaceholderUrgency)
	}

	if summary.HasIntensity() {
		snap.Intensity.Points = summary.IntensitySeries
	} else {
		snap.Intensity.markEmpty(PlaceholderIntensity)
	}

	return snap
}

func newPanel(id PanelID, title string) Panel {
	return Panel{ID: id, Title: title}
}

func (p *Panel) markEmpty(placeholder string) {
	p.NoData = true
	p.Placeholder = placeholder
}
