package aggregator

import (
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
)

// Urgency names a synthetic urgency bucket.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// urgencyFactors scale the overall mean delay. The log carries no urgency
// field, so buckets are fixed multiples of the mean.
var urgencyFactors = []struct {
	urgency Urgency
	factor  float64
}{
	{UrgencyHigh, 0.6},
	{UrgencyMedium, 1.0},
	{UrgencyLow, 1.4},
}

// TimePoint is one delay observation on the delay-over-time chart.
type TimePoint struct {
	Time  time.Time `json:"time"`
	Task  string    `json:"task"`
	Value float64   `json:"value"`
}

// OrdinalPoint is one intensity observation mapped onto the 0-4 scale.
type OrdinalPoint struct {
	Time    time.Time            `json:"time"`
	Level   model.IntensityLevel `json:"level"`
	Ordinal int                  `json:"ordinal"`
}

// Bucket is the average delay attributed to one urgency class.
type Bucket struct {
	Urgency Urgency `json:"urgency"`
	Average float64 `json:"average"`
}

// Summary holds every chart-ready series derived from one EventCollection.
type Summary struct {
	DelaySeries     []TimePoint    `json:"delaySeries"`
	UrgencyBuckets  []Bucket       `json:"urgencyBuckets"` // nil when there are no completions
	Delays          []float64      `json:"delays"`
	IntensitySeries []OrdinalPoint `json:"intensitySeries"`
	MeanDelay       float64        `json:"meanDelay"`
}

// HasCompletions reports whether any completion-derived series is populated.
func (s *Summary) HasCompletions() bool {
	return s != nil && len(s.Delays) > 0
}

// HasIntensity reports whether the intensity trend is populated.
func (s *Summary) HasIntensity() bool {
	return s != nil && len(s.IntensitySeries) > 0
}

// Aggregate derives all series from events. Completions and intensity
// snapshots are derived independently, in collection order.
func Aggregate(events *model.EventCollection) *Summary {
	completions := events.Completions()
	intensities := events.Intensities()

	summary := &Summary{
		DelaySeries:     make([]TimePoint, 0, len(completions)),
		Delays:          make([]float64, 0, len(completions)),
		IntensitySeries: make([]OrdinalPoint, 0, len(intensities)),
	}

	for _, e := range completions {
		summary.DelaySeries = append(summary.DelaySeries, TimePoint{
			Time:  e.Timestamp,
			Task:  e.Task,
			Value: e.DelaySeconds,
		})
		summary.Delays = append(summary.Delays, e.DelaySeconds)
	}

	if mean, ok := Mean(summary.Delays); ok {
		summary.MeanDelay = mean
		summary.UrgencyBuckets = UrgencyBuckets(mean)
	}

	for _, e := range intensities {
		summary.IntensitySeries = append(summary.IntensitySeries, OrdinalPoint{
			Time:    e.Timestamp,
			Level:   e.Level,
			Ordinal: e.Level.Ordinal(),
		})
	}

	return summary
}

// UrgencyBuckets scales mean by the fixed urgency factors, high first.
func UrgencyBuckets(mean float64) []Bucket {
	buckets := make([]Bucket, 0, len(urgencyFactors))
	for _, uf := range urgencyFactors {
		buckets = append(buckets, Bucket{Urgency: uf.urgency, Average: mean * uf.factor})
	}
	return buckets
}

// Mean returns the arithmetic mean; ok is false for an empty input.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
