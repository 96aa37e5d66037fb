package aggregator

import (
	"testing"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func collection(events ...model.LogEvent) *model.EventCollection {
	c := &model.EventCollection{}
	for _, e := range events {
		c.Append(e)
	}
	return c
}

func TestAggregateEndToEnd(t *testing.T) {
	c := collection(
		model.NewCompletionEvent(base, "build", 12.5),
		model.NewIntensityEvent(base.Add(5*time.Minute), "moderate"),
	)

	s := Aggregate(c)
	require.Len(t, s.DelaySeries, 1)
	assert.Equal(t, "build", s.DelaySeries[0].Task)
	assert.Equal(t, 12.5, s.DelaySeries[0].Value)
	assert.Equal(t, []float64{12.5}, s.Delays)

	require.Len(t, s.IntensitySeries, 1)
	assert.Equal(t, 2, s.IntensitySeries[0].Ordinal)
	assert.Equal(t, model.IntensityModerate, s.IntensitySeries[0].Level)
	assert.True(t, s.HasCompletions())
	assert.True(t, s.HasIntensity())
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(&model.EventCollection{})
	assert.Empty(t, s.DelaySeries)
	assert.Empty(t, s.Delays)
	assert.Empty(t, s.IntensitySeries)
	assert.Nil(t, s.UrgencyBuckets)
	assert.False(t, s.HasCompletions())
	assert.False(t, s.HasIntensity())
}

func TestAggregateIntensityOnly(t *testing.T) {
	s := Aggregate(collection(
		model.NewIntensityEvent(base, "low"),
		model.NewIntensityEvent(base.Add(time.Minute), "extreme"),
		model.NewIntensityEvent(base.Add(2*time.Minute), "very high"),
	))

	assert.Nil(t, s.UrgencyBuckets, "urgency needs completions")
	assert.False(t, s.HasCompletions())
	require.Len(t, s.IntensitySeries, 3, "unknown categories are kept")
	assert.Equal(t, []int{1, 0, 4}, []int{
		s.IntensitySeries[0].Ordinal,
		s.IntensitySeries[1].Ordinal,
		s.IntensitySeries[2].Ordinal,
	})
}

func TestAggregateCompletionsOnly(t *testing.T) {
	s := Aggregate(collection(
		model.NewCompletionEvent(base, "a", 10),
		model.NewCompletionEvent(base.Add(time.Minute), "b", 30),
	))

	assert.False(t, s.HasIntensity())
	assert.Equal(t, 20.0, s.MeanDelay)
	require.Len(t, s.UrgencyBuckets, 3)
	assert.Equal(t, UrgencyHigh, s.UrgencyBuckets[0].Urgency)
	assert.InDelta(t, 12.0, s.UrgencyBuckets[0].Average, 1e-9)
	assert.Equal(t, UrgencyMedium, s.UrgencyBuckets[1].Urgency)
	assert.InDelta(t, 20.0, s.UrgencyBuckets[1].Average, 1e-9)
	assert.Equal(t, UrgencyLow, s.UrgencyBuckets[2].Urgency)
	assert.InDelta(t, 28.0, s.UrgencyBuckets[2].Average, 1e-9)
}

func TestAggregateKeepsCollectionOrder(t *testing.T) {
	s := Aggregate(collection(
		model.NewCompletionEvent(base.Add(time.Hour), "late", 1),
		model.NewIntensityEvent(base, "high"),
		model.NewCompletionEvent(base, "early", 2),
	))

	require.Len(t, s.DelaySeries, 2)
	assert.Equal(t, "late", s.DelaySeries[0].Task)
	assert.Equal(t, "early", s.DelaySeries[1].Task)
}

func TestUrgencyBucketsScaleLinearly(t *testing.T) {
	for _, m := range []float64{0, 1, 7.5, 1000} {
		buckets := UrgencyBuckets(m)
		require.Len(t, buckets, 3)
		assert.InDelta(t, 0.6*m, buckets[0].Average, 1e-9)
		assert.InDelta(t, 1.0*m, buckets[1].Average, 1e-9)
		assert.InDelta(t, 1.4*m, buckets[2].Average, 1e-9)
	}
}

func TestMean(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)

	m, ok := Mean([]float64{1, 2, 3, 4})
	assert.True(t, ok)
	assert.Equal(t, 2.5, m)
}
