package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalCount(bins []Bin) int {
	n := 0
	for _, b := range bins {
		n += b.Count
	}
	return n
}

func TestHistogramEmpty(t *testing.T) {
	assert.Nil(t, Histogram(nil, 8))
	assert.Nil(t, Histogram([]float64{1}, 0))
}

func TestHistogramSpread(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	bins := Histogram(values, 8)

	require.Len(t, bins, 8)
	assert.Equal(t, len(values), totalCount(bins))
	assert.Equal(t, 0.0, bins[0].Lower)
	assert.Equal(t, 8.0, bins[7].Upper)
	// max lands in the closed last bin
	assert.Equal(t, 2, bins[7].Count)
	for i := 0; i < 7; i++ {
		assert.Equal(t, 1, bins[i].Count, "bin %d", i)
	}
}

func TestHistogramSingleValue(t *testing.T) {
	bins := Histogram([]float64{12.5, 12.5}, 8)

	require.Len(t, bins, 8)
	assert.Equal(t, 12.0, bins[0].Lower)
	assert.Equal(t, 13.0, bins[7].Upper)
	assert.Equal(t, 2, totalCount(bins))
	assert.Equal(t, 2, bins[4].Count)
}
