package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		expected string
	}{
		{name: "zero", input: 0, decimals: 0, expected: "0"},
		{name: "hundreds", input: 999, decimals: 0, expected: "999"},
		{name: "thousands", input: 1437.5, decimals: 1, expected: "1,437.5"},
		{name: "millions", input: 1234567, decimals: 0, expected: "1,234,567"},
		{name: "negative", input: -4500, decimals: 2, expected: "-4,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input, tt.decimals))
		})
	}
}

func TestFormatGrams(t *testing.T) {
	assert.Equal(t, "625.0 g", FormatGrams(625))
	assert.Equal(t, "9,999.0 g", FormatGrams(9999))
	assert.Equal(t, "12.5 kg", FormatGrams(12500))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "12.5s", FormatSeconds(12.5))
	assert.Equal(t, "2m 5s", FormatSeconds(125))
	assert.Equal(t, "1h 1m", FormatSeconds(3660))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "10s", FormatDuration(10*time.Second))
	assert.Equal(t, "3h 0m", FormatDuration(3*time.Hour))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2.0 MB", FormatBytes(2*1024*1024))
}
