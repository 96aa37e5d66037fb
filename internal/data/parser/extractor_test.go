package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{"[2024-01-01 10:00:00] [TASK] Completed: build | PID: 42 | Delay: 12 sec", LineCompletion},
		{"[2024-01-01 10:00:00] [INFO] Carbon Intensity Level: high | Forecast: 260 gCO2/kWh", LineIntensity},
		{"[2024-01-01 10:00:00] [TASK] Launched: build | PID: 42 | Delayed: no", LineIgnore},
		{"[2024-01-01 10:00:00] [SUMMARY] Completed tasks: 3", LineIgnore},
		{"", LineIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestExtractCompletion(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   RawCompletion
		wantOK bool
	}{
		{
			name:   "scheduler_format",
			line:   "[2024-01-01 10:00:00] [TASK] Completed: build | PID: 4242 | Delay: 12.5 sec",
			want:   RawCompletion{Timestamp: "2024-01-01 10:00:00", Task: "build", Delay: 12.5},
			wantOK: true,
		},
		{
			name:   "task_with_spaces",
			line:   "[2024-01-01 10:00:00] [TASK] Completed: make -j4 all | Delay: 0 sec",
			want:   RawCompletion{Timestamp: "2024-01-01 10:00:00", Task: "make -j4 all", Delay: 0},
			wantOK: true,
		},
		{
			name:   "no_trailing_unit",
			line:   "[2024-01-01 10:00:00] [TASK] Completed: sync | Delay: 300",
			want:   RawCompletion{Timestamp: "2024-01-01 10:00:00", Task: "sync", Delay: 300},
			wantOK: true,
		},
		{
			name:   "last_delay_marker_wins",
			line:   "[2024-01-01 10:00:00] [TASK] Completed: echo Delay: 9 | Delay: 4 sec",
			want:   RawCompletion{Timestamp: "2024-01-01 10:00:00", Task: "echo Delay: 9", Delay: 4},
			wantOK: true,
		},
		{
			name:   "empty_task_kept",
			line:   "[2024-01-01 10:00:00] [TASK] Completed:  | PID: 1 | Delay: 3 sec",
			want:   RawCompletion{Timestamp: "2024-01-01 10:00:00", Task: "", Delay: 3},
			wantOK: true,
		},
		{name: "missing_delay_marker", line: "[2024-01-01 10:00:00] [TASK] Completed: build | PID: 1"},
		{name: "missing_closing_bracket", line: "[2024-01-01 10:00:00 [TASK) Completed: build | Delay: 1 sec"},
		{name: "empty_delay", line: "[2024-01-01 10:00:00] [TASK] Completed: build | Delay:"},
		{name: "non_numeric_delay", line: "[2024-01-01 10:00:00] [TASK] Completed: build | Delay: soon"},
		{name: "negative_delay", line: "[2024-01-01 10:00:00] [TASK] Completed: build | Delay: -3 sec"},
		{name: "nan_delay", line: "[2024-01-01 10:00:00] [TASK] Completed: build | Delay: NaN sec"},
		{name: "truncated_write", line: "[2024-01-01 10:00:00] [TASK] Completed: bui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCompletion(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractIntensity(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   RawIntensity
		wantOK bool
	}{
		{
			name:   "scheduler_format",
			line:   "[2024-01-01 10:05:00] [INFO] Carbon Intensity Level: Moderate | Forecast: 150 gCO2/kWh",
			want:   RawIntensity{Timestamp: "2024-01-01 10:05:00", Category: "moderate"},
			wantOK: true,
		},
		{
			name:   "two_word_level",
			line:   "[2024-01-01 10:05:00] [INFO] Carbon Intensity Level: very high | Forecast: 380 gCO2/kWh",
			want:   RawIntensity{Timestamp: "2024-01-01 10:05:00", Category: "very high"},
			wantOK: true,
		},
		{
			name:   "no_separator",
			line:   "[2024-01-01 10:05:00] Carbon Intensity Level: LOW",
			want:   RawIntensity{Timestamp: "2024-01-01 10:05:00", Category: "low"},
			wantOK: true,
		},
		{name: "empty_level", line: "[2024-01-01 10:05:00] Carbon Intensity Level: | Forecast: 1"},
		{name: "missing_timestamp", line: "Carbon Intensity Level: low | Forecast: 80"},
		{name: "empty_brackets", line: "[] Carbon Intensity Level: low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractIntensity(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
