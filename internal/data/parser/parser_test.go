package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `[2024-01-01 09:59:58] [INFO] REST scheduler started on port 8080
[2024-01-01 10:00:00] [TASK] Completed: build | PID: 101 | Delay: 12.5 sec
[2024-01-01 10:05:00] [INFO] Carbon Intensity Level: moderate | Forecast: 150 gCO2/kWh
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduler.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewParserDefaultsToUTC(t *testing.T) {
	p := NewParser(nil)
	assert.Equal(t, time.UTC, p.location)
}

func TestParseFileEndToEnd(t *testing.T) {
	path := writeLog(t, sampleLog)

	result, err := NewParser(time.UTC).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.File)
	require.Equal(t, 2, result.Events.Len())

	completion := result.Events.Events[0]
	assert.Equal(t, model.EventCompletion, completion.Kind)
	assert.Equal(t, "build", completion.Task)
	assert.Equal(t, 12.5, completion.DelaySeconds)
	assert.True(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Equal(completion.Timestamp))

	intensity := result.Events.Events[1]
	assert.Equal(t, model.EventIntensity, intensity.Kind)
	assert.Equal(t, model.IntensityModerate, intensity.Level)
	assert.Equal(t, 2, intensity.Level.Ordinal())
	assert.True(t, time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC).Equal(intensity.Timestamp))

	assert.Equal(t, ParseStats{Lines: 3, Ignored: 1, Accepted: 2}, result.Stats)
}

func TestParseFileMissing(t *testing.T) {
	result, err := NewParser(time.UTC).ParseFile(filepath.Join(t.TempDir(), "absent.log"))
	require.NoError(t, err)
	assert.True(t, result.Events.Empty())
}

func TestParseFileEmpty(t *testing.T) {
	result, err := NewParser(time.UTC).ParseFile(writeLog(t, ""))
	require.NoError(t, err)
	assert.True(t, result.Events.Empty())
	assert.Equal(t, 0, result.Stats.Lines)
}

func TestParseNoValidRecords(t *testing.T) {
	content := strings.Join([]string{
		"[2024-01-01 10:00:00] [TASK] Launched: build | PID: 1 | Delayed: no",
		"garbage",
		"[2024-01-01 10:00:00] [TASK] Completed: build | PID: 1",
		"[TASK] Completed: build | Delay: 4 sec",
	}, "\n")

	result, err := NewParser(time.UTC).Parse(strings.NewReader(content))
	require.NoError(t, err)
	assert.True(t, result.Events.Empty())
	assert.Equal(t, 2, result.Stats.Ignored)
	assert.Equal(t, 1, result.Stats.Rejected)
	// without a timestamp prefix the bracket text is "TASK", which does not parse
	assert.Equal(t, 1, result.Stats.BadTimestamp)
}

func TestParseDropsUnparsableTimestamps(t *testing.T) {
	content := strings.Join([]string{
		"[INFO] Carbon Intensity Level: low | Forecast: 80 gCO2/kWh",
		"[2024-01-01 10:00:00] [TASK] Completed: build | Delay: 1 sec",
	}, "\n")

	result, err := NewParser(time.UTC).Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, 1, result.Events.Len())
	assert.Equal(t, "build", result.Events.Events[0].Task)
	assert.Equal(t, 1, result.Stats.BadTimestamp)
	for _, e := range result.Events.Events {
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestParseKeepsFileOrder(t *testing.T) {
	content := strings.Join([]string{
		"[2024-01-01 12:00:00] [TASK] Completed: late | Delay: 3 sec",
		"[2024-01-01 08:00:00] [TASK] Completed: early | Delay: 1 sec",
		"[2024-01-01 09:00:00] [INFO] Carbon Intensity Level: very high | Forecast: 380 gCO2/kWh",
	}, "\n")

	result, err := NewParser(time.UTC).Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, 3, result.Events.Len())
	assert.Equal(t, "late", result.Events.Events[0].Task)
	assert.Equal(t, "early", result.Events.Events[1].Task)
	assert.Equal(t, model.IntensityVeryHigh, result.Events.Events[2].Level)
}

func TestParseTruncatedLastLine(t *testing.T) {
	content := sampleLog + "[2024-01-01 10:06:00] [TASK] Completed: dep"

	result, err := NewParser(time.UTC).Parse(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Events.Len())
	assert.Equal(t, 1, result.Stats.Rejected)
}

func TestParseFileIdempotent(t *testing.T) {
	path := writeLog(t, sampleLog)
	p := NewParser(time.UTC)

	first, err := p.ParseFile(path)
	require.NoError(t, err)
	second, err := p.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestParseHonoursLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	content := "[2024-01-01 10:00:00] [TASK] Completed: build | Delay: 1 sec"

	result, err := NewParser(loc).Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, 1, result.Events.Len())
	assert.True(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC).Equal(result.Events.Events[0].Timestamp))
}

func TestParseGeneratedSchedulerLog(t *testing.T) {
	start := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	gen := fixtures.NewSchedulerLogGenerator(t.TempDir()).
		GenerateSteadyStream(start, 12).
		Noise(start.Add(time.Hour), "cleanup").
		Raw("[2024-03-10 09:30:00] [TASK] Completed: trunc")
	path, err := gen.WriteFile("scheduler.log")
	require.NoError(t, err)

	result, err := NewParser(time.UTC).ParseFile(path)
	require.NoError(t, err)

	completions := result.Events.Completions()
	intensities := result.Events.Intensities()
	require.Len(t, completions, 12)
	require.Len(t, intensities, 3)

	assert.Equal(t, "job-000", completions[0].Task)
	assert.Equal(t, 0.0, completions[0].DelaySeconds)
	assert.Equal(t, 120.0, completions[4].DelaySeconds)
	assert.Equal(t, []model.IntensityLevel{model.IntensityLow, model.IntensityModerate, model.IntensityHigh},
		[]model.IntensityLevel{intensities[0].Level, intensities[1].Level, intensities[2].Level})

	assert.Equal(t, 6, result.Stats.Ignored)
	assert.Equal(t, 1, result.Stats.Rejected)
	assert.Equal(t, 15, result.Stats.Accepted)
	assert.Equal(t, len(gen.Lines()), result.Stats.Lines)
}

func TestParseKeepsCompletionWithEmptyTask(t *testing.T) {
	result, err := NewParser(time.UTC).Parse(strings.NewReader(
		"[2024-01-01 10:00:00] [TASK] Completed:  | PID: 1 | Delay: 3 sec\n"))
	require.NoError(t, err)

	require.Equal(t, 1, result.Events.Len())
	assert.Equal(t, "", result.Events.Events[0].Task)
	assert.Equal(t, 3.0, result.Events.Events[0].DelaySeconds)
	assert.Equal(t, 0, result.Stats.Rejected)
}
