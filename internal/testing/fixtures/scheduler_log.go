package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the timestamp format the scheduler writes between brackets.
const TimestampLayout = "2006-01-02 15:04:05"

// Completion describes a finished task line.
type Completion struct {
	Time  time.Time
	Task  string
	PID   int
	Delay float64
}

// Reading describes a carbon intensity line.
type Reading struct {
	Time     time.Time
	Level    string
	Forecast int
}

// SchedulerLogGenerator builds scheduler log files in the line shapes the
// scheduler daemon emits.
type SchedulerLogGenerator struct {
	baseDir string
	lines   []string
}

// NewSchedulerLogGenerator creates a generator writing into baseDir
func NewSchedulerLogGenerator(baseDir string) *SchedulerLogGenerator {
	return &SchedulerLogGenerator{
		baseDir: baseDir,
	}
}

func stamp(t time.Time) string {
	return "[" + t.Format(TimestampLayout) + "]"
}

// Completed appends a "[TASK] Completed" line.
func (g *SchedulerLogGenerator) Completed(c Completion) *SchedulerLogGenerator {
	g.lines = append(g.lines, fmt.Sprintf("%s [TASK] Completed: %s | PID: %d | Delay: %.0f sec",
		stamp(c.Time), c.Task, c.PID, c.Delay))
	return g
}

// Intensity appends a "Carbon Intensity Level" line.
func (g *SchedulerLogGenerator) Intensity(r Reading) *SchedulerLogGenerator {
	g.lines = append(g.lines, fmt.Sprintf("%s [INFO] Carbon Intensity Level: %s | Forecast: %d gCO2/kWh",
		stamp(r.Time), r.Level, r.Forecast))
	return g
}

// Noise appends the lines the dashboard must ignore: launch, deferral,
// API failure and summary records.
func (g *SchedulerLogGenerator) Noise(at time.Time, task string) *SchedulerLogGenerator {
	ts := stamp(at)
	g.lines = append(g.lines,
		fmt.Sprintf("%s [INFO] Received and delayed (high carbon): %s | urgency=low", ts, task),
		fmt.Sprintf("%s [INFO] Deferred due to high carbon: %s", ts, task),
		fmt.Sprintf("%s [TASK] Launched: %s | PID: 4242 | Delayed: yes", ts, task),
		fmt.Sprintf("%s [ERROR] Carbon API request failed: Couldn't connect to server", ts),
		fmt.Sprintf("%s [SUMMARY] Completed tasks: 1", ts),
		fmt.Sprintf("%s [SUMMARY] Average delay (sec): 0.00", ts),
	)
	return g
}

// Raw appends an arbitrary line, e.g. a truncated or garbled record.
func (g *SchedulerLogGenerator) Raw(line string) *SchedulerLogGenerator {
	g.lines = append(g.lines, line)
	return g
}

// GenerateSteadyStream appends n tasks, one per minute from start, with an
// intensity reading every fourth minute cycling through the four levels.
func (g *SchedulerLogGenerator) GenerateSteadyStream(start time.Time, n int) *SchedulerLogGenerator {
	levels := []Reading{
		{Level: "Low", Forecast: 80},
		{Level: "Moderate", Forecast: 150},
		{Level: "High", Forecast: 260},
		{Level: "Very High", Forecast: 380},
	}
	for i := 0; i < n; i++ {
		at := start.Add(time.Duration(i) * time.Minute)
		if i%4 == 0 {
			r := levels[(i/4)%len(levels)]
			r.Time = at
			g.Intensity(r)
		}
		g.Completed(Completion{
			Time:  at.Add(30 * time.Second),
			Task:  fmt.Sprintf("job-%03d", i),
			PID:   1000 + i,
			Delay: float64((i % 5) * 30),
		})
	}
	return g
}

// Lines returns the lines appended so far.
func (g *SchedulerLogGenerator) Lines() []string {
	return append([]string(nil), g.lines...)
}

// String renders the log content, newline terminated.
func (g *SchedulerLogGenerator) String() string {
	if len(g.lines) == 0 {
		return ""
	}
	return strings.Join(g.lines, "\n") + "\n"
}

// WriteFile writes the accumulated log to name under the base directory and
// returns the full path.
func (g *SchedulerLogGenerator) WriteFile(name string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name)
	if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Append writes the accumulated lines to the end of an existing log, the way
// the scheduler keeps appending while the dashboard is running.
func (g *SchedulerLogGenerator) Append(path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(g.String())
	return err
}

// Reset drops the accumulated lines.
func (g *SchedulerLogGenerator) Reset() {
	g.lines = nil
}

// GetBaseDir returns the base directory for generated logs
func (g *SchedulerLogGenerator) GetBaseDir() string {
	return g.baseDir
}
