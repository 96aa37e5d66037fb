package commands

import (
	"bytes"
	"encoding/csv"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-carbon-monitor/internal/config"
	"github.com/penwyp/go-carbon-monitor/internal/mockapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulerLog = `[2024-05-01 10:00:00] [INFO] Carbon Intensity Level: moderate | Forecast: 150 gCO2/kWh
[2024-05-01 10:00:05] [TASK] Completed: backup | PID: 101 | Delay: 30 sec
[2024-05-01 10:02:00] [INFO] Carbon Intensity Level: high | Forecast: 260 gCO2/kWh
[2024-05-01 10:02:10] [TASK] Completed: report | PID: 102 | Delay: 90 sec
`

// execute runs the root command with args, keeping logs under a temp HOME
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of the shared command tree to its default
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeSchedulerLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduler.log")
	require.NoError(t, os.WriteFile(path, []byte(schedulerLog), 0644))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	relative, err := filepath.Abs("relative/path")
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"home_directory_expansion", "~/test/path", filepath.Join(home, "test/path")},
		{"absolute_path_unchanged", "/absolute/path", "/absolute/path"},
		{"relative_path_converted_to_absolute", "relative/path", relative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
	assert.Empty(t, expandConfigPath(""))
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureDir(testDir))
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		flag         string
		defaultValue string
		shorthand    string
	}{
		{"log", "/tmp/scheduler.log", ""},
		{"refresh-rate", "10", ""},
		{"watch", "false", "w"},
		{"timezone", "Local", ""},
		{"intensity-url", "", ""},
		{"layout", "auto", ""},
		{"time-format", "24h", ""},
		{"config", "", ""},
		{"debug", "false", ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.flag)
			if flag == nil {
				flag = rootCmd.PersistentFlags().Lookup(tt.flag)
			}
			require.NotNil(t, flag)
			assert.Equal(t, tt.defaultValue, flag.DefValue)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"report", "mock-api", "intensity"})
}

func TestMergeSettings(t *testing.T) {
	flags := settings{
		LogPath:         "/tmp/scheduler.log",
		RefreshInterval: 10 * time.Second,
		Timezone:        "Local",
		MockAddr:        "127.0.0.1:5000",
	}
	enabled := true
	file := &config.File{
		LogPath:         "/var/log/scheduler.log",
		RefreshInterval: config.Duration(30 * time.Second),
		Timezone:        "UTC",
		Watch:           &enabled,
		IntensityURL:    "http://example.test/intensity",
		MockAddr:        "0.0.0.0:9000",
	}

	t.Run("file_fills_unset_flags", func(t *testing.T) {
		merged := mergeSettings(flags, file, func(string) bool { return false })
		assert.Equal(t, "/var/log/scheduler.log", merged.LogPath)
		assert.Equal(t, 30*time.Second, merged.RefreshInterval)
		assert.Equal(t, "UTC", merged.Timezone)
		assert.True(t, merged.Watch)
		assert.Equal(t, "http://example.test/intensity", merged.IntensityURL)
		assert.Equal(t, "0.0.0.0:9000", merged.MockAddr)
	})

	t.Run("changed_flags_win", func(t *testing.T) {
		merged := mergeSettings(flags, file, func(name string) bool { return name == "log" || name == "watch" })
		assert.Equal(t, "/tmp/scheduler.log", merged.LogPath)
		assert.False(t, merged.Watch)
		assert.Equal(t, "UTC", merged.Timezone)
	})

	t.Run("no_file", func(t *testing.T) {
		assert.Equal(t, flags, mergeSettings(flags, nil, func(string) bool { return false }))
	})

	t.Run("empty_file_keeps_defaults", func(t *testing.T) {
		assert.Equal(t, flags, mergeSettings(flags, &config.File{}, func(string) bool { return false }))
	})
}

func TestReportJSON(t *testing.T) {
	out, err := execute(t, "report", "--log", writeSchedulerLog(t), "--timezone", "UTC", "--output", "json")
	require.NoError(t, err)

	var report struct {
		Tasks []struct {
			Task string `json:"task"`
		} `json:"tasks"`
		Totals     map[string]float64 `json:"totals"`
		TotalDelay float64            `json:"totalDelaySeconds"`
	}
	require.NoError(t, sonic.Unmarshal([]byte(out), &report))
	require.Len(t, report.Tasks, 2)
	assert.Equal(t, "backup", report.Tasks[0].Task)
	assert.Equal(t, 120.0, report.TotalDelay)
	assert.InDelta(t, 6000.0, report.Totals["low"], 1e-9)
}

func TestReportCSV(t *testing.T) {
	out, err := execute(t, "report", "--log", writeSchedulerLog(t), "--timezone", "UTC", "--output", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-05-01 10:02:10", records[2][0])
}

func TestReportMissingLog(t *testing.T) {
	out, err := execute(t, "report", "--log", filepath.Join(t.TempDir(), "absent.log"), "--timezone", "UTC", "--output", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "No data to summarize")
}

func TestReportFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "monitor.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log: "+writeSchedulerLog(t)+"\ntimezone: UTC\n"), 0644))

	out, err := execute(t, "report", "--config", cfgPath, "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "backup")
	assert.Contains(t, out, "2 tasks")
}

func TestReportErrors(t *testing.T) {
	_, err := execute(t, "report", "--output", "xml")
	assert.ErrorContains(t, err, "unsupported output format")

	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour: green\n"), 0644))
	_, err = execute(t, "report", "--config", cfgPath, "--output", "table")
	assert.Error(t, err)
}

func TestIntensityCommand(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 4, 0, 0, time.UTC) // index 2: high
	server := httptest.NewServer(mockapi.NewHandler(mockapi.NewResponder(func() time.Time { return now }), &bytes.Buffer{}))
	defer server.Close()

	out, err := execute(t, "intensity", "--url", server.URL+"/intensity")
	require.NoError(t, err)
	assert.Contains(t, out, "Window:   2024-05-01T10:04Z to 2024-05-01T10:14Z")
	assert.Contains(t, out, "Index:    high (High)")
	assert.Contains(t, out, "Forecast: 260 gCO2/kWh")

	out, err = execute(t, "intensity", "--url", server.URL+"/intensity", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"forecast": 260`)
}

func TestIntensityCommandUnreachable(t *testing.T) {
	server := httptest.NewServer(nil)
	url := server.URL
	server.Close()

	_, err := execute(t, "intensity", "--url", url+"/intensity", "--timeout", "500ms")
	assert.ErrorContains(t, err, "failed to query")
}
