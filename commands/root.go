package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/config"
	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/presentation/display"
	"github.com/penwyp/go-carbon-monitor/internal/presentation/layout"
	"github.com/penwyp/go-carbon-monitor/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Shared input settings
	configPath   string
	logPath      string
	timezone     string
	intensityURL string

	// Dashboard related
	refreshRate int
	watch       bool
	layoutName  string
	timeFormat  string

	rootCmd = &cobra.Command{
		Use:   "go-carbon-monitor [flags]",
		Short: "Live carbon analytics for the green task scheduler",
		Long: `go-carbon-monitor reads the log written by the carbon-aware task scheduler and
shows a live terminal dashboard of simulated emissions, task delays and the
carbon intensity trend. The whole log is re-read on every refresh.

Examples:
  go-carbon-monitor                                  # Watch /tmp/scheduler.log every 10s
  go-carbon-monitor --log ./scheduler.log --watch    # Also refresh as soon as the log changes
  go-carbon-monitor --refresh-rate 5 --layout stacked
  go-carbon-monitor --intensity-url http://127.0.0.1:5000/intensity
  go-carbon-monitor report --output json             # One-shot report
  go-carbon-monitor mock-api                         # Serve a fake intensity endpoint`,
		RunE:         runDashboard,
		SilenceUsage: true,
	}
)

const defaultLogFile = "~/.go-carbon-monitor/logs/app.log"

func init() {
	// Input configuration
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML config file (flags override its values)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", constants.DefaultSchedulerLog,
		"Scheduler log file to read")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone of log timestamps and display (e.g., Europe/London, UTC)")
	rootCmd.PersistentFlags().StringVar(&intensityURL, "intensity-url", "",
		"Carbon intensity endpoint for the live header (empty disables it)")

	// Refresh configuration
	rootCmd.Flags().IntVar(&refreshRate, "refresh-rate", int(constants.DefaultRefreshInterval/time.Second),
		"Refresh interval in seconds")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Also refresh when the log file is written")

	// Display configuration
	rootCmd.Flags().StringVar(&layoutName, "layout", string(layout.StyleAuto),
		"Dashboard layout (auto, grid, stacked, minimal)")
	rootCmd.Flags().StringVar(&timeFormat, "time-format", "24h",
		"Time format (12h or 24h)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	setupLogging()

	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	style, err := layout.ParseStyle(layoutName)
	if err != nil {
		return err
	}
	if timeFormat != "12h" && timeFormat != "24h" {
		return fmt.Errorf("invalid time format '%s': must be either '12h' or '24h'", timeFormat)
	}

	cfg := s.dashboardConfig()
	cfg.Interactive = true

	termDisplay := display.NewTerminalDisplay(&display.DisplayConfig{
		TimeFormat: timeFormat,
		Layout:     style,
	})

	orchestrator, err := dashboard.NewOrchestrator(cfg, termDisplay)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// settings are the values shared by every subcommand after merging the
// config file under the command line flags.
type settings struct {
	LogPath         string
	RefreshInterval time.Duration
	Timezone        string
	Watch           bool
	IntensityURL    string
	MockAddr        string
}

func (s *settings) dashboardConfig() *dashboard.DashboardConfig {
	return &dashboard.DashboardConfig{
		LogPath:         expandPath(s.LogPath),
		RefreshInterval: s.RefreshInterval,
		Timezone:        s.Timezone,
		Watch:           s.Watch,
		IntensityURL:    s.IntensityURL,
	}
}

// resolveSettings loads --config and overlays the flags the user set
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	file, err := config.Load(expandConfigPath(configPath))
	if err != nil {
		return nil, err
	}

	flagValues := settings{
		LogPath:         logPath,
		RefreshInterval: time.Duration(refreshRate) * time.Second,
		Timezone:        timezone,
		Watch:           watch,
		IntensityURL:    intensityURL,
		MockAddr:        mockAddr,
	}

	merged := mergeSettings(flagValues, file, cmd.Flags().Changed)
	util.LogDebugf("Resolved settings: log=%s interval=%s timezone=%s watch=%t",
		merged.LogPath, merged.RefreshInterval, merged.Timezone, merged.Watch)
	return &merged, nil
}

// mergeSettings prefers a flag the user changed, then the config file, then
// the flag default.
func mergeSettings(flags settings, file *config.File, changed func(string) bool) settings {
	merged := flags
	if file == nil {
		return merged
	}

	if !changed("log") && file.LogPath != "" {
		merged.LogPath = file.LogPath
	}
	if !changed("refresh-rate") && file.RefreshInterval > 0 {
		merged.RefreshInterval = time.Duration(file.RefreshInterval)
	}
	if !changed("timezone") && file.Timezone != "" {
		merged.Timezone = file.Timezone
	}
	if !changed("watch") && file.Watch != nil {
		merged.Watch = *file.Watch
	}
	if !changed("intensity-url") && file.IntensityURL != "" {
		merged.IntensityURL = file.IntensityURL
	}
	if !changed("addr") && file.MockAddr != "" {
		merged.MockAddr = file.MockAddr
	}
	return merged
}

// Helper functions

func setupLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
	}
	util.InitLogger(logLevel, logFile, debug)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func expandConfigPath(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
