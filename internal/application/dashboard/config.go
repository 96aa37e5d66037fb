package dashboard

import (
	"fmt"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// DashboardConfig contains configuration for the live dashboard
type DashboardConfig struct {
	// Scheduler log to read on every tick
	LogPath string

	// Refresh settings
	RefreshInterval time.Duration
	Watch           bool // extra tick when the log file is written

	// Display settings
	Timezone string

	// Optional live intensity header; empty disables it
	IntensityURL string

	// Interactive enables raw keyboard input (q quits, r refreshes)
	Interactive bool
}

// Validate fills defaults and checks the configuration
func (c *DashboardConfig) Validate() error {
	if c.LogPath == "" {
		c.LogPath = constants.DefaultSchedulerLog
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = constants.DefaultRefreshInterval
	}
	if c.RefreshInterval < constants.MinRefreshInterval {
		return fmt.Errorf("refresh interval %s is below the minimum of %s", c.RefreshInterval, constants.MinRefreshInterval)
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if _, err := util.LoadLocation(c.Timezone); err != nil {
		return err
	}
	return nil
}
