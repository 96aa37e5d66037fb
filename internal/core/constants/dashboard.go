package constants

import "time"

const (
	// Refresh cadence of the dashboard
	DefaultRefreshInterval = 10 * time.Second
	MinRefreshInterval     = 1 * time.Second

	// Default location of the scheduler log
	DefaultSchedulerLog = "/tmp/scheduler.log"

	// Histogram bins rendered for the delay distribution panel
	DelayHistogramBins = 8
)

// Mock intensity endpoint
const (
	IntensityLevelPeriod  = 120 * time.Second
	IntensityWindowLength = 600 * time.Second
	DefaultMockAddr       = "127.0.0.1:5000"
	DefaultIntensityURL   = "http://127.0.0.1:5000/intensity"
)
