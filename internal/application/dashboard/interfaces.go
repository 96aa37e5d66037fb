package dashboard

import (
	"context"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/data/parser"
	"github.com/penwyp/go-carbon-monitor/internal/data/source"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
)

// RenderSink receives one Snapshot per refresh tick
type RenderSink interface {
	// Render draws the snapshot, replacing whatever was drawn before
	Render(snapshot *Snapshot)
}

// ScreenController is implemented by sinks that own a full terminal screen
type ScreenController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
}

// EventReader reads the whole scheduler log into events
type EventReader interface {
	// ParseFile reads path; a missing file yields an empty result
	ParseFile(path string) (*parser.ParseResult, error)
}

// SourceInspector reports metadata about the log file
type SourceInspector interface {
	// Path returns the absolute path of the log
	Path() string
	// Stat reports existence, size and modification time
	Stat() (source.Info, error)
}

// IntensityFetcher retrieves the current carbon intensity window
type IntensityFetcher interface {
	// Current fetches and decodes the first forecast window
	Current(ctx context.Context) (*intensity.Forecast, error)
}

// InputHandler processes keyboard and other input events
type InputHandler interface {
	// Events returns a channel of keyboard events
	Events() <-chan KeyEvent
	// Close cleans up input handler resources
	Close() error
}

// FileMonitor watches for file changes
type FileMonitor interface {
	// Events returns a channel of file change events
	Events() <-chan model.FileEvent
	// Close stops monitoring and cleans up resources
	Close() error
}
