package display

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/presentation/layout"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// DisplayConfig contains display settings
type DisplayConfig struct {
	TimeFormat string       // "24h" or "12h"
	Layout     layout.Style // auto, grid, stacked or minimal
}

// TerminalDisplay is the RenderSink that draws snapshots on a terminal.
// Each Render clears the screen and redraws every panel.
type TerminalDisplay struct {
	config *DisplayConfig
	out    io.Writer
	sizer  func() *layout.Sizer

	mu                sync.Mutex
	inAlternateScreen bool
	lastLayout        string
	renders           int
}

// NewTerminalDisplay creates a display writing to stdout
func NewTerminalDisplay(config *DisplayConfig) *TerminalDisplay {
	return NewTerminalDisplayWithWriter(config, os.Stdout, layout.DetectSizer)
}

// NewTerminalDisplayWithWriter creates a display writing to out, measuring
// the drawing area with sizer before every render.
func NewTerminalDisplayWithWriter(config *DisplayConfig, out io.Writer, sizer func() *layout.Sizer) *TerminalDisplay {
	if config == nil {
		config = &DisplayConfig{}
	}
	if config.Layout == "" {
		config.Layout = layout.StyleAuto
	}
	return &TerminalDisplay{
		config: config,
		out:    out,
		sizer:  sizer,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if !td.inAlternateScreen {
		td.write(util.EnterAltScreen + util.ClearScreen + util.ClearScrollback + util.MoveCursorHome + util.HideCursor)
		td.inAlternateScreen = true
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()

	if td.inAlternateScreen {
		td.write(util.ClearScreen + util.MoveCursorHome + util.ShowCursor + util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

// ClearScreen clears the screen and homes the cursor
func (td *TerminalDisplay) ClearScreen() {
	td.mu.Lock()
	defer td.mu.Unlock()
	td.write(util.ClearScreen + util.MoveCursorHome)
}

// Render draws one snapshot. The whole frame is built in memory and
// written with a single Write so a half-drawn frame is never visible.
func (td *TerminalDisplay) Render(snap *dashboard.Snapshot) {
	td.mu.Lock()
	defer td.mu.Unlock()

	sizer := td.sizer()
	strategy := layout.GetLayoutStrategy(td.config.Layout, sizer)
	lines := strategy.Render(snap, layout.Param{Sizer: sizer, TimeFormat: td.config.TimeFormat})

	var frame strings.Builder
	if strategy.GetName() != td.lastLayout {
		// the previous layout may have drawn below the new one
		frame.WriteString(util.ClearScreen)
		td.lastLayout = strategy.GetName()
	}
	frame.WriteString(util.MoveCursorHome)
	for _, line := range lines {
		frame.WriteString(line)
		frame.WriteString(util.ClearLineFromCursor)
		frame.WriteString("\n")
	}
	frame.WriteString(util.ClearBelowCursor)

	td.write(frame.String())
	td.renders++
}

// Renders reports how many frames have been drawn
func (td *TerminalDisplay) Renders() int {
	td.mu.Lock()
	defer td.mu.Unlock()
	return td.renders
}

func (td *TerminalDisplay) write(s string) {
	w := bufio.NewWriter(td.out)
	if _, err := w.WriteString(s); err != nil {
		util.LogDebugf("Terminal write failed: %v", err)
		return
	}
	if err := w.Flush(); err != nil {
		util.LogDebugf("Terminal flush failed: %v", err)
	}
}
