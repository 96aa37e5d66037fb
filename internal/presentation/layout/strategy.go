package layout

import (
	"fmt"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
)

// Style selects a layout strategy
type Style string

const (
	StyleAuto    Style = "auto"
	StyleGrid    Style = "grid"
	StyleStacked Style = "stacked"
	StyleMinimal Style = "minimal"
)

// Param carries per-render settings
type Param struct {
	Sizer      *Sizer
	TimeFormat string // "24h" or "12h"
}

// LayoutStrategy defines the interface for different layout rendering strategies
type LayoutStrategy interface {
	// Render lays out the snapshot as terminal lines, none wider than the sizer
	Render(snapshot *dashboard.Snapshot, param Param) []string
	GetName() string
}

// ParseStyle validates a style name
func ParseStyle(name string) (Style, error) {
	switch s := Style(name); s {
	case StyleAuto, StyleGrid, StyleStacked, StyleMinimal:
		return s, nil
	case "":
		return StyleAuto, nil
	default:
		return "", fmt.Errorf("unknown layout %q (valid: auto, grid, stacked, minimal)", name)
	}
}

// GetLayoutStrategy returns the strategy for style. Auto picks the grid
// when the terminal is wide enough and stacked panels otherwise.
func GetLayoutStrategy(style Style, sizer *Sizer) LayoutStrategy {
	switch style {
	case StyleGrid:
		return &GridLayoutStrategy{}
	case StyleStacked:
		return &StackedLayoutStrategy{}
	case StyleMinimal:
		return &MinimalLayoutStrategy{}
	}

	if sizer != nil && !sizer.UseGrid() {
		return &StackedLayoutStrategy{}
	}
	return &GridLayoutStrategy{}
}
