package layout

import (
	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
)

const columnGap = 1

// GridLayoutStrategy arranges the panels as two rows of two with the
// intensity trend spanning the full width underneath.
type GridLayoutStrategy struct {
	BaseStrategy
}

func (s *GridLayoutStrategy) GetName() string {
	return "Grid Dashboard"
}

func (s *GridLayoutStrategy) Render(snap *dashboard.Snapshot, param Param) []string {
	width := param.Sizer.Width
	leftW, rightW := param.Sizer.ColumnWidths(columnGap)

	lines := s.Header(snap, param)
	lines = append(lines, s.JoinColumns(
		s.Panel(snap, dashboard.PanelEmissions, leftW, param),
		s.Panel(snap, dashboard.PanelDelayTrend, rightW, param),
		leftW, columnGap)...)
	lines = append(lines, s.JoinColumns(
		s.Panel(snap, dashboard.PanelUrgency, leftW, param),
		s.Panel(snap, dashboard.PanelHistogram, rightW, param),
		leftW, columnGap)...)
	lines = append(lines, s.Panel(snap, dashboard.PanelIntensity, width, param)...)
	lines = append(lines, s.Footer(snap, param)...)
	return lines
}
