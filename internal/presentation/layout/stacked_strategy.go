package layout

import (
	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
)

// StackedLayoutStrategy draws every panel at full width, one under another,
// for terminals too narrow for the grid.
type StackedLayoutStrategy struct {
	BaseStrategy
}

func (s *StackedLayoutStrategy) GetName() string {
	return "Stacked Dashboard"
}

func (s *StackedLayoutStrategy) Render(snap *dashboard.Snapshot, param Param) []string {
	lines := s.Header(snap, param)
	for _, p := range snap.Panels() {
		lines = append(lines, s.Panel(snap, p.ID, param.Sizer.Width, param)...)
	}
	return append(lines, s.Footer(snap, param)...)
}
