package layout

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/application/dashboard"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// MinimalLayoutStrategy implements the single line status layout
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Dashboard"
}

func (s *MinimalLayoutStrategy) Render(snap *dashboard.Snapshot, param Param) []string {
	clock := s.FormatTime(snap.GeneratedAt, param)

	if snap.Empty() {
		return []string{util.PadRight(fmt.Sprintf("Carbon: %s | %s", dashboard.PlaceholderWaiting, clock), param.Sizer.Width)}
	}

	parts := []string{fmt.Sprintf("Carbon: 📋 %d tasks", snap.Completions)}
	if snap.Completions > 0 {
		parts = append(parts, "⏳ avg "+util.FormatSeconds(snap.MeanDelay))

		grams := make([]string, 0, len(snap.Emissions.Values))
		for _, v := range snap.Emissions.Values {
			grams = append(grams, util.FormatGrams(v.Grams))
		}
		parts = append(parts, "🏭 "+strings.Join(grams, "/"))
	}
	if n := len(snap.Intensity.Points); n > 0 {
		parts = append(parts, "⚡ "+snap.Intensity.Points[n-1].Level.Label())
	}
	if snap.Live != nil {
		parts = append(parts, fmt.Sprintf("🔌 %d gCO₂/kWh", snap.Live.Forecast))
	}
	parts = append(parts, clock)

	return []string{util.PadRight(strings.Join(parts, " | "), param.Sizer.Width)}
}
