package mockapi

import (
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
)

// Level is one synthetic grid state served by the mock.
type Level struct {
	Index    string
	Forecast int
}

// Levels are cycled through in order, one per IntensityLevelPeriod.
var Levels = []Level{
	{Index: "low", Forecast: 80},
	{Index: "moderate", Forecast: 150},
	{Index: "high", Forecast: 260},
	{Index: "very high", Forecast: 380},
}

// LevelIndex is floor(unix / period) mod len(Levels).
func LevelIndex(now time.Time) int {
	period := int64(constants.IntensityLevelPeriod / time.Second)
	return int((now.Unix() / period) % int64(len(Levels)))
}

// LevelAt returns the level served at now.
func LevelAt(now time.Time) Level {
	return Levels[LevelIndex(now)]
}
