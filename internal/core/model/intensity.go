package model

import "strings"

// IntensityLevel is the carbon intensity category reported by the scheduler.
type IntensityLevel string

const (
	IntensityLow      IntensityLevel = "low"
	IntensityModerate IntensityLevel = "moderate"
	IntensityHigh     IntensityLevel = "high"
	IntensityVeryHigh IntensityLevel = "very_high"
	IntensityUnknown  IntensityLevel = "unknown"
)

// ParseIntensityLevel normalises a logged category. The scheduler logs the
// upstream index verbatim, so "very high" arrives with a space.
func ParseIntensityLevel(category string) IntensityLevel {
	s := strings.ToLower(strings.TrimSpace(category))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch IntensityLevel(s) {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensityVeryHigh:
		return IntensityLevel(s)
	default:
		return IntensityUnknown
	}
}

// Ordinal maps a level onto the numeric axis of the trend chart. Unknown is 0.
func (l IntensityLevel) Ordinal() int {
	switch l {
	case IntensityLow:
		return 1
	case IntensityModerate:
		return 2
	case IntensityHigh:
		return 3
	case IntensityVeryHigh:
		return 4
	default:
		return 0
	}
}

// Label is the human readable name used on chart axes.
func (l IntensityLevel) Label() string {
	switch l {
	case IntensityLow:
		return "Low"
	case IntensityModerate:
		return "Moderate"
	case IntensityHigh:
		return "High"
	case IntensityVeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

// OrdinalLevels lists the plottable levels from lowest to highest.
var OrdinalLevels = []IntensityLevel{IntensityLow, IntensityModerate, IntensityHigh, IntensityVeryHigh}
