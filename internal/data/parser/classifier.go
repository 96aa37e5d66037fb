package parser

import (
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
)

// LineKind is the classification of a raw scheduler log line.
type LineKind int

const (
	LineIgnore LineKind = iota
	LineCompletion
	LineIntensity
)

func (k LineKind) String() string {
	switch k {
	case LineCompletion:
		return "completion"
	case LineIntensity:
		return "intensity"
	default:
		return "ignore"
	}
}

// Classify decides which record shape a line encodes by its marker.
// The completion marker is checked first.
func Classify(line string) LineKind {
	switch {
	case strings.Contains(line, model.MarkerCompletion):
		return LineCompletion
	case strings.Contains(line, model.MarkerIntensity):
		return LineIntensity
	default:
		return LineIgnore
	}
}
