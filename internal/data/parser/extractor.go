package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
)

// RawCompletion holds the fields of a completion line before timestamp parsing.
type RawCompletion struct {
	Timestamp string
	Task      string
	Delay     float64
}

// RawIntensity holds the fields of an intensity line before timestamp parsing.
type RawIntensity struct {
	Timestamp string
	Category  string
}

// ExtractCompletion pulls timestamp, task and delay out of a completion line.
// ok is false if the timestamp or delay is missing or malformed. An empty
// task name is kept.
func ExtractCompletion(line string) (RawCompletion, bool) {
	ts, ok := extractTimestamp(line)
	if !ok {
		return RawCompletion{}, false
	}

	task, ok := fieldAfter(line, model.FieldCompleted)
	if !ok {
		return RawCompletion{}, false
	}

	// The delay is read after the last marker so a task name containing
	// "Delay:" cannot shadow the real value.
	idx := strings.LastIndex(line, model.FieldDelay)
	if idx < 0 {
		return RawCompletion{}, false
	}
	tokens := strings.Fields(line[idx+len(model.FieldDelay):])
	if len(tokens) == 0 {
		return RawCompletion{}, false
	}
	delay, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil || delay < 0 || math.IsNaN(delay) || math.IsInf(delay, 0) {
		return RawCompletion{}, false
	}

	return RawCompletion{Timestamp: ts, Task: task, Delay: delay}, true
}

// ExtractIntensity pulls timestamp and lower-cased category out of an intensity line.
func ExtractIntensity(line string) (RawIntensity, bool) {
	ts, ok := extractTimestamp(line)
	if !ok {
		return RawIntensity{}, false
	}

	category, ok := fieldAfter(line, model.FieldLevel)
	if !ok || category == "" {
		return RawIntensity{}, false
	}

	return RawIntensity{Timestamp: ts, Category: strings.ToLower(category)}, true
}

// extractTimestamp returns the text between the first '[' and the first ']'.
func extractTimestamp(line string) (string, bool) {
	open := strings.IndexByte(line, '[')
	end := strings.IndexByte(line, ']')
	if open < 0 || end < 0 || end < open {
		return "", false
	}
	ts := strings.TrimSpace(line[open+1 : end])
	if ts == "" {
		return "", false
	}
	return ts, true
}

// fieldAfter returns the trimmed text following the first occurrence of
// marker, up to the next field separator or end of line.
func fieldAfter(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	rest := line[idx+len(marker):]
	if sep := strings.Index(rest, model.FieldSeparator); sep >= 0 {
		rest = rest[:sep]
	}
	return strings.TrimSpace(rest), true
}
