package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// Parser turns a scheduler log into typed events.
type Parser struct {
	location *time.Location
}

// ParseStats counts what happened to every line of one read.
type ParseStats struct {
	Lines        int `json:"lines"`
	Ignored      int `json:"ignored"`
	Rejected     int `json:"rejected"`     // recognised but malformed lines
	BadTimestamp int `json:"badTimestamp"` // extracted but timestamp unparsable
	Accepted     int `json:"accepted"`
}

// ParseResult represents the result of parsing a single log file.
type ParseResult struct {
	File   string
	Events model.EventCollection
	Stats  ParseStats
}

// pendingEvent is an extracted record whose timestamp has not been parsed yet.
type pendingEvent struct {
	timestamp string
	event     model.LogEvent
}

// NewParser creates a Parser. Timestamps without a zone are read in loc;
// a nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// ParseFile reads the whole file at path. A missing file is not an error:
// it yields an empty collection.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogDebug(fmt.Sprintf("Log file not found, treating as empty: %s", path))
			return &ParseResult{File: path}, nil
		}
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer file.Close()

	result, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	result.File = path
	return result, nil
}

// Parse reads every line from r, keeping successfully extracted events in input order.
func (p *Parser) Parse(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	result := &ParseResult{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var pending []pendingEvent
	for scanner.Scan() {
		result.Stats.Lines++
		line := scanner.Text()

		ev, ok, recognised := extractLine(line)
		if !recognised {
			result.Stats.Ignored++
			continue
		}
		if !ok {
			result.Stats.Rejected++
			util.LogDebug(fmt.Sprintf("Skip malformed line %d", result.Stats.Lines))
			continue
		}
		pending = append(pending, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, pe := range pending {
		ts, err := dateparse.ParseIn(pe.timestamp, p.location)
		if err != nil {
			result.Stats.BadTimestamp++
			util.LogDebug(fmt.Sprintf("Skip event with unparsable timestamp %q - %v", pe.timestamp, err))
			continue
		}
		pe.event.Timestamp = ts
		result.Events.Append(pe.event)
	}
	result.Stats.Accepted = result.Events.Len()

	util.LogDebug(fmt.Sprintf("Parsed %d lines in %v: accepted %d, rejected %d, bad timestamps %d",
		result.Stats.Lines, time.Since(start), result.Stats.Accepted, result.Stats.Rejected, result.Stats.BadTimestamp))
	return result, nil
}

// extractLine classifies and extracts one line. recognised is false for lines
// carrying neither marker.
func extractLine(line string) (ev pendingEvent, ok bool, recognised bool) {
	switch Classify(line) {
	case LineCompletion:
		raw, ok := ExtractCompletion(line)
		if !ok {
			return pendingEvent{}, false, true
		}
		return pendingEvent{
			timestamp: raw.Timestamp,
			event:     model.NewCompletionEvent(time.Time{}, raw.Task, raw.Delay),
		}, true, true
	case LineIntensity:
		raw, ok := ExtractIntensity(line)
		if !ok {
			return pendingEvent{}, false, true
		}
		return pendingEvent{
			timestamp: raw.Timestamp,
			event:     model.NewIntensityEvent(time.Time{}, raw.Category),
		}, true, true
	default:
		return pendingEvent{}, false, false
	}
}
