package model

import "time"

// EventKind discriminates the two shapes a LogEvent can take.
type EventKind int

const (
	EventCompletion EventKind = iota
	EventIntensity
)

func (k EventKind) String() string {
	switch k {
	case EventCompletion:
		return "completed"
	case EventIntensity:
		return "intensity"
	default:
		return "unknown"
	}
}

// LogEvent is a single typed record reconstructed from the scheduler log.
// Task and DelaySeconds are set for completions, Level and Category for intensity snapshots.
type LogEvent struct {
	Kind         EventKind      `json:"kind"`
	Timestamp    time.Time      `json:"timestamp"`
	Task         string         `json:"task,omitempty"`
	DelaySeconds float64        `json:"delaySeconds,omitempty"`
	Level        IntensityLevel `json:"level,omitempty"`
	Category     string         `json:"category,omitempty"` // category text as logged, lower-cased
}

func NewCompletionEvent(ts time.Time, task string, delay float64) LogEvent {
	return LogEvent{
		Kind:         EventCompletion,
		Timestamp:    ts,
		Task:         task,
		DelaySeconds: delay,
	}
}

func NewIntensityEvent(ts time.Time, category string) LogEvent {
	return LogEvent{
		Kind:      EventIntensity,
		Timestamp: ts,
		Level:     ParseIntensityLevel(category),
		Category:  category,
	}
}

func (e LogEvent) IsCompletion() bool { return e.Kind == EventCompletion }

func (e LogEvent) IsIntensity() bool { return e.Kind == EventIntensity }

// EventCollection is the insertion-ordered set of events produced by one read of the log.
type EventCollection struct {
	Events []LogEvent `json:"events"`
}

func (c *EventCollection) Append(e LogEvent) {
	c.Events = append(c.Events, e)
}

func (c *EventCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Events)
}

func (c *EventCollection) Empty() bool {
	return c.Len() == 0
}

// Completions returns the completion events in collection order.
func (c *EventCollection) Completions() []LogEvent {
	return c.filter(LogEvent.IsCompletion)
}

// Intensities returns the intensity events in collection order.
func (c *EventCollection) Intensities() []LogEvent {
	return c.filter(LogEvent.IsIntensity)
}

// Delays returns the delay of every completion event in collection order.
func (c *EventCollection) Delays() []float64 {
	completions := c.Completions()
	delays := make([]float64, 0, len(completions))
	for _, e := range completions {
		delays = append(delays, e.DelaySeconds)
	}
	return delays
}

func (c *EventCollection) filter(keep func(LogEvent) bool) []LogEvent {
	if c == nil {
		return nil
	}
	out := make([]LogEvent, 0, len(c.Events))
	for _, e := range c.Events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// FileEvent is a change notification for a watched file
type FileEvent struct {
	Path      string
	Operation string
}
