package model

// Markers written by the scheduler for the two record shapes the dashboard understands.
const (
	MarkerCompletion = "[TASK] Completed:"
	MarkerIntensity  = "Carbon Intensity Level:"
)

// Field markers inside a recognised record
const (
	FieldCompleted = "Completed:"
	FieldDelay     = "Delay:"
	FieldLevel     = "Level:"
	FieldSeparator = "|"
)
