// Package intensity holds the wire format of the carbon intensity endpoint
// and a client for it.
package intensity

import (
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
)

// TimeLayout is the minute-resolution UTC layout used for window bounds.
const TimeLayout = "2006-01-02T15:04Z"

// Response is the body of GET /intensity.
type Response struct {
	Data []Window `json:"data"`
}

// Window is one forecast period.
type Window struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Intensity Reading `json:"intensity"`
}

// Reading carries the forecast and actual gCO2/kWh with the category index.
type Reading struct {
	Forecast int    `json:"forecast"`
	Actual   int    `json:"actual"`
	Index    string `json:"index"`
}

// Forecast is a decoded Window.
type Forecast struct {
	From     time.Time            `json:"from"`
	To       time.Time            `json:"to"`
	Forecast int                  `json:"forecast"`
	Actual   int                  `json:"actual"`
	Index    string               `json:"index"`
	Level    model.IntensityLevel `json:"level"`
}

// Decode converts the wire window, parsing bounds with TimeLayout.
func (w Window) Decode() (*Forecast, error) {
	from, err := time.Parse(TimeLayout, w.From)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(TimeLayout, w.To)
	if err != nil {
		return nil, err
	}
	return &Forecast{
		From:     from,
		To:       to,
		Forecast: w.Intensity.Forecast,
		Actual:   w.Intensity.Actual,
		Index:    w.Intensity.Index,
		Level:    model.ParseIntensityLevel(w.Intensity.Index),
	}, nil
}
