package mockapi

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-carbon-monitor/internal/core/constants"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// Responder serves synthetic intensity forecasts. It holds no state besides its clock.
type Responder struct {
	now func() time.Time
}

// NewResponder creates a Responder; a nil clock means time.Now.
func NewResponder(now func() time.Time) *Responder {
	if now == nil {
		now = time.Now
	}
	return &Responder{now: now}
}

// Forecast builds the response for instant t.
func Forecast(t time.Time) intensity.Response {
	level := LevelAt(t)
	utc := t.UTC()
	return intensity.Response{
		Data: []intensity.Window{{
			From: utc.Format(intensity.TimeLayout),
			To:   utc.Add(constants.IntensityWindowLength).Format(intensity.TimeLayout),
			Intensity: intensity.Reading{
				Forecast: level.Forecast,
				Actual:   level.Forecast,
				Index:    level.Index,
			},
		}},
	}
}

func (rs *Responder) intensityHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Forecast(rs.now()))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		util.LogError("Failed to encode response: " + err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
