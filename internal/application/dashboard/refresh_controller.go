package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/emissions"
	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/data/aggregator"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// liveFetchTimeout bounds the optional intensity request made on each tick
const liveFetchTimeout = 2 * time.Second

// RefreshController performs one refresh tick: read, simulate, aggregate
// and build the snapshot. It keeps no state between ticks.
type RefreshController struct {
	source SourceInspector
	reader EventReader
	live   IntensityFetcher
	now    func() time.Time

	refreshMutex sync.Mutex // Prevent concurrent refreshes
}

// NewRefreshController creates a new RefreshController instance. live may be nil.
func NewRefreshController(source SourceInspector, reader EventReader, live IntensityFetcher) *RefreshController {
	return &RefreshController{
		source: source,
		reader: reader,
		live:   live,
		now:    func() time.Time { return util.GetTimeProvider().Now() },
	}
}

// Refresh runs one tick. Read failures never abort the tick: they degrade
// to an empty collection so the sink still gets a snapshot.
func (rc *RefreshController) Refresh(ctx context.Context) *Snapshot {
	rc.refreshMutex.Lock()
	defer rc.refreshMutex.Unlock()

	start := time.Now()

	info, err := rc.source.Stat()
	if err != nil {
		util.LogWarn("Failed to stat log source", util.F("path", rc.source.Path()), util.F("error", err.Error()))
	}

	events := &model.EventCollection{}
	result, err := rc.reader.ParseFile(rc.source.Path())
	if err != nil {
		util.LogWarn("Failed to read log, rendering empty dashboard", util.F("path", rc.source.Path()), util.F("error", err.Error()))
	} else {
		events = &result.Events
	}

	estimate := emissions.Simulate(events.Delays())
	summary := aggregator.Aggregate(events)

	snap := BuildSnapshot(rc.now(), events, estimate, summary)
	snap.Source = info
	if result != nil {
		snap.Stats = result.Stats
	}

	if rc.live != nil {
		rc.fetchLive(ctx, snap)
	}

	util.LogDebug(fmt.Sprintf("Refresh completed in %v: %d events (%d completions, %d intensity), %d rejected",
		time.Since(start), snap.EventCount, snap.Completions, snap.Intensities, snap.Stats.Rejected+snap.Stats.BadTimestamp))

	return snap
}

func (rc *RefreshController) fetchLive(ctx context.Context, snap *Snapshot) {
	ctx, cancel := context.WithTimeout(ctx, liveFetchTimeout)
	defer cancel()

	forecast, err := rc.live.Current(ctx)
	if err != nil {
		snap.LiveErr = err.Error()
		util.LogDebug(fmt.Sprintf("Live intensity unavailable: %v", err))
		return
	}
	snap.Live = forecast
}
