package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/core/model"
	"github.com/penwyp/go-carbon-monitor/internal/data/parser"
	"github.com/penwyp/go-carbon-monitor/internal/data/source"
	"github.com/penwyp/go-carbon-monitor/internal/intensity"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// Orchestrator drives the refresh loop. All ticks run on the goroutine that
// called Run, so they never overlap and the sink is only touched from there.
type Orchestrator struct {
	config      *DashboardConfig
	refreshCtrl *RefreshController
	sink        RenderSink

	// Optional inputs; nil disables them
	keyboard InputHandler
	watcher  FileMonitor

	ticks int
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *DashboardConfig, sink RenderSink) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := util.InitializeTimeProvider(config.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize timezone: %w", err)
	}

	logSource := source.NewLogSource(config.LogPath)
	logParser := parser.NewParser(util.GetTimeProvider().Location())

	var live IntensityFetcher
	if config.IntensityURL != "" {
		live = intensity.NewClient(config.IntensityURL, liveFetchTimeout)
	}

	return &Orchestrator{
		config:      config,
		refreshCtrl: NewRefreshController(logSource, logParser, live),
		sink:        sink,
	}, nil
}

// Snapshot runs a single refresh without rendering it
func (o *Orchestrator) Snapshot(ctx context.Context) *Snapshot {
	return o.refreshCtrl.Refresh(ctx)
}

// Run starts the orchestrator main loop. It renders immediately, then once
// per refresh interval until ctx is cancelled or the user quits.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting carbon dashboard",
		util.F("log", o.config.LogPath),
		util.F("interval", o.config.RefreshInterval.String()),
		util.F("watch", o.config.Watch))

	defer o.Close()

	if err := o.startInputs(); err != nil {
		return err
	}

	if screen, ok := o.sink.(ScreenController); ok {
		screen.EnterAlternateScreen()
		defer screen.ExitAlternateScreen()
	}

	var keyEvents <-chan KeyEvent
	if o.keyboard != nil {
		keyEvents = o.keyboard.Events()
	}
	fileEvents := o.fileEvents()

	o.tick(ctx)

	ticker := time.NewTicker(o.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down carbon dashboard", util.F("ticks", o.ticks))
			return nil

		case <-ticker.C:
			o.tick(ctx)

		case event, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			util.LogDebug(fmt.Sprintf("Log changed (%s), refreshing", event.Operation))
			o.tick(ctx)

		case key, ok := <-keyEvents:
			if !ok {
				keyEvents = nil
				continue
			}
			if o.handleKeyboard(ctx, key) {
				util.LogInfo("Quit requested", util.F("ticks", o.ticks))
				return nil
			}
		}
	}
}

// Close releases the keyboard and the file watcher
func (o *Orchestrator) Close() error {
	var errs []error
	if o.keyboard != nil {
		errs = append(errs, o.keyboard.Close())
		o.keyboard = nil
	}
	if o.watcher != nil {
		errs = append(errs, o.watcher.Close())
		o.watcher = nil
	}
	return errors.Join(errs...)
}

// Ticks reports how many refresh ticks have been rendered
func (o *Orchestrator) Ticks() int {
	return o.ticks
}

// tick performs one refresh and hands the snapshot to the sink exactly once
func (o *Orchestrator) tick(ctx context.Context) {
	snap := o.refreshCtrl.Refresh(ctx)
	o.sink.Render(snap)
	o.ticks++
}

// startInputs opens the keyboard and the file watcher when configured.
// A missing terminal only disables keys; a failed watch is an error.
func (o *Orchestrator) startInputs() error {
	if o.config.Interactive && o.keyboard == nil {
		keyboard, err := NewKeyboardReader()
		if err != nil {
			util.LogWarn("Keyboard input disabled", util.F("error", err.Error()))
		} else {
			o.keyboard = keyboard
		}
	}

	if o.config.Watch && o.watcher == nil {
		watcher, err := source.NewFileWatcher(o.refreshCtrl.source.Path())
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		o.watcher = watcher
	}
	return nil
}

func (o *Orchestrator) fileEvents() <-chan model.FileEvent {
	if o.watcher == nil {
		return nil
	}
	return o.watcher.Events()
}

// handleKeyboard handles keyboard events, returning true when the user quits
func (o *Orchestrator) handleKeyboard(ctx context.Context, event KeyEvent) bool {
	switch event.Type {
	case KeyChar:
		switch event.Key {
		case 'q', 'Q', keyCtrlC:
			return true
		case 'r', 'R':
			o.tick(ctx)
		}
	case KeyEscape:
		return true
	}
	return false
}
