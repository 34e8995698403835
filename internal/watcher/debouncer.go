package watcher

import (
	"sync"
	"time"
)

const minDebounceWindow = 10 * time.Millisecond

// Debouncer coalesces events per path and hands them out as one batch once no
// new event has arrived for window, or as soon as maxBatch distinct paths are
// pending. Batches are delivered on C so the consumer handles them serially.
type Debouncer struct {
	window   time.Duration
	maxBatch int
	events   map[string]FileEvent
	mu       sync.Mutex
	timer    *time.Timer
	out      chan []FileEvent
	stopped  bool
}

func NewDebouncer(window time.Duration, maxBatch int) *Debouncer {
	if maxBatch <= 0 {
		maxBatch = 1
	}
	if window < minDebounceWindow {
		window = minDebounceWindow
	}
	return &Debouncer{
		window:   window,
		maxBatch: maxBatch,
		events:   make(map[string]FileEvent),
		out:      make(chan []FileEvent, 1),
	}
}

func (d *Debouncer) C() <-chan []FileEvent {
	return d.out
}

func (d *Debouncer) Add(event FileEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.events[event.Path] = event

	if len(d.events) >= d.maxBatch {
		d.flushLocked()
		return
	}

	d.armLocked()
}

func (d *Debouncer) armLocked() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if !d.stopped {
			d.flushLocked()
		}
	})
}

// flushLocked keeps the events pending and re-arms when the consumer has not
// taken the previous batch yet.
func (d *Debouncer) flushLocked() {
	if len(d.events) == 0 {
		return
	}

	batch := make([]FileEvent, 0, len(d.events))
	for _, event := range d.events {
		batch = append(batch, event)
	}

	select {
	case d.out <- batch:
		d.events = make(map[string]FileEvent)
		if d.timer != nil {
			d.timer.Stop()
			d.timer = nil
		}
	default:
		d.armLocked()
	}
}

// Stop discards pending events and ignores later ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.events = make(map[string]FileEvent)
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
