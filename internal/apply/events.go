package apply

import (
	"context"
	"sync"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// EventPaletteUpdated is dispatched after a palette has been applied.
const EventPaletteUpdated = "paletteUpdated"

// Event describes an applied palette.
type Event struct {
	Name    string
	Palette *colour.Palette

	// Files are the paths written, or that would have been written in a
	// dry run.
	Files  []string
	DryRun bool
}

// Listener receives dispatched events. Listeners run synchronously on the
// dispatching goroutine in subscription order.
type Listener func(ctx context.Context, ev Event)

type subscription struct {
	id int
	fn Listener
}

// Dispatcher fans events out to subscribed listeners. The zero value is
// ready to use and a Dispatcher is safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	nextID    int
	listeners []subscription
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once has no further effect.
func (d *Dispatcher) Subscribe(fn Listener) (unsubscribe func()) {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.listeners = append(d.listeners, subscription{id: id, fn: fn})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			for i, s := range d.listeners {
				if s.id == id {
					d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Len returns the number of subscribed listeners.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// Dispatch delivers ev to every listener subscribed when Dispatch was called.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	d.mu.RLock()
	listeners := make([]Listener, len(d.listeners))
	for i, s := range d.listeners {
		listeners[i] = s.fn
	}
	d.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, ev)
	}
}
