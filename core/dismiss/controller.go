// ABOUTME: Outside-dismiss controller hides a viewer when the user interacts elsewhere
// ABOUTME: Consumes pointer and focus events while mounted and calls Dismiss on outside hits

// Package dismiss hides an article viewer when a pointer or focus event lands
// outside the viewer's bounds.
package dismiss

import (
	"context"
	"errors"
	"sync"

	"article-viewer-api/core/interfaces"
)

// EventKind is the kind of UI event forwarded to the controller
type EventKind string

const (
	PointerDown EventKind = "pointerdown"
	FocusIn     EventKind = "focusin"
)

// Event is a pointer or focus event at a point in page coordinates
type Event struct {
	Kind EventKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// Bounds is the rectangle the viewer occupies on the page
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point lies inside the rectangle, edges included.
// Empty bounds contain nothing.
func (b Bounds) Contains(x, y float64) bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Target is the viewer being watched
type Target interface {
	Visible() bool
	Dismiss() bool
}

var (
	// ErrNotMounted is returned when events are sent to an unmounted controller
	ErrNotMounted = errors.New("dismiss controller is not mounted")
)

const eventBuffer = 16

// Controller watches events for one viewer. It has no state of its own
// beyond the subscription opened by Mount and closed by Unmount.
type Controller struct {
	target Target
	logger interfaces.Logger

	mu      sync.RWMutex
	bounds  Bounds
	events  chan Event
	cancel  context.CancelFunc
	done    chan struct{}
	mounted bool
}

// NewController creates an unmounted controller for target
func NewController(target Target, bounds Bounds, logger interfaces.Logger) *Controller {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Controller{
		target: target,
		logger: logger,
		bounds: bounds,
	}
}

// SetBounds updates the viewer rectangle, e.g. after a layout change
func (c *Controller) SetBounds(b Bounds) {
	c.mu.Lock()
	c.bounds = b
	c.mu.Unlock()
}

// Mount starts consuming events. Mounting twice is a no-op.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mounted {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.events = make(chan Event, eventBuffer)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.mounted = true

	go c.loop(ctx, c.events, c.done)
}

// Unmount stops consuming events and waits for the loop to exit
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	c.cancel()
	done := c.done
	c.mu.Unlock()

	<-done
}

// Mounted reports whether the controller is consuming events
func (c *Controller) Mounted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mounted
}

// Dispatch queues an event for the mounted loop. Events arriving while the
// buffer is full are dropped.
func (c *Controller) Dispatch(e Event) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.mounted {
		return ErrNotMounted
	}

	select {
	case c.events <- e:
		return nil
	default:
		// a burst of clicks; one outside hit is enough to dismiss
		c.logger.Debug("Dismiss event dropped", map[string]interface{}{
			"kind": string(e.Kind),
		})
		return nil
	}
}

// Handle processes one event synchronously and reports whether it dismissed
// the viewer. Only outside pointer-down and focus-in events on a visible
// viewer dismiss it.
func (c *Controller) Handle(e Event) bool {
	if e.Kind != PointerDown && e.Kind != FocusIn {
		return false
	}

	c.mu.RLock()
	inside := c.bounds.Contains(e.X, e.Y)
	c.mu.RUnlock()

	if inside || !c.target.Visible() {
		return false
	}

	dismissed := c.target.Dismiss()
	if dismissed {
		c.logger.Debug("Viewer dismissed by outside event", map[string]interface{}{
			"kind": string(e.Kind),
			"x":    e.X,
			"y":    e.Y,
		})
	}
	return dismissed
}

func (c *Controller) loop(ctx context.Context, events <-chan Event, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case e := <-events:
			c.Handle(e)
		case <-ctx.Done():
			return
		}
	}
}
