package dismiss

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTarget is a viewer that records dismissals
type fakeTarget struct {
	mu        sync.Mutex
	visible   bool
	dismissed int
}

func (f *fakeTarget) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

func (f *fakeTarget) Dismiss() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.visible {
		return false
	}
	f.visible = false
	f.dismissed++
	return true
}

func (f *fakeTarget) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dismissed
}

var viewerBounds = Bounds{X: 100, Y: 100, Width: 400, Height: 300}

func TestBounds_Contains(t *testing.T) {
	assert.True(t, viewerBounds.Contains(100, 100))
	assert.True(t, viewerBounds.Contains(300, 250))
	assert.True(t, viewerBounds.Contains(500, 400))
	assert.False(t, viewerBounds.Contains(99, 250))
	assert.False(t, viewerBounds.Contains(300, 401))
	assert.False(t, Bounds{}.Contains(0, 0))
}

func TestController_Handle(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		event   Event
		want    bool
	}{
		{"outside pointer dismisses", true, Event{Kind: PointerDown, X: 10, Y: 10}, true},
		{"outside focus dismisses", true, Event{Kind: FocusIn, X: 600, Y: 10}, true},
		{"inside pointer keeps open", true, Event{Kind: PointerDown, X: 150, Y: 150}, false},
		{"hidden viewer ignores events", false, Event{Kind: PointerDown, X: 10, Y: 10}, false},
		{"other kinds ignored", true, Event{Kind: "keydown", X: 10, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{visible: tt.visible}
			c := NewController(target, viewerBounds, nil)

			assert.Equal(t, tt.want, c.Handle(tt.event))
			assert.Equal(t, tt.visible && !tt.want, target.Visible())
		})
	}
}

func TestController_SetBounds(t *testing.T) {
	target := &fakeTarget{visible: true}
	c := NewController(target, viewerBounds, nil)

	c.SetBounds(Bounds{X: 0, Y: 0, Width: 50, Height: 50})

	assert.False(t, c.Handle(Event{Kind: PointerDown, X: 10, Y: 10}))
	assert.True(t, c.Handle(Event{Kind: PointerDown, X: 150, Y: 150}))
}

func TestController_DispatchRequiresMount(t *testing.T) {
	c := NewController(&fakeTarget{visible: true}, viewerBounds, nil)

	assert.Equal(t, ErrNotMounted, c.Dispatch(Event{Kind: PointerDown}))
}

func TestController_MountedLoopDismisses(t *testing.T) {
	target := &fakeTarget{visible: true}
	c := NewController(target, viewerBounds, nil)
	c.Mount(context.Background())
	c.Mount(context.Background())
	defer c.Unmount()

	assert.True(t, c.Mounted())
	assert.NoError(t, c.Dispatch(Event{Kind: PointerDown, X: 1, Y: 1}))

	assert.Eventually(t, func() bool { return target.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, target.Visible())
}

func TestController_UnmountStopsLoop(t *testing.T) {
	target := &fakeTarget{visible: true}
	c := NewController(target, viewerBounds, nil)
	c.Mount(context.Background())

	c.Unmount()
	c.Unmount()

	assert.False(t, c.Mounted())
	assert.Equal(t, ErrNotMounted, c.Dispatch(Event{Kind: PointerDown, X: 1, Y: 1}))
	assert.Equal(t, 0, target.count())
}

func TestController_RemountAfterUnmount(t *testing.T) {
	target := &fakeTarget{visible: true}
	c := NewController(target, viewerBounds, nil)
	c.Mount(context.Background())
	c.Unmount()
	c.Mount(context.Background())
	defer c.Unmount()

	assert.NoError(t, c.Dispatch(Event{Kind: FocusIn, X: 1, Y: 1}))
	assert.Eventually(t, func() bool { return target.count() == 1 }, time.Second, 5*time.Millisecond)
}
