package viewer

import (
	"context"
	"testing"
	"time"

	"article-viewer-api/core/dismiss"
	coreerrors "article-viewer-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, ttl time.Duration) (*Registry, *manualDispatcher) {
	t.Helper()
	d := &manualDispatcher{}
	r := NewRegistry(NewService(aliceAndBob(), ServiceOptions{Dispatcher: d}), ttl, nil)
	t.Cleanup(r.Close)
	return r, d
}

func TestRegistry_CreateGetDelete(t *testing.T) {
	r, _ := newTestRegistry(t, time.Minute)

	entry, err := r.Create(context.Background(), SessionRequest{Article: testArticle}, dismiss.Bounds{Width: 10, Height: 10})
	require.NoError(t, err)
	assert.True(t, entry.Controller.Mounted())
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(entry.Session.ID())
	require.NoError(t, err)
	assert.Same(t, entry, got)

	require.NoError(t, r.Delete(entry.Session.ID()))
	assert.Equal(t, 0, r.Len())
	assert.False(t, entry.Controller.Mounted())
	assert.False(t, entry.Session.FetchParsedArticle(), "disposed session issued a fetch")

	_, err = r.Get(entry.Session.ID())
	assert.True(t, coreerrors.IsNotFound(err))
	assert.True(t, coreerrors.IsNotFound(r.Delete(entry.Session.ID())))
}

func TestRegistry_CreateValidates(t *testing.T) {
	r, _ := newTestRegistry(t, time.Minute)

	_, err := r.Create(context.Background(), SessionRequest{}, dismiss.Bounds{})
	assert.True(t, coreerrors.IsValidation(err))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_OutsideEventDismisses(t *testing.T) {
	r, _ := newTestRegistry(t, time.Minute)

	entry, err := r.Create(context.Background(), SessionRequest{Article: testArticle}, dismiss.Bounds{X: 0, Y: 0, Width: 100, Height: 100})
	require.NoError(t, err)
	entry.Session.Reveal()

	assert.False(t, entry.Controller.Handle(dismiss.Event{Kind: dismiss.PointerDown, X: 50, Y: 50}))
	assert.True(t, entry.Session.Visible())

	assert.True(t, entry.Controller.Handle(dismiss.Event{Kind: dismiss.FocusIn, X: 500, Y: 50}))
	assert.False(t, entry.Session.Visible())
}

func TestRegistry_ExpiredSessionsAreGone(t *testing.T) {
	r, _ := newTestRegistry(t, 50*time.Millisecond)

	entry, err := r.Create(context.Background(), SessionRequest{Article: testArticle}, dismiss.Bounds{})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	_, err = r.Get(entry.Session.ID())
	assert.True(t, coreerrors.IsNotFound(err))

	r.Close()
	assert.False(t, entry.Controller.Mounted())
}

func TestRegistry_CloseDisposesAll(t *testing.T) {
	r, _ := newTestRegistry(t, time.Minute)

	var entries []*Entry
	for i := 0; i < 3; i++ {
		entry, err := r.Create(context.Background(), SessionRequest{Article: testArticle}, dismiss.Bounds{})
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	r.Close()
	assert.Equal(t, 0, r.Len())
	for _, entry := range entries {
		assert.False(t, entry.Controller.Mounted())
	}
}
