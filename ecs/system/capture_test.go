package system

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/milk9111/gridpaint/capture"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
	"github.com/milk9111/gridpaint/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCapture(copied *int, copyErr error) *CaptureSystem {
	c := NewCaptureSystem(discardLogger(), testRand())
	c.copyImage = func(image.Image) error {
		*copied++
		return copyErr
	}
	return c
}

func TestCaptureSystemQueuesOneRequest(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	var copied int
	c := newTestCapture(&copied, nil)

	setInput(t, w, component.Input{CapturePressed: true})
	c.Update(w)
	_, req, ok := ecs.First(w, component.CaptureRequestComponent)
	require.True(t, ok)
	name := req.Name
	assert.Regexp(t, regexp.MustCompile(`^gridpaint_[A-Za-z0-9]{10}\.png$`), name)

	// A second press in the same frame merges into the queued request.
	setInput(t, w, component.Input{CapturePressed: true, ClipboardPressed: true})
	c.Update(w)
	assert.Len(t, w.Query(component.CaptureRequestComponent.ID()), 1)
	assert.Equal(t, name, req.Name)
	assert.True(t, req.ToClipboard)
}

func TestCaptureSystemWritesFrame(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	dir := filepath.Join(t.TempDir(), "shots")
	testSettings(t, w).CaptureDir = dir

	var copied int
	c := newTestCapture(&copied, nil)
	setInput(t, w, component.Input{CapturePressed: true, ClipboardPressed: true})
	c.Update(w)

	c.fulfil(w, image.NewRGBA(image.Rect(0, 0, 4, 3)))
	require.NoError(t, w.Err())
	assert.False(t, hasPendingCapture(w))
	assert.Equal(t, 1, copied)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	events := w.Events().Drain()
	require.Len(t, events, 2)
	assert.Equal(t, ecs.CapturedEvent{Path: filepath.Join(dir, entries[0].Name())}, events[0].Data)
	assert.Equal(t, ecs.CapturedEvent{Clipboard: true}, events[1].Data)
}

func TestCaptureSystemWriteFailureIsFatal(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	var copied int
	c := newTestCapture(&copied, nil)
	boom := errors.New("disk full")
	c.writeFile = func(image.Image, string, string) (string, error) { return "", boom }

	setInput(t, w, component.Input{CapturePressed: true})
	c.Update(w)
	c.fulfil(w, image.NewRGBA(image.Rect(0, 0, 1, 1)))

	require.Error(t, w.Err())
	assert.True(t, errors.Is(w.Err(), boom))
	assert.False(t, hasPendingCapture(w))
	assert.Zero(t, w.Events().Len())
}

func TestCaptureSystemClipboardFailureIsLogged(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	var copied int
	c := newTestCapture(&copied, capture.ErrNoImage)

	setInput(t, w, component.Input{ClipboardPressed: true})
	c.Update(w)
	c.fulfil(w, image.NewRGBA(image.Rect(0, 0, 1, 1)))

	assert.NoError(t, w.Err())
	assert.Equal(t, 1, copied)
	assert.Zero(t, w.Events().Len())
}

func TestCaptureSystemIdle(t *testing.T) {
	w := newTestWorld(t, grid.PaintOnce)
	var copied int
	c := newTestCapture(&copied, nil)

	c.Update(w)
	assert.False(t, hasPendingCapture(w))
	c.fulfil(w, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Zero(t, copied)
}
