package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/miniworld/internal/domain/entity"
)

func TestManager_HandleNewWindowRequested_MarshalsToUIThread(t *testing.T) {
	h := newHarness(t)
	m := NewManager(testContext(), h.deps(), h.opts)
	req, deferral := h.request(entity.WindowFeatures{})
	surface := newFakeSurface()

	gomock.InOrder(
		req.EXPECT().SetNewWindow(surface),
		req.EXPECT().SetHandled(true),
		deferral.EXPECT().Complete().Times(1),
	)

	m.HandleNewWindowRequested(req)
	assert.Empty(t, h.windows.windows, "window is built on the UI thread")

	h.ui.runNext(t)
	require.Len(t, h.windows.windows, 1)
	assert.Equal(t, 1, m.Count())

	h.env.respond(surface, nil)
	h.ui.runNext(t)

	popups := m.Popups()
	require.Len(t, popups, 1)
	assert.Equal(t, entity.PopupActive, popups[0].State())
}

func TestManager_HandleNewWindowRequested_DirectOnUIThread(t *testing.T) {
	h := newHarness(t)
	h.ui.direct.Store(true)
	m := NewManager(testContext(), h.deps(), h.opts)
	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)

	m.HandleNewWindowRequested(req)
	require.Len(t, h.windows.windows, 1)

	h.env.respond(nil, errEngine)
	h.ui.runNext(t)
}

func TestManager_HandleNewWindowRequested_StoppedLoopCompletesDeferral(t *testing.T) {
	h := newHarness(t)
	h.ui.refuse.Store(true)
	m := NewManager(testContext(), h.deps(), h.opts)
	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)

	m.HandleNewWindowRequested(req)

	assert.Empty(t, h.windows.windows)
	assert.Equal(t, 0, m.Count())
}

func TestManager_WindowCreateFailureIsNotTracked(t *testing.T) {
	h := newHarness(t)
	h.windows.err = errEngine
	m := NewManager(testContext(), h.deps(), h.opts)
	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)

	m.HandleNewWindowRequested(req)
	h.ui.runNext(t)

	assert.Equal(t, 0, m.Count())
}

func TestManager_ForgetsClosedPopups(t *testing.T) {
	h := newHarness(t)
	m := NewManager(testContext(), h.deps(), h.opts)
	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)

	c, err := m.Open(req)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())

	h.env.respond(nil, errEngine)
	h.ui.runNext(t)
	assert.Equal(t, 1, m.Count(), "failed popups stay until closed")

	h.windows.last().userClose()
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, entity.PopupClosed, c.State())
}

func TestManager_CloseAll(t *testing.T) {
	h := newHarness(t)
	m := NewManager(testContext(), h.deps(), h.opts)

	for range 3 {
		req, deferral := h.request(entity.WindowFeatures{})
		deferral.EXPECT().Complete().Times(1)
		_, err := m.Open(req)
		require.NoError(t, err)
	}
	require.Equal(t, 3, m.Count())

	m.CloseAll(entity.CloseReasonShutdown)
	assert.Equal(t, 0, m.Count())
	for _, w := range h.windows.windows {
		assert.True(t, w.destroyed)
	}

	// Attachments finishing after shutdown are discarded.
	for range 3 {
		surface := newFakeSurface()
		h.env.respond(surface, nil)
		h.ui.runNext(t)
		assert.Equal(t, 1, surface.closeCount())
	}
}

func TestManager_SetOptionsAppliesToNewPopups(t *testing.T) {
	h := newHarness(t)
	m := NewManager(testContext(), h.deps(), h.opts)

	opts := m.Options()
	opts.Scale = 2
	m.SetOptions(opts)

	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)
	_, err := m.Open(req)
	require.NoError(t, err)

	assert.Equal(t, entity.Size{Width: 1600, Height: 1200}, h.windows.last().opts.Geometry.ClientSize)

	h.env.respond(nil, errEngine)
	h.ui.runNext(t)
}

func TestManager_OnPopupClosedReportsReason(t *testing.T) {
	h := newHarness(t)
	m := NewManager(testContext(), h.deps(), h.opts)

	var closed []*Controller
	m.OnPopupClosed(func(c *Controller) { closed = append(closed, c) })

	req, deferral := h.request(entity.WindowFeatures{})
	deferral.EXPECT().Complete().Times(1)
	c, err := m.Open(req)
	require.NoError(t, err)

	c.Close(entity.CloseReasonScript)
	c.Close(entity.CloseReasonUser)

	require.Len(t, closed, 1)
	assert.Same(t, c, closed[0])
	assert.Equal(t, entity.CloseReasonScript, closed[0].CloseReason())

	h.env.respond(nil, errEngine)
	h.ui.runNext(t)
}
