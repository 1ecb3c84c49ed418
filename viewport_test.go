package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_RoundTrip(t *testing.T) {
	v := Viewport{Zoom: 1.7, OffsetX: 42, OffsetY: -13}
	bounds := Rect{Left: 10, Top: 20, Width: 800, Height: 600}

	wx, wy := v.ScreenToWorld(300, 250, bounds)
	sx, sy := v.WorldToScreen(wx, wy, bounds)
	assert.InDelta(t, 300, sx, 1e-9)
	assert.InDelta(t, 250, sy, 1e-9)
}

func TestViewport_ScreenToWorldSubtractsBounds(t *testing.T) {
	v := newViewport()
	bounds := Rect{Left: 100, Top: 50, Width: 800, Height: 600}
	wx, wy := v.ScreenToWorld(100, 50, bounds)
	assert.Equal(t, 0.0, wx)
	assert.Equal(t, 0.0, wy)
}

func TestViewport_SetZoomClamps(t *testing.T) {
	v := newViewport()
	v.SetZoom(0.01)
	assert.Equal(t, zoomMin, v.Zoom)
	v.SetZoom(100)
	assert.Equal(t, zoomMax, v.Zoom)
}

func TestViewport_ZoomAtCursorKeepsPointStable(t *testing.T) {
	v := newViewport()
	v.OffsetX, v.OffsetY = 30, -10
	bounds := Rect{Width: 800, Height: 600}

	cx, cy := 400.0, 300.0
	beforeX, beforeY := v.ScreenToWorld(cx, cy, bounds)

	v.ZoomAtCursor(3, cx, cy, bounds)
	afterX, afterY := v.ScreenToWorld(cx, cy, bounds)

	assert.InDelta(t, beforeX, afterX, 1e-9)
	assert.InDelta(t, beforeY, afterY, 1e-9)
	assert.InDelta(t, zoomStep*zoomStep*zoomStep, v.Zoom, 1e-9)
}

func TestViewport_ZoomAtCursorClampsAtLimits(t *testing.T) {
	v := newViewport()
	bounds := Rect{Width: 800, Height: 600}

	v.ZoomAtCursor(100, 400, 300, bounds)
	assert.Equal(t, zoomMax, v.Zoom)

	v.ZoomAtCursor(-200, 400, 300, bounds)
	assert.Equal(t, zoomMin, v.Zoom)
}

func TestViewport_Reset(t *testing.T) {
	v := Viewport{Zoom: 3, OffsetX: 99, OffsetY: 99}
	v.Reset()
	assert.Equal(t, 1.0, v.Zoom)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)
}

func TestQuantizeDrag(t *testing.T) {
	preset := defaultPreset() // 32px seats, 8px gaps

	// a tiny drag still yields one seat
	r := quantizeDrag(preset, 100, 100, 101, 101)
	assert.Equal(t, 1, r.Rows)
	assert.Equal(t, 1, r.Cols)

	// 3 columns x 2 rows worth of pitch
	r = quantizeDrag(preset, 100, 100, 100+3*40, 100+2*40)
	assert.Equal(t, 2, r.Rows)
	assert.Equal(t, 3, r.Cols)
	assert.Equal(t, 100.0, r.X)
	assert.Equal(t, 100.0, r.Y)

	// direction does not matter
	r = quantizeDrag(preset, 220, 180, 100, 100)
	assert.Equal(t, 100.0, r.X)
	assert.Equal(t, 100.0, r.Y)
	assert.Equal(t, 2, r.Rows)
	assert.Equal(t, 3, r.Cols)
}
