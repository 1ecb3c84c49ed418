package main

// Rect is the viewport's screen-space placement in pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// Viewport maps between screen pixels and document (world) pixels. It is
// session state, not document state: pan and zoom are never recorded in
// history and never exported.
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

func newViewport() Viewport {
	return Viewport{Zoom: 1}
}

func (v *Viewport) ScreenToWorld(clientX, clientY float64, bounds Rect) (float64, float64) {
	x := (clientX - bounds.Left - v.OffsetX) / v.Zoom
	y := (clientY - bounds.Top - v.OffsetY) / v.Zoom
	return x, y
}

func (v *Viewport) WorldToScreen(wx, wy float64, bounds Rect) (float64, float64) {
	x := wx*v.Zoom + v.OffsetX + bounds.Left
	y := wy*v.Zoom + v.OffsetY + bounds.Top
	return x, y
}

func (v *Viewport) SetZoom(z float64) {
	v.Zoom = clampFloat(z, zoomMin, zoomMax)
}

// ZoomAtCursor rescales around the cursor so the world point under it stays
// put: newOffset = cursorScreenPos - worldUnderCursor * newZoom. notches > 0
// zooms in, < 0 zooms out, one zoomStep factor per notch.
func (v *Viewport) ZoomAtCursor(notches int, clientX, clientY float64, bounds Rect) {
	if notches == 0 {
		return
	}
	factor := zoomStep
	if notches < 0 {
		factor = 1 / zoomStep
		notches = -notches
	}
	for i := 0; i < notches; i++ {
		wx, wy := v.ScreenToWorld(clientX, clientY, bounds)
		newZoom := clampFloat(v.Zoom*factor, zoomMin, zoomMax)
		v.OffsetX = clientX - bounds.Left - wx*newZoom
		v.OffsetY = clientY - bounds.Top - wy*newZoom
		v.Zoom = newZoom
	}
}

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Reset returns to 1:1 zoom with the document origin at the viewport
// corner.
func (v *Viewport) Reset() {
	v.Zoom = 1
	v.OffsetX = 0
	v.OffsetY = 0
}
