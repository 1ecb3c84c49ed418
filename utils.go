package main

import (
	"github.com/atotto/clipboard"
)

// panelWidth is the right-hand properties panel; it collapses on narrow
// terminals.
func (m *model) panelWidth() int {
	if m.width >= 80 {
		return 30
	}
	return 0
}

func (m *model) canvasWidth() int {
	w := m.width - m.panelWidth()
	if w < 1 {
		w = 1
	}
	return w
}

func (m *model) canvasHeight() int {
	h := m.height - 2 // top bar and status line
	if h < 1 {
		h = 1
	}
	return h
}

// canvasBounds is the canvas area's own pixel space; cell (0,0) of the
// canvas is pixel (0,0).
func (m *model) canvasBounds() Rect {
	return Rect{
		Left:   0,
		Top:    0,
		Width:  float64(m.canvasWidth()) * cellWidth,
		Height: float64(m.canvasHeight()) * cellHeight,
	}
}

// cellToClient maps a canvas cell to the pixel at its center.
func cellToClient(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * cellWidth, (float64(cy) + 0.5) * cellHeight
}

// worldAtCursor resolves the keyboard cursor's world position.
func (m *model) worldAtCursor() (float64, float64) {
	px, py := cellToClient(m.cursorX, m.cursorY)
	return m.session.Viewport().ScreenToWorld(px, py, m.canvasBounds())
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if maxX := m.canvasWidth() - 1; m.cursorX > maxX {
		m.cursorX = maxX
	}
	if maxY := m.canvasHeight() - 1; m.cursorY > maxY {
		m.cursorY = maxY
	}
}

// yankJSON copies the current document's export JSON to the system
// clipboard.
func (m *model) yankJSON() {
	data, err := m.session.ExportJSON()
	if err != nil {
		m.errorMessage = "Export failed: " + err.Error()
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.errorMessage = "Clipboard unavailable: " + err.Error()
		return
	}
	m.successMessage = "Seat map JSON copied to clipboard"
}

func (m *model) firstSelectedSeat() *Seat {
	sel := m.session.Selection()
	if len(sel.SeatIDs) == 0 {
		return nil
	}
	return m.session.Doc().findSeat(sel.SeatIDs[0])
}

func (m *model) selectedBlock() *SeatBlock {
	sel := m.session.Selection()
	if sel.BlockID == "" {
		return nil
	}
	return m.session.Doc().findBlock(sel.BlockID)
}

func cycleSeatType(t SeatType) SeatType {
	switch t {
	case SeatStandard:
		return SeatVIP
	case SeatVIP:
		return SeatAccessible
	case SeatAccessible:
		return SeatCompanion
	default:
		return SeatStandard
	}
}

func cycleSeatStatus(s SeatStatus) SeatStatus {
	switch s {
	case StatusAvailable:
		return StatusReserved
	case StatusReserved:
		return StatusBlocked
	default:
		return StatusAvailable
	}
}
