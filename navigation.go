package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	if m.panOverride || m.session.Tool().Kind == ToolPan {
		return m.handlePan(key, speed), nil
	}
	return m.handleCursorMove(key, speed), nil
}

// handlePan shifts the viewport by whole cells. Viewport changes never
// enter undo history.
func (m *model) handlePan(key string, speed int) tea.Model {
	v := m.session.Viewport()
	switch key {
	case "h", "left", "H", "shift+left":
		v.Pan(float64(speed)*cellWidth, 0)
	case "l", "right", "L", "shift+right":
		v.Pan(-float64(speed)*cellWidth, 0)
	case "k", "up", "K", "shift+up":
		v.Pan(0, float64(speed)*cellHeight)
	case "j", "down", "J", "shift+down":
		v.Pan(0, -float64(speed)*cellHeight)
	}
	return m
}

func (m *model) handleCursorMove(key string, speed int) tea.Model {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	return m
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
