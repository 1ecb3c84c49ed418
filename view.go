package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	topBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))
)

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	canvasW := m.canvasWidth()
	canvasH := m.canvasHeight()
	if canvasW < 1 {
		canvasW = 1
	}
	if canvasH < 1 {
		canvasH = 1
	}

	var body []string
	if m.mode == ModeFileInput {
		body = m.fileListLines(canvasW, canvasH)
	} else {
		body = m.canvasLines(canvasW, canvasH)
	}

	if pw := m.panelWidth(); pw > 0 {
		panel := m.panelLines(pw, canvasH)
		for i := range body {
			body[i] = padTo(body[i], canvasW) + panel[i]
		}
	}

	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteString("\n")
	for _, line := range body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) canvasLines(w, h int) []string {
	params := canvasParams{selection: m.session.Selection()}
	switch m.drag {
	case dragCreate:
		rect := quantizeDrag(m.session.Tool().Preset,
			m.dragAnchorWX, m.dragAnchorWY, m.dragCurWX, m.dragCurWY)
		params.preview = &rect
	case dragMove:
		params.moveBlockID = m.dragBlockID
		params.moveDX = m.dragCurWX - m.dragAnchorWX
		params.moveDY = m.dragCurWY - m.dragAnchorWY
	}

	lines := renderCanvas(m.session, w, h, params)

	if m.mode == ModeNormal && m.drag == dragNone &&
		m.cursorY >= 0 && m.cursorY < len(lines) {
		runes := []rune(lines[m.cursorY])
		if m.cursorX >= 0 && m.cursorX < len(runes) {
			runes[m.cursorX] = '█'
			lines[m.cursorY] = string(runes)
		}
	}
	return lines
}

func (m model) topBar() string {
	doc := m.session.Doc()
	tool := "select"
	switch m.session.Tool().Kind {
	case ToolPan:
		tool = "pan"
	case ToolAddBlock:
		tool = "block"
	}
	if m.panOverride {
		tool = "pan*"
	}
	v := m.session.Viewport()
	text := fmt.Sprintf("seatsmith  %s  [%s]  %d%% @ %+.0f,%+.0f  %d blocks / %d seats",
		doc.Name, tool, int(v.Zoom*100+0.5), v.OffsetX, v.OffsetY,
		len(doc.Blocks), len(doc.Seats))
	return topBarStyle.Width(m.width).Render(text)
}

func (m model) fileListLines(w, h int) []string {
	lines := make([]string, 0, h)
	lines = append(lines, "Open a seat map:")
	lines = append(lines, strings.Repeat("─", w))

	if len(m.fileList) == 0 {
		lines = append(lines, panelDimStyle.Render("(no .json files found)"))
	} else {
		maxFiles := h - 3
		if maxFiles < 1 {
			maxFiles = 1
		}
		start := 0
		if m.selectedFileIndex >= maxFiles {
			start = m.selectedFileIndex - maxFiles + 1
		}
		end := start + maxFiles
		if end > len(m.fileList) {
			end = len(m.fileList)
		}
		for i := start; i < end; i++ {
			name := strings.TrimSuffix(m.fileList[i], ".json")
			if i == m.selectedFileIndex {
				lines = append(lines, selectedLineStyle.Render("> "+name))
			} else {
				lines = append(lines, "  "+name)
			}
		}
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return lines[:h]
}

// panelLines renders the right-hand side panel: document summary, the
// selected block's properties, the selection, and zones.
func (m model) panelLines(w, h int) []string {
	doc := m.session.Doc()
	lines := make([]string, 0, h)
	add := func(s string) { lines = append(lines, " "+s) }

	add(panelTitleStyle.Render("Document"))
	add(doc.Name)
	add(panelDimStyle.Render(fmt.Sprintf("%.0f x %.0f px", doc.Width, doc.Height)))
	add("")

	if b := m.selectedBlock(); b != nil {
		add(panelTitleStyle.Render("Block"))
		for i, name := range blockFieldNames {
			val := blockFieldValue(b, blockField(i))
			line := fmt.Sprintf("%-11s %s", name, val)
			if m.mode == ModeProperties && i == m.propIndex {
				add(selectedLineStyle.Render("> " + line))
			} else {
				add("  " + line)
			}
		}
		add("")
	}

	sel := m.session.Selection()
	if len(sel.SeatIDs) > 0 {
		add(panelTitleStyle.Render(fmt.Sprintf("Seats (%d)", len(sel.SeatIDs))))
		if seat := m.firstSelectedSeat(); seat != nil {
			add(fmt.Sprintf("%-7s %s", "label", seat.Label))
			add(fmt.Sprintf("%-7s %s", "type", seat.Type))
			add(fmt.Sprintf("%-7s %s", "status", seat.Status))
			zone := "-"
			if z := doc.findZone(seat.ZoneID); z != nil {
				zone = z.Name
			}
			add(fmt.Sprintf("%-7s %s", "zone", zone))
		}
		add("")
	}
	if sel.Row != nil {
		if b := doc.findBlock(sel.Row.BlockID); b != nil {
			add(panelTitleStyle.Render("Row " + rowLabelFor(b, sel.Row.RelRow)))
			add(panelDimStyle.Render("e = edit label"))
			add("")
		}
	}

	if len(doc.Zones) > 0 {
		add(panelTitleStyle.Render("Zones"))
		for _, z := range doc.Zones {
			add(lipgloss.NewStyle().Foreground(lipgloss.Color(z.Color)).Render("■ ") + z.Name)
		}
		add("")
	}

	hist := m.session.History()
	add(panelDimStyle.Render(fmt.Sprintf("undo %v / redo %v", hist.CanUndo(), hist.CanRedo())))

	out := make([]string, h)
	for i := 0; i < h; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padTo("│"+line, w)
	}
	return out
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeTextInput:
		return fmt.Sprintf("%s %s", m.textPrompt, m.textWithCursor())
	case ModeProperties:
		return "Mode: PROPS | j/k=field, Enter=edit, p/Esc=done"
	case ModeFileInput:
		if m.errorMessage != "" {
			return errorStyle.Render("ERROR: "+m.errorMessage) + " | j/k=navigate, Enter=open, Esc=cancel"
		}
		return "Mode: FILE | j/k=navigate, Enter=open, Esc=cancel"
	case ModeConfirm:
		return "Mode: CONFIRM | " + m.confirmQuestion()
	}

	status := fmt.Sprintf("Mode: %s | Cursor: (%d,%d)", m.modeString(), m.cursorX, m.cursorY)
	sel := m.session.Selection()
	if n := len(sel.SeatIDs); n > 0 {
		status += fmt.Sprintf(" | %d seat(s)", n)
	} else if sel.BlockID != "" {
		if b := m.session.Doc().findBlock(sel.BlockID); b != nil {
			status += " | " + b.Name
		}
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	} else {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) textWithCursor() string {
	runes := []rune(m.textInput)
	if m.textCursor >= len(runes) {
		return m.textInput + "█"
	}
	out := make([]rune, len(runes))
	copy(out, runes)
	out[m.textCursor] = '█'
	return string(out)
}

func (m model) confirmQuestion() string {
	switch m.confirmAction {
	case ConfirmDeleteBlock:
		if b := m.selectedBlock(); b != nil {
			return fmt.Sprintf("Delete block %q and its seats? (y/n)", b.Name)
		}
		return "Delete this block? (y/n)"
	case ConfirmDeleteZone:
		if z := m.session.Doc().findZone(m.confirmZoneID); z != nil {
			return fmt.Sprintf("Delete zone %q? Seats keep their other edits. (y/n)", z.Name)
		}
		return "Delete this zone? (y/n)"
	case ConfirmQuit:
		return "Quit seatsmith? (y/n)"
	case ConfirmNewMap:
		return "Start a new seat map? Unsaved changes will be lost. (y/n)"
	case ConfirmOverwriteFile:
		return fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.pendingPath)
	}
	return "(y/n)"
}

func (m model) modeString() string {
	switch m.mode {
	case ModeStartup:
		return "STARTUP"
	case ModeNormal:
		if m.panOverride || m.session.Tool().Kind == ToolPan {
			return "PAN"
		}
		return "NORMAL"
	case ModeTextInput:
		return "TEXT"
	case ModeProperties:
		return "PROPS"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) startupView() string {
	lines := []string{
		panelTitleStyle.Render("seatsmith"),
		"a seat map editor for your terminal",
		"",
		"'n'  New seat map",
		"'o'  Open existing map",
		"'q'  Quit",
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func helpLines() []string {
	return []string{
		"seatsmith help",
		"==============",
		"",
		"Tools:",
		"  v            select tool",
		"  b            add-block tool (click or drag to place)",
		"  m            pan tool",
		"  space        toggle pan on top of the current tool",
		"",
		"Navigation:",
		"  hjkl/arrows  move cursor (pan when pan tool active)",
		"  HJKL         faster",
		"  +/-/0        zoom in / zoom out / reset view",
		"  mouse wheel  zoom at cursor",
		"",
		"Selection:",
		"  enter/click  select seat or block under cursor",
		"  ctrl+click   toggle a seat in the selection",
		"  w            select the row of the selected seat",
		"  esc          clear selection",
		"",
		"Editing:",
		"  p            block property panel",
		"  r / R        rotate block by 15 degrees",
		"  drag block   move it",
		"  d            delete selected block",
		"  i            edit seat label",
		"  t / s        cycle seat type / status",
		"  e            edit row label override (empty = default)",
		"  z / Z / D    assign next zone / new zone / delete seat's zone",
		"  n / N        rename map / new map",
		"",
		"History:",
		"  u, ctrl+z    undo",
		"  U            redo",
		"",
		"Files:",
		"  x / X        export JSON / PNG",
		"  o            open a JSON map",
		"  y            copy JSON to clipboard",
		"",
		"  ?            close help",
	}
}

func (m model) helpView() string {
	lines := helpLines()
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	var b strings.Builder
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(panelDimStyle.Render("j/k=scroll, any other key to close"))
	return b.String()
}

// padTo pads or truncates s to exactly w display cells. Styled strings
// pass through untouched when w is 0.
func padTo(s string, w int) string {
	if w <= 0 {
		return s
	}
	width := lipgloss.Width(s)
	if width > w {
		return truncateTo(s, w)
	}
	return s + strings.Repeat(" ", w-width)
}

func truncateTo(s string, w int) string {
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	return string(runes[:w])
}
