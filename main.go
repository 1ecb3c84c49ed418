package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type dragKind int

const (
	dragNone dragKind = iota
	dragPan
	dragCreate
	dragMove
)

// blockField identifies one entry of the block property panel.
type blockField int

const (
	fieldName blockField = iota
	fieldRows
	fieldCols
	fieldSeatW
	fieldSeatH
	fieldHGap
	fieldVGap
	fieldRowStyle
	fieldSeatStyle
	fieldStartRow
	fieldStartCol
	fieldRotation
)

var blockFieldNames = []string{
	"Name", "Rows", "Cols", "Seat W", "Seat H", "H Gap", "V Gap",
	"Row labels", "Seat labels", "Start row", "Start col", "Rotation",
}

type model struct {
	session *EditorSession
	config  *Config

	width  int
	height int

	mode        Mode
	help        bool
	helpScroll  int
	panOverride bool

	cursorX int
	cursorY int

	// text input state
	textInput  string
	textCursor int
	textPrompt string
	textTarget TextTarget
	editField  blockField

	propIndex int

	confirmAction ConfirmAction
	confirmZoneID string

	fileOp            FileOperation
	fileList          []string
	selectedFileIndex int
	pendingPath       string

	// drag gesture state; the document is only touched on commit
	drag             dragKind
	dragStartPX      float64
	dragStartPY      float64
	dragStartOffsetX float64
	dragStartOffsetY float64
	dragAnchorWX     float64
	dragAnchorWY     float64
	dragCurWX        float64
	dragCurWY        float64
	dragBlockID      string
	dragBlockOX      float64
	dragBlockOY      float64

	errorMessage   string
	successMessage string
}

func initialModel() model {
	config := loadConfig()
	m := model{
		session: NewEditorSession(),
		config:  config,
		mode:    ModeStartup,
	}
	preset := defaultPreset()
	preset.Rows = config.DefaultRows
	preset.Cols = config.DefaultCols
	m.session.SetTool(Tool{Kind: ToolSelect, Preset: preset})
	if !config.StartMenu {
		m.mode = ModeNormal
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.handleHelpKey(msg.String())
		}
		switch m.mode {
		case ModeStartup:
			return m.handleStartupKey(msg.String())
		case ModeNormal:
			return m.handleNormalKey(msg)
		case ModeTextInput:
			return m.handleTextInputKey(msg)
		case ModeProperties:
			return m.handlePropertiesKey(msg.String())
		case ModeFileInput:
			return m.handleFileInputKey(msg.String())
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		}
		return m, nil

	case tea.MouseMsg:
		if m.mode == ModeNormal {
			return m.handleMouse(msg)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleStartupKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "enter":
		m.mode = ModeNormal
		m.errorMessage = ""
		return m, nil
	case "o":
		m.scanJSONFiles()
		m.mode = ModeFileInput
		m.fileOp = FileOpImport
		m.errorMessage = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if msg.Type == tea.KeyEscape {
		if m.drag != dragNone {
			// Abandon the gesture; the document was never touched.
			m.drag = dragNone
			return m, nil
		}
		m.panOverride = false
		m.session.Selection().Clear()
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		if !m.config.Confirmations {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	case "?":
		m.help = !m.help
		return m, nil

	case "u", "ctrl+z":
		if !m.session.Undo() {
			m.errorMessage = "Nothing to undo"
		}
		return m, nil
	case "U", "ctrl+shift+z":
		if !m.session.Redo() {
			m.errorMessage = "Nothing to redo"
		}
		return m, nil

	case "+", "=", "ctrl+=":
		m.zoomAtCanvasCenter(1)
		return m, nil
	case "-", "_", "ctrl+-":
		m.zoomAtCanvasCenter(-1)
		return m, nil
	case "0":
		m.session.Viewport().Reset()
		return m, nil

	case " ", "space":
		// Terminals deliver no key-release, so space is a toggle rather
		// than a hold.
		m.panOverride = !m.panOverride
		return m, nil

	case "v":
		m.setToolKind(ToolSelect)
		return m, nil
	case "m":
		m.setToolKind(ToolPan)
		return m, nil
	case "b":
		m.setToolKind(ToolAddBlock)
		return m, nil

	case "enter":
		m.clickAtCursor(false)
		return m, nil

	case "h", "left", "H", "shift+left", "j", "down", "J", "shift+down",
		"k", "up", "K", "shift+up", "l", "right", "L", "shift+right":
		return m.handleNavigation(key, m.getMoveSpeed(key))

	case "p":
		if m.selectedBlock() != nil {
			m.mode = ModeProperties
			m.propIndex = 0
		}
		return m, nil

	case "r":
		if b := m.selectedBlock(); b != nil {
			m.session.RotateBlock(b.ID, rotateStep)
		}
		return m, nil
	case "R":
		if b := m.selectedBlock(); b != nil {
			m.session.RotateBlock(b.ID, -rotateStep)
		}
		return m, nil

	case "d", "delete", "backspace":
		if b := m.selectedBlock(); b != nil {
			if !m.config.Confirmations {
				m.session.RemoveBlock(b.ID)
				return m, nil
			}
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteBlock
		}
		return m, nil

	case "w":
		if seat := m.firstSelectedSeat(); seat != nil {
			if b := m.session.Doc().findBlock(seat.BlockID); b != nil {
				m.session.Selection().SelectRow(b.ID, seat.Row-b.StartRowIndex)
			}
		}
		return m, nil
	case "e":
		sel := m.session.Selection()
		if sel.Row != nil {
			b := m.session.Doc().findBlock(sel.Row.BlockID)
			if b != nil {
				m.startTextInput(TargetRowOverride,
					fmt.Sprintf("Row %s label (empty = default):", rowLabelFor(b, sel.Row.RelRow)),
					b.RowLabelOverrides[sel.Row.RelRow])
			}
		}
		return m, nil

	case "t":
		if seat := m.firstSelectedSeat(); seat != nil {
			next := cycleSeatType(seat.Type)
			m.session.UpdateSeats(m.session.Selection().SeatIDs, SeatPatch{Type: &next})
		}
		return m, nil
	case "s":
		if seat := m.firstSelectedSeat(); seat != nil {
			next := cycleSeatStatus(seat.Status)
			m.session.UpdateSeats(m.session.Selection().SeatIDs, SeatPatch{Status: &next})
		}
		return m, nil
	case "z":
		m.cycleZoneAssignment()
		return m, nil
	case "Z":
		m.startTextInput(TargetZoneName, "New zone name:", "")
		return m, nil
	case "D":
		if seat := m.firstSelectedSeat(); seat != nil && seat.ZoneID != "" {
			m.confirmZoneID = seat.ZoneID
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteZone
		}
		return m, nil

	case "i":
		if seat := m.firstSelectedSeat(); seat != nil {
			m.startTextInput(TargetSeatLabel, "Seat label:", seat.Label)
		}
		return m, nil

	case "n":
		m.startTextInput(TargetMapName, "Seat map name:", m.session.Doc().Name)
		return m, nil
	case "N":
		if !m.config.Confirmations {
			m.session.NewDocument()
			m.session.Viewport().Reset()
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmNewMap
		return m, nil

	case "x":
		m.fileOp = FileOpExportJSON
		m.startTextInput(TargetExportName, "Export JSON as:", m.session.Doc().Name)
		return m, nil
	case "X":
		m.fileOp = FileOpExportPNG
		m.startTextInput(TargetExportName, "Export PNG as:", m.session.Doc().Name)
		return m, nil
	case "o":
		m.scanJSONFiles()
		m.mode = ModeFileInput
		m.fileOp = FileOpImport
		return m, nil
	case "y":
		m.yankJSON()
		return m, nil
	}
	return m, nil
}

func (m *model) setToolKind(kind ToolKind) {
	tool := m.session.Tool()
	tool.Kind = kind
	m.session.SetTool(tool)
	m.drag = dragNone
}

func (m *model) zoomAtCanvasCenter(notches int) {
	bounds := m.canvasBounds()
	m.session.Viewport().ZoomAtCursor(notches, bounds.Width/2, bounds.Height/2, bounds)
}

// clickAtCursor applies select-tool click semantics at the keyboard
// cursor: seat hit selects the seat (and its block), block hit selects the
// block, empty canvas clears. With the add-block tool it places a preset
// block.
func (m *model) clickAtCursor(toggle bool) {
	wx, wy := m.worldAtCursor()
	tool := m.session.Tool()

	if tool.Kind == ToolAddBlock {
		m.session.AddBlockAt(wx, wy, tool.Preset)
		return
	}
	if seat := m.session.SeatAtWorld(wx, wy); seat != nil {
		m.session.Selection().ClickSeat(seat.ID, seat.BlockID, toggle)
		return
	}
	if block := m.session.BlockAtWorld(wx, wy); block != nil {
		m.session.Selection().SelectBlock(block.ID)
		return
	}
	m.session.Selection().Clear()
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cx, cy := msg.X, msg.Y-1 // top bar occupies row 0
	inCanvas := cx >= 0 && cx < m.canvasWidth() && cy >= 0 && cy < m.canvasHeight()
	px, py := cellToClient(cx, cy)
	bounds := m.canvasBounds()

	switch msg.Type {
	case tea.MouseWheelUp:
		if inCanvas {
			m.session.Viewport().ZoomAtCursor(1, px, py, bounds)
		}
		return m, nil
	case tea.MouseWheelDown:
		if inCanvas {
			m.session.Viewport().ZoomAtCursor(-1, px, py, bounds)
		}
		return m, nil

	case tea.MouseLeft:
		if m.drag != dragNone {
			m.updateDrag(px, py)
			return m, nil
		}
		if !inCanvas {
			return m, nil
		}
		m.cursorX, m.cursorY = cx, cy
		m.beginDrag(px, py, msg.Ctrl)
		return m, nil

	case tea.MouseMotion:
		if m.drag != dragNone {
			m.updateDrag(px, py)
		}
		return m, nil

	case tea.MouseRelease:
		m.finishDrag()
		return m, nil
	}
	return m, nil
}

func (m *model) beginDrag(px, py float64, toggle bool) {
	v := m.session.Viewport()
	bounds := m.canvasBounds()
	wx, wy := v.ScreenToWorld(px, py, bounds)
	tool := m.session.Tool()

	if tool.Kind == ToolPan || m.panOverride {
		m.drag = dragPan
		m.dragStartPX, m.dragStartPY = px, py
		m.dragStartOffsetX, m.dragStartOffsetY = v.OffsetX, v.OffsetY
		return
	}
	if tool.Kind == ToolAddBlock {
		m.drag = dragCreate
		m.dragAnchorWX, m.dragAnchorWY = wx, wy
		m.dragCurWX, m.dragCurWY = wx, wy
		return
	}
	if seat := m.session.SeatAtWorld(wx, wy); seat != nil {
		m.session.Selection().ClickSeat(seat.ID, seat.BlockID, toggle)
		return
	}
	if block := m.session.BlockAtWorld(wx, wy); block != nil {
		m.session.Selection().SelectBlock(block.ID)
		m.drag = dragMove
		m.dragBlockID = block.ID
		m.dragBlockOX, m.dragBlockOY = block.OriginX, block.OriginY
		m.dragAnchorWX, m.dragAnchorWY = wx, wy
		m.dragCurWX, m.dragCurWY = wx, wy
		return
	}
	m.session.Selection().Clear()
}

func (m *model) updateDrag(px, py float64) {
	v := m.session.Viewport()
	switch m.drag {
	case dragPan:
		v.OffsetX = m.dragStartOffsetX + (px - m.dragStartPX)
		v.OffsetY = m.dragStartOffsetY + (py - m.dragStartPY)
	case dragCreate, dragMove:
		m.dragCurWX, m.dragCurWY = v.ScreenToWorld(px, py, m.canvasBounds())
	}
}

func (m *model) finishDrag() {
	defer func() { m.drag = dragNone }()
	switch m.drag {
	case dragCreate:
		preset := m.session.Tool().Preset
		rect := quantizeDrag(preset, m.dragAnchorWX, m.dragAnchorWY, m.dragCurWX, m.dragCurWY)
		if rect.Rows > 1 || rect.Cols > 1 {
			preset.Rows = rect.Rows
			preset.Cols = rect.Cols
		}
		m.session.AddBlockAt(rect.X, rect.Y, preset)
	case dragMove:
		dx := m.dragCurWX - m.dragAnchorWX
		dy := m.dragCurWY - m.dragAnchorWY
		if dx != 0 || dy != 0 {
			m.session.MoveBlock(m.dragBlockID, m.dragBlockOX+dx, m.dragBlockOY+dy)
		}
	}
}

// quantizeDrag snaps a world-space drag rectangle to whole rows and
// columns of the preset's seat pitch, minimum 1x1.
func quantizeDrag(preset BlockPreset, ax, ay, bx, by float64) dragRect {
	x := math.Min(ax, bx)
	y := math.Min(ay, by)
	w := math.Abs(bx - ax)
	h := math.Abs(by - ay)
	cols := int(math.Round(w / (preset.SeatWidth + preset.HGap)))
	rows := int(math.Round(h / (preset.SeatHeight + preset.VGap)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return dragRect{
		X:    x,
		Y:    y,
		W:    float64(cols)*preset.SeatWidth + float64(cols-1)*preset.HGap,
		H:    float64(rows)*preset.SeatHeight + float64(rows-1)*preset.VGap,
		Rows: rows,
		Cols: cols,
	}
}

func (m *model) cycleZoneAssignment() {
	seat := m.firstSelectedSeat()
	if seat == nil {
		return
	}
	zones := m.session.Doc().Zones
	if len(zones) == 0 {
		m.errorMessage = "No zones yet. Press Z to create one."
		return
	}
	next := ""
	if seat.ZoneID == "" {
		next = zones[0].ID
	} else {
		for i := range zones {
			if zones[i].ID == seat.ZoneID && i+1 < len(zones) {
				next = zones[i+1].ID
				break
			}
		}
	}
	m.session.UpdateSeats(m.session.Selection().SeatIDs, SeatPatch{ZoneID: &next})
}

func (m *model) startTextInput(target TextTarget, prompt, initial string) {
	m.mode = ModeTextInput
	m.textTarget = target
	m.textPrompt = prompt
	m.textInput = initial
	m.textCursor = len([]rune(initial))
}

func (m model) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = m.textReturnMode()
		return m, nil
	case tea.KeyEnter:
		return m.commitTextInput()
	case tea.KeyBackspace:
		runes := []rune(m.textInput)
		if m.textCursor > 0 {
			m.textInput = string(append(runes[:m.textCursor-1:m.textCursor-1], runes[m.textCursor:]...))
			m.textCursor--
		}
		return m, nil
	case tea.KeyLeft:
		if m.textCursor > 0 {
			m.textCursor--
		}
		return m, nil
	case tea.KeyRight:
		if m.textCursor < len([]rune(m.textInput)) {
			m.textCursor++
		}
		return m, nil
	case tea.KeySpace:
		return m.insertText(" "), nil
	case tea.KeyRunes:
		return m.insertText(string(msg.Runes)), nil
	}
	return m, nil
}

func (m model) insertText(s string) model {
	runes := []rune(m.textInput)
	out := make([]rune, 0, len(runes)+len(s))
	out = append(out, runes[:m.textCursor]...)
	out = append(out, []rune(s)...)
	out = append(out, runes[m.textCursor:]...)
	m.textInput = string(out)
	m.textCursor += len([]rune(s))
	return m
}

func (m model) textReturnMode() Mode {
	if m.textTarget == TargetBlockField {
		return ModeProperties
	}
	return ModeNormal
}

func (m model) commitTextInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.textInput)
	m.mode = m.textReturnMode()

	switch m.textTarget {
	case TargetMapName:
		if text != "" {
			m.session.Rename(text)
		}
	case TargetExportName:
		if text == "" {
			return m, nil
		}
		if text != m.session.Doc().Name {
			m.session.Rename(text)
		}
		ext := ".json"
		if m.fileOp == FileOpExportPNG {
			ext = ".png"
		}
		path := m.config.GetSavePath(text + ext)
		if _, err := os.Stat(path); err == nil {
			m.pendingPath = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.performExport(path)
	case TargetSeatLabel:
		// Empty input keeps the prior label (silent reject, same as any
		// unparsable field).
		if seat := m.firstSelectedSeat(); seat != nil && text != "" {
			m.session.UpdateSeats([]string{seat.ID}, SeatPatch{Label: &text})
		}
	case TargetRowOverride:
		if sel := m.session.Selection(); sel.Row != nil {
			m.session.SetRowOverride(sel.Row.BlockID, sel.Row.RelRow, text)
		}
	case TargetZoneName:
		if text != "" {
			m.session.AddZone(text)
			m.successMessage = "Zone added: " + text
		}
	case TargetBlockField:
		m.commitBlockField(text)
	}
	return m, nil
}

func (m *model) performExport(path string) {
	var err error
	switch m.fileOp {
	case FileOpExportJSON:
		err = m.session.exportJSONFile(path)
	case FileOpExportPNG:
		err = m.session.exportPNG(path)
	}
	if err != nil {
		m.errorMessage = "Export failed: " + err.Error()
		return
	}
	m.successMessage = "Exported " + filepath.Base(path)
}

// commitBlockField parses one property-panel edit. Unparsable input keeps
// the prior value; geometry fields go through the atomic rebuild path,
// name and rotation patch the block alone.
func (m *model) commitBlockField(text string) {
	b := m.selectedBlock()
	if b == nil {
		return
	}
	switch m.editField {
	case fieldName:
		if text != "" {
			m.session.RebuildBlock(b.ID, BlockPatch{Name: &text})
		}
	case fieldRows:
		if n, err := strconv.Atoi(text); err == nil {
			m.session.RebuildBlock(b.ID, BlockPatch{Rows: &n})
		}
	case fieldCols:
		if n, err := strconv.Atoi(text); err == nil {
			m.session.RebuildBlock(b.ID, BlockPatch{Cols: &n})
		}
	case fieldSeatW:
		if f, err := strconv.ParseFloat(text, 64); err == nil && f > 0 {
			m.session.RebuildBlock(b.ID, BlockPatch{SeatWidth: &f})
		}
	case fieldSeatH:
		if f, err := strconv.ParseFloat(text, 64); err == nil && f > 0 {
			m.session.RebuildBlock(b.ID, BlockPatch{SeatHeight: &f})
		}
	case fieldHGap:
		if f, err := strconv.ParseFloat(text, 64); err == nil && f >= 0 {
			m.session.RebuildBlock(b.ID, BlockPatch{HGap: &f})
		}
	case fieldVGap:
		if f, err := strconv.ParseFloat(text, 64); err == nil && f >= 0 {
			m.session.RebuildBlock(b.ID, BlockPatch{VGap: &f})
		}
	case fieldStartRow:
		// Start fields accept either label grammar: "C" and "3" both
		// mean index 2.
		if n, ok := decodeLabel(text, b.RowLabelStyle); ok {
			m.session.RebuildBlock(b.ID, BlockPatch{StartRowIndex: &n})
		}
	case fieldStartCol:
		if n, ok := decodeLabel(text, b.SeatLabelStyle); ok {
			m.session.RebuildBlock(b.ID, BlockPatch{StartColIndex: &n})
		}
	case fieldRotation:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			m.session.RebuildBlock(b.ID, BlockPatch{Rotation: &f})
		}
	}
}

func (m model) handlePropertiesKey(key string) (tea.Model, tea.Cmd) {
	b := m.selectedBlock()
	if b == nil {
		m.mode = ModeNormal
		return m, nil
	}
	switch key {
	case "esc", "escape", "p", "q":
		m.mode = ModeNormal
		return m, nil
	case "j", "down":
		if m.propIndex < len(blockFieldNames)-1 {
			m.propIndex++
		}
		return m, nil
	case "k", "up":
		if m.propIndex > 0 {
			m.propIndex--
		}
		return m, nil
	case "enter":
		field := blockField(m.propIndex)
		switch field {
		case fieldRowStyle:
			style := toggleStyle(b.RowLabelStyle)
			m.session.RebuildBlock(b.ID, BlockPatch{RowLabelStyle: &style})
		case fieldSeatStyle:
			style := toggleStyle(b.SeatLabelStyle)
			m.session.RebuildBlock(b.ID, BlockPatch{SeatLabelStyle: &style})
		default:
			m.editField = field
			m.startTextInput(TargetBlockField,
				blockFieldNames[m.propIndex]+":", blockFieldValue(b, field))
		}
		return m, nil
	}
	return m, nil
}

func toggleStyle(s LabelStyle) LabelStyle {
	if s == LabelAlpha {
		return LabelNumeric
	}
	return LabelAlpha
}

func blockFieldValue(b *SeatBlock, f blockField) string {
	switch f {
	case fieldName:
		return b.Name
	case fieldRows:
		return strconv.Itoa(b.Rows)
	case fieldCols:
		return strconv.Itoa(b.Cols)
	case fieldSeatW:
		return strconv.FormatFloat(b.SeatWidth, 'f', -1, 64)
	case fieldSeatH:
		return strconv.FormatFloat(b.SeatHeight, 'f', -1, 64)
	case fieldHGap:
		return strconv.FormatFloat(b.HGap, 'f', -1, 64)
	case fieldVGap:
		return strconv.FormatFloat(b.VGap, 'f', -1, 64)
	case fieldRowStyle:
		return string(b.RowLabelStyle)
	case fieldSeatStyle:
		return string(b.SeatLabelStyle)
	case fieldStartRow:
		return encodeLabel(b.StartRowIndex, b.RowLabelStyle)
	case fieldStartCol:
		return encodeLabel(b.StartColIndex, b.SeatLabelStyle)
	case fieldRotation:
		return strconv.FormatFloat(b.Rotation, 'f', -1, 64)
	}
	return ""
}

func (m *model) scanJSONFiles() {
	m.fileList = []string{}

	dir := m.config.SaveDirectory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			m.selectedFileIndex = -1
			return
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		m.selectedFileIndex = -1
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
	} else {
		m.selectedFileIndex = -1
	}
}

func (m model) handleFileInputKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "escape", "q":
		m.mode = ModeNormal
		return m, nil
	case "j", "down":
		if m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
		}
		return m, nil
	case "k", "up":
		if m.selectedFileIndex > 0 {
			m.selectedFileIndex--
		}
		return m, nil
	case "enter":
		if m.selectedFileIndex < 0 || m.selectedFileIndex >= len(m.fileList) {
			return m, nil
		}
		path := m.config.GetSavePath(m.fileList[m.selectedFileIndex])
		if err := m.session.importJSONFile(path); err != nil {
			// The current document is untouched on failure.
			m.errorMessage = err.Error()
			m.mode = ModeNormal
			return m, nil
		}
		m.session.Viewport().Reset()
		m.successMessage = "Loaded " + m.fileList[m.selectedFileIndex]
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteBlock:
			if b := m.selectedBlock(); b != nil {
				m.session.RemoveBlock(b.ID)
			}
		case ConfirmDeleteZone:
			if m.confirmZoneID != "" {
				m.session.RemoveZone(m.confirmZoneID)
				m.confirmZoneID = ""
			}
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewMap:
			m.session.NewDocument()
			m.session.Viewport().Reset()
		case ConfirmOverwriteFile:
			m.performExport(m.pendingPath)
			m.pendingPath = ""
		}
		return m, nil
	case "n", "N", "esc", "escape", "q":
		m.mode = ModeNormal
		m.pendingPath = ""
		m.confirmZoneID = ""
		return m, nil
	}
	return m, nil
}

func (m model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.helpScroll < len(helpLines())-1 {
			m.helpScroll++
		}
		return m, nil
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
		return m, nil
	default:
		m.help = false
		m.helpScroll = 0
		return m, nil
	}
}
