package main

import "fmt"

// canvasParams carries the transient overlay state the renderer needs on
// top of the document: selection, an in-progress add-block rectangle, and
// an in-progress block move offset. Gestures render as previews only; the
// document is untouched until they commit.
type canvasParams struct {
	selection   *Selection
	preview     *dragRect
	moveBlockID string
	moveDX      float64
	moveDY      float64
}

// dragRect is a live add-block gesture in world space, already quantized
// to whole rows/cols for display.
type dragRect struct {
	X, Y, W, H float64
	Rows, Cols int
}

// renderCanvas projects the document into a width x height grid of cells.
// World pixels map through the viewport and then the fixed cell metrics;
// everything off-grid is clipped.
func renderCanvas(es *EditorSession, width, height int, p canvasParams) []string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	doc := es.Doc()
	v := es.Viewport()

	drawFrame(grid, v, 0, 0, doc.Width, doc.Height)

	for i := range doc.Seats {
		s := &doc.Seats[i]
		b := doc.findBlock(s.BlockID)
		cx, cy := seatDisplayCenter(s, b)
		if p.moveBlockID != "" && s.BlockID == p.moveBlockID {
			cx += p.moveDX
			cy += p.moveDY
		}
		gx, gy := worldToCell(v, cx, cy)
		r := seatRune(s)
		if p.selection != nil && p.selection.hasSeat(s.ID) {
			r = '◉'
		}
		putRune(grid, gx, gy, r)
	}

	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		selected := p.selection != nil && p.selection.BlockID == b.ID
		dx, dy := 0.0, 0.0
		if p.moveBlockID == b.ID {
			dx, dy = p.moveDX, p.moveDY
		}
		drawBlockMarks(grid, v, b, selected, dx, dy)
		if selected {
			drawRowLabels(grid, v, b, p.selection.Row, dx, dy)
		}
	}

	if p.preview != nil {
		drawPreview(grid, v, p.preview)
	}

	lines := make([]string, height)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return lines
}

func worldToCell(v *Viewport, wx, wy float64) (int, int) {
	sx, sy := v.WorldToScreen(wx, wy, Rect{})
	return int(sx / cellWidth), int(sy / cellHeight)
}

func putRune(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func seatRune(s *Seat) rune {
	switch s.Status {
	case StatusBlocked:
		return '▓'
	case StatusReserved:
		return '▒'
	}
	switch s.Type {
	case SeatVIP:
		return '◆'
	case SeatAccessible:
		return 'A'
	case SeatCompanion:
		return 'C'
	}
	return '□'
}

// drawFrame draws the document boundary rectangle, clipped to the grid.
func drawFrame(grid [][]rune, v *Viewport, x, y, w, h float64) {
	x0, y0 := worldToCell(v, x, y)
	x1, y1 := worldToCell(v, x+w, y+h)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for gx := x0; gx <= x1; gx++ {
		putRune(grid, gx, y0, '─')
		putRune(grid, gx, y1, '─')
	}
	for gy := y0; gy <= y1; gy++ {
		putRune(grid, x0, gy, '│')
		putRune(grid, x1, gy, '│')
	}
	putRune(grid, x0, y0, '┌')
	putRune(grid, x1, y0, '┐')
	putRune(grid, x0, y1, '└')
	putRune(grid, x1, y1, '┘')
}

// drawBlockMarks marks the block's four (rotated) corners and writes its
// name above the top-left corner. Selected blocks use '#' corners, the
// same convention the rest of the UI uses for an active object.
func drawBlockMarks(grid [][]rune, v *Viewport, b *SeatBlock, selected bool, dx, dy float64) {
	x, y, w, h := blockBounds(b)
	x += dx
	y += dy
	cx, cy := x+w/2, y+h/2
	corners := [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}}
	mark := '+'
	if selected {
		mark = '#'
	}
	for _, c := range corners {
		px, py := c[0], c[1]
		if b.Rotation != 0 {
			px, py = rotateAbout(px, py, cx, cy, b.Rotation)
		}
		gx, gy := worldToCell(v, px, py)
		putRune(grid, gx, gy, mark)
	}
	gx, gy := worldToCell(v, x, y)
	writeString(grid, gx, gy-1, b.Name)
}

// drawRowLabels writes the resolved row labels left of the selected
// block's rows, with a '>' marker on the selected row.
func drawRowLabels(grid [][]rune, v *Viewport, b *SeatBlock, row *RowRef, dx, dy float64) {
	for r := 0; r < b.Rows; r++ {
		wy := b.OriginY + dy + float64(r)*(b.SeatHeight+b.VGap) + b.SeatHeight/2
		gx, gy := worldToCell(v, b.OriginX+dx, wy)
		label := rowLabelFor(b, r)
		if row != nil && row.BlockID == b.ID && row.RelRow == r {
			label = ">" + label
		}
		writeString(grid, gx-len(label)-1, gy, label)
	}
}

func drawPreview(grid [][]rune, v *Viewport, p *dragRect) {
	x0, y0 := worldToCell(v, p.X, p.Y)
	x1, y1 := worldToCell(v, p.X+p.W, p.Y+p.H)
	for gx := x0; gx <= x1; gx++ {
		putRune(grid, gx, y0, '·')
		putRune(grid, gx, y1, '·')
	}
	for gy := y0; gy <= y1; gy++ {
		putRune(grid, x0, gy, '·')
		putRune(grid, x1, gy, '·')
	}
	writeString(grid, x0, y0-1, fmt.Sprintf("%dx%d", p.Rows, p.Cols))
}

func writeString(grid [][]rune, x, y int, text string) {
	for i, r := range []rune(text) {
		putRune(grid, x+i, y, r)
	}
}
