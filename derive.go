package main

import "math"

// rowLabelFor resolves the display label for a relative row: a non-empty
// override wins, otherwise the encoded absolute row index.
func rowLabelFor(b *SeatBlock, relRow int) string {
	if ov, ok := b.RowLabelOverrides[relRow]; ok && ov != "" {
		return ov
	}
	return encodeLabel(b.StartRowIndex+relRow, b.RowLabelStyle)
}

// buildSeatsForBlock derives the block's full seat set in row-major order.
// Pure and deterministic: same block parameters always produce the same
// seats. User seat edits recorded on the block are merged back in by
// absolute row-col key, so a rebuild preserves them.
func buildSeatsForBlock(b *SeatBlock) []Seat {
	seats := make([]Seat, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		rowLabel := rowLabelFor(b, r)
		for c := 0; c < b.Cols; c++ {
			row := b.StartRowIndex + r
			col := b.StartColIndex + c
			seat := Seat{
				ID:      seatID(b.ID, row, col),
				BlockID: b.ID,
				X:       b.OriginX + float64(c)*(b.SeatWidth+b.HGap),
				Y:       b.OriginY + float64(r)*(b.SeatHeight+b.VGap),
				Row:     row,
				Col:     col,
				Width:   b.SeatWidth,
				Height:  b.SeatHeight,
				Label:   rowLabel + encodeLabel(col, b.SeatLabelStyle),
				Type:    SeatStandard,
				Status:  StatusAvailable,
			}
			if edit, ok := b.SeatEdits[editKey(row, col)]; ok {
				if edit.Label != "" {
					seat.Label = edit.Label
				}
				if edit.Type != "" {
					seat.Type = edit.Type
				}
				if edit.Status != "" {
					seat.Status = edit.Status
				}
				if edit.ZoneID != "" {
					seat.ZoneID = edit.ZoneID
				}
			}
			seats = append(seats, seat)
		}
	}
	return seats
}

// blockBounds is the unrotated bounding box of the block's seats in
// document space.
func blockBounds(b *SeatBlock) (x, y, w, h float64) {
	w = float64(b.Cols)*b.SeatWidth + float64(b.Cols-1)*b.HGap
	h = float64(b.Rows)*b.SeatHeight + float64(b.Rows-1)*b.VGap
	return b.OriginX, b.OriginY, w, h
}

func blockCenter(b *SeatBlock) (float64, float64) {
	x, y, w, h := blockBounds(b)
	return x + w/2, y + h/2
}

// rotateAbout rotates (px, py) by deg degrees around (cx, cy).
func rotateAbout(px, py, cx, cy, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := px-cx, py-cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// seatDisplayCenter is where the seat's center lands after the block
// rotation is applied. Rendering and hit-testing both use this; the stored
// seat coordinates stay unrotated.
func seatDisplayCenter(s *Seat, b *SeatBlock) (float64, float64) {
	cx, cy := s.X+s.Width/2, s.Y+s.Height/2
	if b == nil || b.Rotation == 0 {
		return cx, cy
	}
	bx, by := blockCenter(b)
	return rotateAbout(cx, cy, bx, by, b.Rotation)
}

// seatHit reports whether a world-space point falls inside the seat as
// displayed. The inverse rotation maps the point back into the block's
// local frame before the rectangle test.
func seatHit(s *Seat, b *SeatBlock, wx, wy float64) bool {
	if b != nil && b.Rotation != 0 {
		cx, cy := blockCenter(b)
		wx, wy = rotateAbout(wx, wy, cx, cy, -b.Rotation)
	}
	return wx >= s.X && wx < s.X+s.Width && wy >= s.Y && wy < s.Y+s.Height
}

// blockHit reports whether a world-space point falls inside the block's
// displayed bounding box.
func blockHit(b *SeatBlock, wx, wy float64) bool {
	if b.Rotation != 0 {
		cx, cy := blockCenter(b)
		wx, wy = rotateAbout(wx, wy, cx, cy, -b.Rotation)
	}
	x, y, w, h := blockBounds(b)
	return wx >= x && wx < x+w && wy >= y && wy < y+h
}

// normalizeRotation wraps an angle into [-180, 180].
func normalizeRotation(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg < -180 {
		deg += 360
	}
	return deg
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
