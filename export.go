package main

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportJSONFile writes the document in the interchange format to a file.
func (es *EditorSession) exportJSONFile(filename string) error {
	data, err := es.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// importJSONFile reads and loads a document file. The session's current
// document survives any failure.
func (es *EditorSession) importJSONFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return es.ImportJSON(data)
}

// exportPNG rasterizes the seat map at document resolution: background,
// frame, and every seat as a rounded rectangle with its label. Rotated
// blocks are drawn under a rotation transform about their center, matching
// how the editor displays them.
func (es *EditorSession) exportPNG(filename string) error {
	doc := es.Doc()
	if len(doc.Seats) == 0 {
		return fmt.Errorf("nothing to export")
	}

	padding := 16.0
	w := int(doc.Width + 2*padding)
	h := int(doc.Height + 2*padding)
	dc := gg.NewContext(w, h)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	dc.Push()
	dc.Translate(padding, padding)

	dc.SetHexColor(doc.BackgroundColor)
	dc.DrawRectangle(0, 0, doc.Width, doc.Height)
	dc.Fill()
	dc.SetHexColor("#dddddd")
	dc.SetLineWidth(1)
	dc.DrawRectangle(0, 0, doc.Width, doc.Height)
	dc.Stroke()

	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		dc.Push()
		if b.Rotation != 0 {
			cx, cy := blockCenter(b)
			dc.RotateAbout(gg.Radians(b.Rotation), cx, cy)
		}
		for j := range doc.Seats {
			s := &doc.Seats[j]
			if s.BlockID != b.ID {
				continue
			}
			drawSeatPNG(dc, doc, s)
		}
		x, y, _, _ := blockBounds(b)
		dc.SetHexColor("#374151")
		dc.DrawString(b.Name, x, y-6)
		dc.Pop()
	}

	dc.Pop()
	return dc.SavePNG(filename)
}

func drawSeatPNG(dc *gg.Context, doc *SeatMap, s *Seat) {
	fill := "#ffffff"
	switch s.Status {
	case StatusReserved:
		fill = "#fde68a"
	case StatusBlocked:
		fill = "#d1d5db"
	}
	if s.ZoneID != "" {
		if z := doc.findZone(s.ZoneID); z != nil {
			fill = z.Color
		}
	}
	dc.SetHexColor(fill)
	dc.DrawRoundedRectangle(s.X, s.Y, s.Width, s.Height, 4)
	dc.Fill()

	stroke := "#9ca3af"
	switch s.Type {
	case SeatVIP:
		stroke = "#b45309"
	case SeatAccessible:
		stroke = "#2563eb"
	case SeatCompanion:
		stroke = "#059669"
	}
	dc.SetHexColor(stroke)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(s.X, s.Y, s.Width, s.Height, 4)
	dc.Stroke()

	dc.SetHexColor("#111827")
	dc.DrawStringAnchored(s.Label, s.X+s.Width/2, s.Y+s.Height/2, 0.5, 0.35)
}
