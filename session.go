package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// EditorSession owns everything one editing session needs: the document,
// its undo history, the selection, the viewport and the active tool. It is
// passed explicitly to whatever needs it; there is no ambient global store.
type EditorSession struct {
	doc       *SeatMap
	history   History
	selection Selection
	tool      Tool
	viewport  Viewport
}

func NewEditorSession() *EditorSession {
	return &EditorSession{
		doc:      newSeatMap(),
		tool:     Tool{Kind: ToolSelect, Preset: defaultPreset()},
		viewport: newViewport(),
	}
}

func (es *EditorSession) Doc() *SeatMap         { return es.doc }
func (es *EditorSession) Selection() *Selection { return &es.selection }
func (es *EditorSession) Viewport() *Viewport   { return &es.viewport }
func (es *EditorSession) Tool() Tool            { return es.tool }
func (es *EditorSession) History() *History     { return &es.history }

func (es *EditorSession) SetTool(t Tool) {
	es.tool = t
}

// Dispatch applies any number of actions as one externally visible
// transition: one clone, one history entry, one UpdatedAt stamp. This is
// how multi-step operations (block rebuilds, bulk seat edits) stay atomic
// on the undo log.
func (es *EditorSession) Dispatch(actions ...Action) {
	if len(actions) == 0 {
		return
	}
	next := es.doc.Clone()
	for _, a := range actions {
		a.apply(next)
	}
	next.UpdatedAt = now()
	es.history.Record(es.doc)
	es.doc = next
	es.selection.prune(es.doc)
}

func (es *EditorSession) Undo() bool {
	doc, ok := es.history.Undo(es.doc)
	if ok {
		es.doc = doc
		es.selection.prune(es.doc)
	}
	return ok
}

func (es *EditorSession) Redo() bool {
	doc, ok := es.history.Redo(es.doc)
	if ok {
		es.doc = doc
		es.selection.prune(es.doc)
	}
	return ok
}

// AddBlockAt creates a block at a world position with the preset's
// parameters, derives its seats and selects it — one history entry.
func (es *EditorSession) AddBlockAt(x, y float64, preset BlockPreset) string {
	name := preset.Name
	if name == "" {
		name = "Section"
	}
	block := SeatBlock{
		ID:             uuid.NewString(),
		Name:           name,
		Rows:           clampInt(preset.Rows, minRowsCols, maxRowsCols),
		Cols:           clampInt(preset.Cols, minRowsCols, maxRowsCols),
		OriginX:        x,
		OriginY:        y,
		SeatWidth:      preset.SeatWidth,
		SeatHeight:     preset.SeatHeight,
		HGap:           preset.HGap,
		VGap:           preset.VGap,
		RowLabelStyle:  preset.RowLabelStyle,
		SeatLabelStyle: preset.SeatLabelStyle,
		StartRowIndex:  preset.StartRowIndex,
		StartColIndex:  preset.StartColIndex,
	}
	if block.SeatWidth <= 0 {
		block.SeatWidth = defaultSeatSize
	}
	if block.SeatHeight <= 0 {
		block.SeatHeight = defaultSeatSize
	}
	if block.HGap < 0 {
		block.HGap = defaultGap
	}
	if block.VGap < 0 {
		block.VGap = defaultGap
	}
	es.Dispatch(
		AddBlock{Block: block},
		AddSeats{Seats: buildSeatsForBlock(&block)},
	)
	es.selection.SelectBlock(block.ID)
	return block.ID
}

// RebuildBlock applies a block patch and regenerates the block's seats as
// one atomic transition: patch, remove the old seat set, derive and insert
// the new one. A single undo reverts all of it. Non-geometric patches skip
// the seat churn.
func (es *EditorSession) RebuildBlock(blockID string, patch BlockPatch) {
	current := es.doc.findBlock(blockID)
	if current == nil {
		return
	}
	if !patch.geometric() {
		es.Dispatch(UpdateBlock{BlockID: blockID, Patch: patch})
		return
	}
	updated := current.clone()
	patch.applyTo(&updated)
	es.Dispatch(
		UpdateBlock{BlockID: blockID, Patch: patch},
		RemoveSeats{SeatIDs: es.doc.blockSeatIDs(blockID)},
		AddSeats{Seats: buildSeatsForBlock(&updated)},
	)
}

// MoveBlock commits a completed move gesture. Seat positions are origin
// relative, so a move is a geometry rebuild.
func (es *EditorSession) MoveBlock(blockID string, originX, originY float64) {
	es.RebuildBlock(blockID, BlockPatch{OriginX: &originX, OriginY: &originY})
}

// RotateBlock adjusts the presentation rotation only; stored seat
// coordinates are untouched and no rebuild happens.
func (es *EditorSession) RotateBlock(blockID string, deltaDeg float64) {
	b := es.doc.findBlock(blockID)
	if b == nil {
		return
	}
	rot := normalizeRotation(b.Rotation + deltaDeg)
	es.Dispatch(UpdateBlock{BlockID: blockID, Patch: BlockPatch{Rotation: &rot}})
}

func (es *EditorSession) RemoveBlock(blockID string) {
	es.Dispatch(RemoveBlock{BlockID: blockID})
}

// UpdateSeats patches every listed seat with the same patch as one history
// entry (type/status cycling over a multi-selection).
func (es *EditorSession) UpdateSeats(seatIDs []string, patch SeatPatch) {
	actions := make([]Action, 0, len(seatIDs))
	for _, id := range seatIDs {
		actions = append(actions, UpdateSeat{SeatID: id, Patch: patch})
	}
	es.Dispatch(actions...)
}

func (es *EditorSession) SetRowOverride(blockID string, relRow int, label string) {
	es.Dispatch(SetRowLabelOverride{BlockID: blockID, RelRow: relRow, Label: label})
}

func (es *EditorSession) AddZone(name string) string {
	zone := Zone{
		ID:    uuid.NewString(),
		Name:  name,
		Color: zonePalette[len(es.doc.Zones)%len(zonePalette)],
	}
	es.Dispatch(AddZone{Zone: zone})
	return zone.ID
}

func (es *EditorSession) RemoveZone(zoneID string) {
	es.Dispatch(RemoveZone{ZoneID: zoneID})
}

func (es *EditorSession) Rename(name string) {
	es.Dispatch(Rename{Name: name})
}

// Load replaces the document wholesale and resets selection and history.
func (es *EditorSession) Load(doc *SeatMap) {
	doc.UpdatedAt = now()
	es.doc = doc
	es.history.Reset()
	es.selection.Clear()
}

// NewDocument starts over with a fresh empty map.
func (es *EditorSession) NewDocument() {
	es.Load(newSeatMap())
}

// SeatAtWorld hit-tests a world point against the displayed seats, topmost
// (last drawn) first. Rotated blocks are tested in their local frame.
func (es *EditorSession) SeatAtWorld(wx, wy float64) *Seat {
	for i := len(es.doc.Seats) - 1; i >= 0; i-- {
		s := &es.doc.Seats[i]
		if seatHit(s, es.doc.findBlock(s.BlockID), wx, wy) {
			return s
		}
	}
	return nil
}

// BlockAtWorld hit-tests a world point against block bounding boxes,
// topmost first.
func (es *EditorSession) BlockAtWorld(wx, wy float64) *SeatBlock {
	for i := len(es.doc.Blocks) - 1; i >= 0; i-- {
		if blockHit(&es.doc.Blocks[i], wx, wy) {
			return &es.doc.Blocks[i]
		}
	}
	return nil
}

// ExportJSON renders the persisted document format.
func (es *EditorSession) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(es.doc, "", "  ")
}

// ImportJSON parses a document and loads it. On any parse failure the
// current document is left untouched. Structural invariants of a parsed
// document are accepted as-is; only syntax and the bare required fields are
// checked. Seats missing the explicit blockId (older exports) get it
// backfilled from the scoped id prefix.
func (es *EditorSession) ImportJSON(data []byte) error {
	var doc SeatMap
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid seat map file: %w", err)
	}
	if doc.ID == "" || doc.Name == "" {
		return fmt.Errorf("invalid seat map file: missing id or name")
	}
	for i := range doc.Seats {
		if doc.Seats[i].BlockID == "" {
			if idx := strings.Index(doc.Seats[i].ID, "::"); idx > 0 {
				doc.Seats[i].BlockID = doc.Seats[i].ID[:idx]
			}
		}
	}
	if doc.Blocks == nil {
		doc.Blocks = []SeatBlock{}
	}
	if doc.Seats == nil {
		doc.Seats = []Seat{}
	}
	if doc.Zones == nil {
		doc.Zones = []Zone{}
	}
	es.Load(&doc)
	return nil
}
