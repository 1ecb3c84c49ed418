package main

type ToolKind int

const (
	ToolSelect ToolKind = iota
	ToolPan
	ToolAddBlock
)

// BlockPreset carries the parameters a new block is created with, either
// from the add-block tool or from the rc-file defaults.
type BlockPreset struct {
	Name           string
	Rows           int
	Cols           int
	SeatWidth      float64
	SeatHeight     float64
	HGap           float64
	VGap           float64
	RowLabelStyle  LabelStyle
	SeatLabelStyle LabelStyle
	StartRowIndex  int
	StartColIndex  int
}

func defaultPreset() BlockPreset {
	return BlockPreset{
		Name:           "Section",
		Rows:           defaultRows,
		Cols:           defaultCols,
		SeatWidth:      defaultSeatSize,
		SeatHeight:     defaultSeatSize,
		HGap:           defaultGap,
		VGap:           defaultGap,
		RowLabelStyle:  LabelAlpha,
		SeatLabelStyle: LabelNumeric,
	}
}

// Tool is the active interaction tool. Exactly one is active at a time;
// the preset only matters for ToolAddBlock.
type Tool struct {
	Kind   ToolKind
	Preset BlockPreset
}

// RowRef points at one row of one block, for inline row-label editing.
type RowRef struct {
	BlockID string
	RelRow  int
}

// Selection tracks what the user is operating on. Selection changes are
// transient session state and never enter undo history.
type Selection struct {
	SeatIDs []string
	BlockID string
	Row     *RowRef
}

func (s *Selection) Clear() {
	s.SeatIDs = nil
	s.BlockID = ""
	s.Row = nil
}

func (s *Selection) hasSeat(id string) bool {
	for _, v := range s.SeatIDs {
		if v == id {
			return true
		}
	}
	return false
}

// ClickSeat applies click-selection semantics: a plain click replaces the
// set, a toggle click (ctrl held) adds or removes the seat while keeping
// order. The owning block becomes the selected block; a row selection from
// another block is dropped.
func (s *Selection) ClickSeat(seatID, blockID string, toggle bool) {
	if !toggle {
		s.SeatIDs = []string{seatID}
	} else if s.hasSeat(seatID) {
		ids := s.SeatIDs[:0]
		for _, v := range s.SeatIDs {
			if v != seatID {
				ids = append(ids, v)
			}
		}
		s.SeatIDs = ids
	} else {
		s.SeatIDs = append(s.SeatIDs, seatID)
	}
	s.BlockID = blockID
	if s.Row != nil && s.Row.BlockID != blockID {
		s.Row = nil
	}
}

// SelectBlock selects the block alone, dropping seat and foreign row
// selections.
func (s *Selection) SelectBlock(blockID string) {
	s.BlockID = blockID
	s.SeatIDs = nil
	if s.Row != nil && s.Row.BlockID != blockID {
		s.Row = nil
	}
}

// SelectRow scopes a row reference to the currently selected block.
func (s *Selection) SelectRow(blockID string, relRow int) {
	s.BlockID = blockID
	s.Row = &RowRef{BlockID: blockID, RelRow: relRow}
}

// prune drops references to entities that no longer exist in the document,
// keeping the selection valid across undo, redo and load.
func (s *Selection) prune(m *SeatMap) {
	ids := s.SeatIDs[:0]
	for _, id := range s.SeatIDs {
		if m.findSeat(id) != nil {
			ids = append(ids, id)
		}
	}
	s.SeatIDs = ids
	if s.BlockID != "" && m.findBlock(s.BlockID) == nil {
		s.BlockID = ""
	}
	if s.Row != nil {
		b := m.findBlock(s.Row.BlockID)
		if b == nil || s.Row.RelRow >= b.Rows {
			s.Row = nil
		}
	}
}
