package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type LabelStyle string

const (
	LabelAlpha   LabelStyle = "alpha"
	LabelNumeric LabelStyle = "numeric"
)

type SeatType string

const (
	SeatStandard   SeatType = "standard"
	SeatVIP        SeatType = "vip"
	SeatAccessible SeatType = "accessible"
	SeatCompanion  SeatType = "companion"
)

type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusReserved  SeatStatus = "reserved"
	StatusBlocked   SeatStatus = "blocked"
)

// Seat is one seating position, owned by exactly one block. Coordinates are
// document pixels in the block's unrotated frame.
type Seat struct {
	ID      string     `json:"id"`
	BlockID string     `json:"blockId"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Row     int        `json:"row"`
	Col     int        `json:"col"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Label   string     `json:"label"`
	Type    SeatType   `json:"type"`
	Status  SeatStatus `json:"status"`
	ZoneID  string     `json:"zoneId,omitempty"`
}

type Zone struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SeatEdit holds the user-set, non-derivable attributes of a seat, keyed in
// the owning block by absolute "row-col". Derivation merges these back in so
// a geometry rebuild keeps user edits for any seat whose absolute
// coordinates survive the rebuild.
type SeatEdit struct {
	Label  string     `json:"label,omitempty"`
	Type   SeatType   `json:"type,omitempty"`
	Status SeatStatus `json:"status,omitempty"`
	ZoneID string     `json:"zoneId,omitempty"`
}

// SeatBlock is a rectangular group of seats sharing spacing, labeling and
// origin. Rotation is a presentation-time transform about the block's
// bounding-box center; stored seat coordinates are never rotated.
type SeatBlock struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Rows              int                 `json:"rows"`
	Cols              int                 `json:"cols"`
	OriginX           float64             `json:"originX"`
	OriginY           float64             `json:"originY"`
	SeatWidth         float64             `json:"seatWidth"`
	SeatHeight        float64             `json:"seatHeight"`
	HGap              float64             `json:"hGap"`
	VGap              float64             `json:"vGap"`
	RowLabelStyle     LabelStyle          `json:"rowLabelStyle"`
	SeatLabelStyle    LabelStyle          `json:"seatLabelStyle"`
	StartRowIndex     int                 `json:"startRowIndex"`
	StartColIndex     int                 `json:"startColIndex"`
	Rotation          float64             `json:"rotation,omitempty"`
	RowLabelOverrides map[int]string      `json:"rowLabelOverrides,omitempty"`
	SeatEdits         map[string]SeatEdit `json:"seatOverrides,omitempty"`
}

// SeatMap is the aggregate editing document.
type SeatMap struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Width           float64     `json:"width"`
	Height          float64     `json:"height"`
	BackgroundColor string      `json:"backgroundColor"`
	Blocks          []SeatBlock `json:"blocks"`
	Seats           []Seat      `json:"seats"`
	Zones           []Zone      `json:"zones"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func newSeatMap() *SeatMap {
	ts := now()
	return &SeatMap{
		ID:              uuid.NewString(),
		Name:            "New Seat Map",
		Width:           defaultMapWidth,
		Height:          defaultMapHeight,
		BackgroundColor: defaultMapColor,
		Blocks:          []SeatBlock{},
		Seats:           []Seat{},
		Zones:           []Zone{},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

// seatID builds the scoped seat id "<blockID>::<row>-<col>". The explicit
// Seat.BlockID field is the authoritative link; the scoped id is kept for
// interchange compatibility.
func seatID(blockID string, row, col int) string {
	return fmt.Sprintf("%s::%d-%d", blockID, row, col)
}

// editKey keys a block's SeatEdits map by absolute coordinates.
func editKey(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

func (b *SeatBlock) clone() SeatBlock {
	out := *b
	if b.RowLabelOverrides != nil {
		out.RowLabelOverrides = make(map[int]string, len(b.RowLabelOverrides))
		for k, v := range b.RowLabelOverrides {
			out.RowLabelOverrides[k] = v
		}
	}
	if b.SeatEdits != nil {
		out.SeatEdits = make(map[string]SeatEdit, len(b.SeatEdits))
		for k, v := range b.SeatEdits {
			out.SeatEdits[k] = v
		}
	}
	return out
}

// Clone deep-copies the document. History snapshots and the reducer both
// depend on snapshots never sharing mutable state.
func (m *SeatMap) Clone() *SeatMap {
	out := *m
	out.Blocks = make([]SeatBlock, len(m.Blocks))
	for i := range m.Blocks {
		out.Blocks[i] = m.Blocks[i].clone()
	}
	out.Seats = make([]Seat, len(m.Seats))
	copy(out.Seats, m.Seats)
	out.Zones = make([]Zone, len(m.Zones))
	copy(out.Zones, m.Zones)
	return &out
}

func (m *SeatMap) findBlock(id string) *SeatBlock {
	for i := range m.Blocks {
		if m.Blocks[i].ID == id {
			return &m.Blocks[i]
		}
	}
	return nil
}

func (m *SeatMap) findSeat(id string) *Seat {
	for i := range m.Seats {
		if m.Seats[i].ID == id {
			return &m.Seats[i]
		}
	}
	return nil
}

func (m *SeatMap) findZone(id string) *Zone {
	for i := range m.Zones {
		if m.Zones[i].ID == id {
			return &m.Zones[i]
		}
	}
	return nil
}

// blockSeatIDs returns the ids of every seat owned by the block, in
// document order.
func (m *SeatMap) blockSeatIDs(blockID string) []string {
	var ids []string
	for i := range m.Seats {
		if m.Seats[i].BlockID == blockID {
			ids = append(ids, m.Seats[i].ID)
		}
	}
	return ids
}
