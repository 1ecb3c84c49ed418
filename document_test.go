package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWithBlock(t *testing.T) (*SeatMap, SeatBlock) {
	t.Helper()
	m := newSeatMap()
	b := testBlock()
	m = reduce(m, AddBlock{Block: b})
	m = reduce(m, AddSeats{Seats: buildSeatsForBlock(&b)})
	require.Len(t, m.Blocks, 1)
	require.Len(t, m.Seats, 6)
	return m, b
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	m := newSeatMap()
	before := len(m.Blocks)
	next := reduce(m, AddBlock{Block: testBlock()})
	assert.Len(t, m.Blocks, before)
	assert.Len(t, next.Blocks, before+1)
}

func TestUpdateBlock_ClampsRowsCols(t *testing.T) {
	m, b := docWithBlock(t)
	zero, huge := 0, 500
	m = reduce(m, UpdateBlock{BlockID: b.ID, Patch: BlockPatch{Rows: &zero, Cols: &huge}})
	got := m.findBlock(b.ID)
	require.NotNil(t, got)
	assert.Equal(t, minRowsCols, got.Rows)
	assert.Equal(t, maxRowsCols, got.Cols)
}

func TestUpdateBlock_IgnoresInvalidSpacing(t *testing.T) {
	m, b := docWithBlock(t)
	bad := -1.0
	m = reduce(m, UpdateBlock{BlockID: b.ID, Patch: BlockPatch{SeatWidth: &bad, HGap: &bad}})
	got := m.findBlock(b.ID)
	assert.Equal(t, 32.0, got.SeatWidth)
	assert.Equal(t, 8.0, got.HGap)
}

func TestRemoveBlock_CascadesSeats(t *testing.T) {
	m, b := docWithBlock(t)
	other := testBlock()
	other.ID = "blk2"
	other.OriginX = 900
	m = reduce(m, AddBlock{Block: other})
	m = reduce(m, AddSeats{Seats: buildSeatsForBlock(&other)})
	require.Len(t, m.Seats, 12)

	m = reduce(m, RemoveBlock{BlockID: b.ID})
	assert.Len(t, m.Blocks, 1)
	assert.Len(t, m.Seats, 6)
	for _, s := range m.Seats {
		assert.Equal(t, "blk2", s.BlockID)
	}
}

func TestUpdateSeat_MirrorsIntoBlockEdits(t *testing.T) {
	m, b := docWithBlock(t)
	seat := m.Seats[1]
	label := "Box-7"
	typ := SeatVIP
	m = reduce(m, UpdateSeat{SeatID: seat.ID, Patch: SeatPatch{Label: &label, Type: &typ}})

	got := m.findSeat(seat.ID)
	assert.Equal(t, "Box-7", got.Label)
	assert.Equal(t, SeatVIP, got.Type)

	blk := m.findBlock(b.ID)
	edit, ok := blk.SeatEdits[editKey(seat.Row, seat.Col)]
	require.True(t, ok)
	assert.Equal(t, "Box-7", edit.Label)
	assert.Equal(t, SeatVIP, edit.Type)
}

func TestSeatEdits_SurviveGeometryRebuild(t *testing.T) {
	m, b := docWithBlock(t)
	seat := m.Seats[0]
	status := StatusBlocked
	m = reduce(m, UpdateSeat{SeatID: seat.ID, Patch: SeatPatch{Status: &status}})

	// grow the block and rebuild its seats, as RebuildBlock does
	rows := 4
	m = reduce(m, UpdateBlock{BlockID: b.ID, Patch: BlockPatch{Rows: &rows}})
	updated := m.findBlock(b.ID)
	m = reduce(m, RemoveSeats{SeatIDs: m.blockSeatIDs(b.ID)})
	m = reduce(m, AddSeats{Seats: buildSeatsForBlock(updated)})

	require.Len(t, m.Seats, 12)
	got := m.findSeat(seat.ID)
	require.NotNil(t, got)
	assert.Equal(t, StatusBlocked, got.Status)
}

func TestSetRowLabelOverride_RelabelsRow(t *testing.T) {
	m, b := docWithBlock(t)
	m = reduce(m, SetRowLabelOverride{BlockID: b.ID, RelRow: 0, Label: "VIP"})

	for _, s := range m.Seats {
		if s.Row == 0 {
			assert.Contains(t, s.Label, "VIP")
		} else {
			assert.Equal(t, "B", s.Label[:1])
		}
	}
}

func TestSetRowLabelOverride_EmptyClears(t *testing.T) {
	m, b := docWithBlock(t)
	m = reduce(m, SetRowLabelOverride{BlockID: b.ID, RelRow: 0, Label: "VIP"})
	m = reduce(m, SetRowLabelOverride{BlockID: b.ID, RelRow: 0, Label: ""})

	blk := m.findBlock(b.ID)
	_, ok := blk.RowLabelOverrides[0]
	assert.False(t, ok)
	assert.Equal(t, "A1", m.Seats[0].Label)
}

func TestSetRowLabelOverride_KeepsSeatLevelLabel(t *testing.T) {
	m, b := docWithBlock(t)
	seat := m.Seats[0]
	label := "Custom"
	m = reduce(m, UpdateSeat{SeatID: seat.ID, Patch: SeatPatch{Label: &label}})
	m = reduce(m, SetRowLabelOverride{BlockID: b.ID, RelRow: 0, Label: "VIP"})

	assert.Equal(t, "Custom", m.findSeat(seat.ID).Label)
	assert.Equal(t, "VIP2", m.Seats[1].Label)
}

func TestRemoveZone_DetachesSeats(t *testing.T) {
	m, _ := docWithBlock(t)
	m = reduce(m, AddZone{Zone: Zone{ID: "z1", Name: "Gold", Color: "#f00"}})
	zid := "z1"
	m = reduce(m, UpdateSeat{SeatID: m.Seats[0].ID, Patch: SeatPatch{ZoneID: &zid}})
	require.Equal(t, "z1", m.Seats[0].ZoneID)

	m = reduce(m, RemoveZone{ZoneID: "z1"})
	assert.Empty(t, m.Zones)
	assert.Empty(t, m.Seats[0].ZoneID)
	for _, b := range m.Blocks {
		for _, e := range b.SeatEdits {
			assert.Empty(t, e.ZoneID)
		}
	}
}

func TestRename(t *testing.T) {
	m := newSeatMap()
	m = reduce(m, Rename{Name: "Main Hall"})
	assert.Equal(t, "Main Hall", m.Name)
}
