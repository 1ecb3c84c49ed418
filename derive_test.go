package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock() SeatBlock {
	return SeatBlock{
		ID:             "blk",
		Name:           "Stalls",
		Rows:           2,
		Cols:           3,
		OriginX:        100,
		OriginY:        200,
		SeatWidth:      32,
		SeatHeight:     32,
		HGap:           8,
		VGap:           8,
		RowLabelStyle:  LabelAlpha,
		SeatLabelStyle: LabelNumeric,
	}
}

func TestBuildSeatsForBlock_Labels(t *testing.T) {
	b := testBlock()
	seats := buildSeatsForBlock(&b)
	require.Len(t, seats, 6)

	var labels []string
	for _, s := range seats {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, labels)
}

func TestBuildSeatsForBlock_RowMajorPositions(t *testing.T) {
	b := testBlock()
	seats := buildSeatsForBlock(&b)

	// first seat sits at the origin, pitch is size+gap
	assert.Equal(t, 100.0, seats[0].X)
	assert.Equal(t, 200.0, seats[0].Y)
	assert.Equal(t, 140.0, seats[1].X)
	assert.Equal(t, 200.0, seats[1].Y)
	assert.Equal(t, 100.0, seats[3].X)
	assert.Equal(t, 240.0, seats[3].Y)
}

func TestBuildSeatsForBlock_StartIndicesShiftLabels(t *testing.T) {
	b := testBlock()
	b.StartRowIndex = 1
	seats := buildSeatsForBlock(&b)
	require.Len(t, seats, 6)
	assert.Equal(t, "B1", seats[0].Label)
	assert.Equal(t, "C3", seats[5].Label)
	assert.Equal(t, 1, seats[0].Row)
	assert.Equal(t, 2, seats[5].Row)
	assert.Equal(t, seatID("blk", 1, 0), seats[0].ID)

	b.StartColIndex = 4
	seats = buildSeatsForBlock(&b)
	assert.Equal(t, "B5", seats[0].Label)
	assert.Equal(t, "C7", seats[5].Label)
}

func TestBuildSeatsForBlock_UniqueScopedIDs(t *testing.T) {
	b := testBlock()
	seen := map[string]bool{}
	for _, s := range buildSeatsForBlock(&b) {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.Equal(t, "blk", s.BlockID)
	}
}

func TestBuildSeatsForBlock_RowOverride(t *testing.T) {
	b := testBlock()
	b.RowLabelOverrides = map[int]string{0: "Balcony"}
	seats := buildSeatsForBlock(&b)
	assert.Equal(t, "Balcony1", seats[0].Label)
	assert.Equal(t, "B1", seats[3].Label)

	// empty override falls back to the derived label
	b.RowLabelOverrides = map[int]string{0: ""}
	seats = buildSeatsForBlock(&b)
	assert.Equal(t, "A1", seats[0].Label)
}

func TestBuildSeatsForBlock_MergesSeatEdits(t *testing.T) {
	b := testBlock()
	b.SeatEdits = map[string]SeatEdit{
		editKey(0, 1): {Label: "Box-7", Type: SeatVIP, Status: StatusBlocked, ZoneID: "z1"},
	}
	seats := buildSeatsForBlock(&b)

	assert.Equal(t, "Box-7", seats[1].Label)
	assert.Equal(t, SeatVIP, seats[1].Type)
	assert.Equal(t, StatusBlocked, seats[1].Status)
	assert.Equal(t, "z1", seats[1].ZoneID)

	// neighbours stay derived
	assert.Equal(t, "A1", seats[0].Label)
	assert.Equal(t, SeatStandard, seats[0].Type)
	assert.Equal(t, StatusAvailable, seats[0].Status)
}

func TestBlockBounds(t *testing.T) {
	b := testBlock()
	x, y, w, h := blockBounds(&b)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)
	assert.Equal(t, 3*32.0+2*8.0, w)
	assert.Equal(t, 2*32.0+1*8.0, h)
}

func TestSeatHit_RespectsRotation(t *testing.T) {
	b := testBlock()
	seats := buildSeatsForBlock(&b)
	s := &seats[0]

	// unrotated: the seat's own center hits
	cx := s.X + s.Width/2
	cy := s.Y + s.Height/2
	assert.True(t, seatHit(s, &b, cx, cy))

	// rotation moves the displayed seat; its old center may miss, but the
	// displayed center always hits
	b.Rotation = 90
	dx, dy := seatDisplayCenter(s, &b)
	assert.True(t, seatHit(s, &b, dx, dy))
}

func TestNormalizeRotation(t *testing.T) {
	assert.Equal(t, 0.0, normalizeRotation(360))
	assert.Equal(t, -165.0, normalizeRotation(195))
	assert.Equal(t, 165.0, normalizeRotation(-195))
	assert.Equal(t, 180.0, normalizeRotation(180))
}
