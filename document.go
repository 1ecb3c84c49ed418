package main

// Action is a single document state transition. Actions mutate the working
// copy they are applied to; reduce and EditorSession.Dispatch own the
// cloning, so callers never hand an action a live snapshot.
type Action interface {
	apply(m *SeatMap)
}

// reduce applies one action to a fresh copy of the document and stamps
// UpdatedAt. The input document is never modified.
func reduce(m *SeatMap, a Action) *SeatMap {
	next := m.Clone()
	a.apply(next)
	next.UpdatedAt = now()
	return next
}

// BlockPatch is a sparse update of block properties. Nil fields are left
// untouched. Numeric constraints are enforced here, at the mutation
// boundary, so the document never holds an out-of-range block.
type BlockPatch struct {
	Name           *string
	Rows           *int
	Cols           *int
	OriginX        *float64
	OriginY        *float64
	SeatWidth      *float64
	SeatHeight     *float64
	HGap           *float64
	VGap           *float64
	RowLabelStyle  *LabelStyle
	SeatLabelStyle *LabelStyle
	StartRowIndex  *int
	StartColIndex  *int
	Rotation       *float64
}

// geometric reports whether applying the patch changes any property that
// feeds seat derivation. Rotation is deliberately excluded: it is a
// presentation transform and never triggers a rebuild.
func (p BlockPatch) geometric() bool {
	return p.Rows != nil || p.Cols != nil ||
		p.OriginX != nil || p.OriginY != nil ||
		p.SeatWidth != nil || p.SeatHeight != nil ||
		p.HGap != nil || p.VGap != nil ||
		p.RowLabelStyle != nil || p.SeatLabelStyle != nil ||
		p.StartRowIndex != nil || p.StartColIndex != nil
}

func (p BlockPatch) applyTo(b *SeatBlock) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Rows != nil {
		b.Rows = clampInt(*p.Rows, minRowsCols, maxRowsCols)
	}
	if p.Cols != nil {
		b.Cols = clampInt(*p.Cols, minRowsCols, maxRowsCols)
	}
	if p.OriginX != nil {
		b.OriginX = *p.OriginX
	}
	if p.OriginY != nil {
		b.OriginY = *p.OriginY
	}
	if p.SeatWidth != nil && *p.SeatWidth > 0 {
		b.SeatWidth = *p.SeatWidth
	}
	if p.SeatHeight != nil && *p.SeatHeight > 0 {
		b.SeatHeight = *p.SeatHeight
	}
	if p.HGap != nil && *p.HGap >= 0 {
		b.HGap = *p.HGap
	}
	if p.VGap != nil && *p.VGap >= 0 {
		b.VGap = *p.VGap
	}
	if p.RowLabelStyle != nil {
		b.RowLabelStyle = *p.RowLabelStyle
	}
	if p.SeatLabelStyle != nil {
		b.SeatLabelStyle = *p.SeatLabelStyle
	}
	if p.StartRowIndex != nil && *p.StartRowIndex >= 0 {
		b.StartRowIndex = *p.StartRowIndex
	}
	if p.StartColIndex != nil && *p.StartColIndex >= 0 {
		b.StartColIndex = *p.StartColIndex
	}
	if p.Rotation != nil {
		b.Rotation = normalizeRotation(*p.Rotation)
	}
}

// SeatPatch is a sparse update of a seat's editable attributes.
type SeatPatch struct {
	Label  *string
	Type   *SeatType
	Status *SeatStatus
	ZoneID *string
}

func (p SeatPatch) applyTo(s *Seat) {
	if p.Label != nil {
		s.Label = *p.Label
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.ZoneID != nil {
		s.ZoneID = *p.ZoneID
	}
}

type AddBlock struct {
	Block SeatBlock
}

func (a AddBlock) apply(m *SeatMap) {
	m.Blocks = append(m.Blocks, a.Block.clone())
}

type UpdateBlock struct {
	BlockID string
	Patch   BlockPatch
}

func (a UpdateBlock) apply(m *SeatMap) {
	if b := m.findBlock(a.BlockID); b != nil {
		a.Patch.applyTo(b)
	}
}

// RemoveBlock deletes the block and every seat it owns in one transition,
// so the document never holds orphan seats.
type RemoveBlock struct {
	BlockID string
}

func (a RemoveBlock) apply(m *SeatMap) {
	blocks := m.Blocks[:0]
	for i := range m.Blocks {
		if m.Blocks[i].ID != a.BlockID {
			blocks = append(blocks, m.Blocks[i])
		}
	}
	m.Blocks = blocks
	seats := m.Seats[:0]
	for i := range m.Seats {
		if m.Seats[i].BlockID != a.BlockID {
			seats = append(seats, m.Seats[i])
		}
	}
	m.Seats = seats
}

type AddSeats struct {
	Seats []Seat
}

func (a AddSeats) apply(m *SeatMap) {
	m.Seats = append(m.Seats, a.Seats...)
}

type RemoveSeats struct {
	SeatIDs []string
}

func (a RemoveSeats) apply(m *SeatMap) {
	drop := make(map[string]bool, len(a.SeatIDs))
	for _, id := range a.SeatIDs {
		drop[id] = true
	}
	seats := m.Seats[:0]
	for i := range m.Seats {
		if !drop[m.Seats[i].ID] {
			seats = append(seats, m.Seats[i])
		}
	}
	m.Seats = seats
}

// UpdateSeat patches exactly one seat and mirrors the edit into the owning
// block's SeatEdits map so derivation can reproduce it after a rebuild.
type UpdateSeat struct {
	SeatID string
	Patch  SeatPatch
}

func (a UpdateSeat) apply(m *SeatMap) {
	s := m.findSeat(a.SeatID)
	if s == nil {
		return
	}
	a.Patch.applyTo(s)
	b := m.findBlock(s.BlockID)
	if b == nil {
		return
	}
	if b.SeatEdits == nil {
		b.SeatEdits = make(map[string]SeatEdit)
	}
	key := editKey(s.Row, s.Col)
	edit := b.SeatEdits[key]
	if a.Patch.Label != nil {
		edit.Label = *a.Patch.Label
	}
	if a.Patch.Type != nil {
		edit.Type = *a.Patch.Type
	}
	if a.Patch.Status != nil {
		edit.Status = *a.Patch.Status
	}
	if a.Patch.ZoneID != nil {
		edit.ZoneID = *a.Patch.ZoneID
	}
	b.SeatEdits[key] = edit
}

// SetRowLabelOverride sets (or, on empty label, clears) a block's override
// for one relative row, then re-resolves the labels of that row's seats so
// stored seat records never disagree with the override map. Seats with a
// seat-level label edit keep it.
type SetRowLabelOverride struct {
	BlockID string
	RelRow  int
	Label   string
}

func (a SetRowLabelOverride) apply(m *SeatMap) {
	b := m.findBlock(a.BlockID)
	if b == nil || a.RelRow < 0 || a.RelRow >= b.Rows {
		return
	}
	if a.Label == "" {
		delete(b.RowLabelOverrides, a.RelRow)
	} else {
		if b.RowLabelOverrides == nil {
			b.RowLabelOverrides = make(map[int]string)
		}
		b.RowLabelOverrides[a.RelRow] = a.Label
	}
	row := b.StartRowIndex + a.RelRow
	rowLabel := rowLabelFor(b, a.RelRow)
	for i := range m.Seats {
		s := &m.Seats[i]
		if s.BlockID != b.ID || s.Row != row {
			continue
		}
		if edit, ok := b.SeatEdits[editKey(s.Row, s.Col)]; ok && edit.Label != "" {
			continue
		}
		s.Label = rowLabel + encodeLabel(s.Col, b.SeatLabelStyle)
	}
}

type AddZone struct {
	Zone Zone
}

func (a AddZone) apply(m *SeatMap) {
	m.Zones = append(m.Zones, a.Zone)
}

// RemoveZone drops the zone and detaches it from any seat referencing it.
type RemoveZone struct {
	ZoneID string
}

func (a RemoveZone) apply(m *SeatMap) {
	zones := m.Zones[:0]
	for i := range m.Zones {
		if m.Zones[i].ID != a.ZoneID {
			zones = append(zones, m.Zones[i])
		}
	}
	m.Zones = zones
	for i := range m.Seats {
		if m.Seats[i].ZoneID == a.ZoneID {
			m.Seats[i].ZoneID = ""
		}
	}
	for i := range m.Blocks {
		for k, edit := range m.Blocks[i].SeatEdits {
			if edit.ZoneID == a.ZoneID {
				edit.ZoneID = ""
				m.Blocks[i].SeatEdits[k] = edit
			}
		}
	}
}

type Rename struct {
	Name string
}

func (a Rename) apply(m *SeatMap) {
	m.Name = a.Name
}
