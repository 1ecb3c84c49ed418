package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	var h History
	v0 := newSeatMap()
	v1 := v0.Clone()
	v1.Name = "v1"

	h.Record(v0)
	doc, ok := h.Undo(v1)
	require.True(t, ok)
	assert.Equal(t, v0.Name, doc.Name)
	assert.True(t, h.CanRedo())

	doc, ok = h.Redo(doc)
	require.True(t, ok)
	assert.Equal(t, "v1", doc.Name)
}

func TestHistory_EmptyStacks(t *testing.T) {
	var h History
	m := newSeatMap()

	doc, ok := h.Undo(m)
	assert.False(t, ok)
	assert.Same(t, m, doc)

	doc, ok = h.Redo(m)
	assert.False(t, ok)
	assert.Same(t, m, doc)
}

func TestHistory_RecordClearsRedo(t *testing.T) {
	var h History
	a, b := newSeatMap(), newSeatMap()
	h.Record(a)
	_, ok := h.Undo(b)
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Record(a)
	assert.False(t, h.CanRedo())
}

func TestHistory_EvictsOldestBeyondLimit(t *testing.T) {
	var h History
	for i := 0; i < historyLimit+10; i++ {
		m := newSeatMap()
		m.Name = fmt.Sprintf("v%d", i)
		h.Record(m)
	}

	current := newSeatMap()
	current.Name = "current"
	var doc *SeatMap = current
	steps := 0
	for {
		next, ok := h.Undo(doc)
		if !ok {
			break
		}
		doc = next
		steps++
	}
	assert.Equal(t, historyLimit, steps)
	// the oldest surviving snapshot is the one recorded 50 back
	assert.Equal(t, "v10", doc.Name)
}

func TestSession_NUndosRestoreOriginal(t *testing.T) {
	es := NewEditorSession()
	original, err := es.ExportJSON()
	require.NoError(t, err)

	es.AddBlockAt(0, 0, defaultPreset())
	es.AddBlockAt(500, 0, defaultPreset())
	es.Rename("changed")

	require.True(t, es.Undo())
	require.True(t, es.Undo())
	require.True(t, es.Undo())
	assert.False(t, es.History().CanUndo())

	after, err := es.ExportJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(after))
}

func TestSession_ViewportChangesSkipHistory(t *testing.T) {
	es := NewEditorSession()
	es.Viewport().Pan(100, 50)
	es.Viewport().SetZoom(2)
	assert.False(t, es.History().CanUndo())
}
